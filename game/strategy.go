package game

import (
	"fmt"

	"hog/meta"
)

// AlwaysRoll returns a strategy that always rolls n dice.
func AlwaysRoll(n int) Strategy {
	return func(score, opponentScore int) int {
		return n
	}
}

// CheckStrategyRoll returns an error naming the inputs if numRolls is not
// a legal strategy output.
func CheckStrategyRoll(score, opponentScore, numRolls int) error {
	if numRolls < PorkChop || numRolls > meta.MAX_ROLLS {
		return fmt.Errorf("%w: strategy(%d, %d) returned %d (invalid number of rolls)",
			ErrInvalidStrategyOutput, score, opponentScore, numRolls)
	}
	return nil
}

// CheckStrategy calls strategy for every score pair with both scores in
// [0, goal], own score outermost, and returns the first invalid output.
func CheckStrategy(strategy Strategy, goal int) error {
	for score := 0; score <= goal; score++ {
		for opponentScore := 0; opponentScore <= goal; opponentScore++ {
			if err := CheckStrategyRoll(score, opponentScore, strategy(score, opponentScore)); err != nil {
				return err
			}
		}
	}
	return nil
}
