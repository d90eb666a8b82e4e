package game

import (
	"fmt"

	"hog/dice"
	"hog/meta"
	"hog/utils"
)

// RollDice rolls d exactly numRolls > 0 times. It returns the sum of the
// outcomes unless any outcome is 1, in which case it returns the number
// of 1s rolled (Pig Out).
func RollDice(numRolls int, d dice.Dice) (int, error) {
	if numRolls < 1 || numRolls > meta.MAX_ROLLS {
		return 0, fmt.Errorf("%w: must roll between 1 and %d dice, got %d", ErrInvalidRollCount, meta.MAX_ROLLS, numRolls)
	}
	sum, ones := 0, 0
	for i := 0; i < numRolls; i++ {
		outcome := d()
		if outcome == 1 {
			ones++
		} else {
			sum += outcome
		}
	}
	if ones > 0 {
		return ones, nil
	}
	return sum, nil
}

// FreeBacon returns the points scored for rolling zero dice: one more
// than the larger of the tens and ones digits of the opponent's score.
func FreeBacon(opponentScore int) int {
	tens, ones := (opponentScore/10)%10, opponentScore%10
	return max(tens, ones) + 1
}

// HogtimusPrime bumps a prime turn score to the next prime.
func HogtimusPrime(score int) int {
	if utils.IsPrime(score) {
		return utils.NextPrime(score)
	}
	return score
}

// WhenPigsFly caps a turn score at PIGS_FLY_LIMIT - numRolls.
func WhenPigsFly(score, numRolls int) int {
	return min(score, meta.PIGS_FLY_LIMIT-numRolls)
}

// TakeTurn resolves a turn against the default goal score.
func TakeTurn(numRolls, opponentScore int, d dice.Dice) (int, error) {
	return ResolveTurn(numRolls, opponentScore, meta.GOAL_SCORE, d)
}

// ResolveTurn returns the points scored by rolling numRolls dice, which
// may be zero for Free Bacon, with Hogtimus Prime and When Pigs Fly applied.
func ResolveTurn(numRolls, opponentScore, goal int, d dice.Dice) (int, error) {
	if numRolls < 0 || numRolls > meta.MAX_ROLLS {
		return 0, fmt.Errorf("%w: cannot roll %d dice, must be between 0 and %d", ErrInvalidRollCount, numRolls, meta.MAX_ROLLS)
	}
	if opponentScore >= goal {
		return 0, fmt.Errorf("%w: opponent score %d reached goal %d", ErrPrecompletedGame, opponentScore, goal)
	}

	var score int
	if numRolls == 0 {
		score = FreeBacon(opponentScore)
	} else {
		rolled, err := RollDice(numRolls, d)
		if err != nil {
			return 0, err
		}
		score = rolled
	}

	return WhenPigsFly(HogtimusPrime(score), numRolls), nil
}
