// Package dice provides the outcome sources used by the game: fair N-sided
// dice, the Hog Wild rerolling adapter, and scripted dice for tests.
package dice

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
)

// Dice is a zero-argument outcome source returning an integer in [1, sides].
type Dice func() int

var ErrDiceExhausted = errors.New("dice: scripted outcomes exhausted")

var (
	SixSided  = New(6, nil)
	FourSided = New(4, nil)
)

// NewSource returns a deterministic generator for seeded dice.
// The result is not safe for concurrent use.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// New returns fair dice with the given number of sides. A nil rng falls
// back to the package-level generator, which is safe for concurrent use.
func New(sides int, rng *rand.Rand) Dice {
	if sides < 1 {
		panic(fmt.Sprintf("dice must have at least one side, got %d", sides))
	}
	if rng == nil {
		return func() int {
			return rand.Intn(sides) + 1
		}
	}
	return func() int {
		return rng.Intn(sides) + 1
	}
}

// Reroll returns dice that keep even outcomes of d and reroll odd outcomes
// exactly once, returning the second outcome whatever its parity.
func Reroll(d Dice) Dice {
	return func() int {
		outcome := d()
		if outcome%2 == 0 {
			return outcome
		}
		return d()
	}
}

// MakeTestDice returns dice that cycle through outcomes in order.
func MakeTestDice(outcomes ...int) Dice {
	mustBeOutcomes(outcomes)
	index := 0
	return func() int {
		outcome := outcomes[index]
		index = (index + 1) % len(outcomes)
		return outcome
	}
}

// MakeStrictTestDice returns dice that yield outcomes once each and panic
// with ErrDiceExhausted when rolled past the end of the script.
func MakeStrictTestDice(outcomes ...int) Dice {
	mustBeOutcomes(outcomes)
	index := 0
	return func() int {
		if index >= len(outcomes) {
			panic(fmt.Errorf("%w after %d rolls", ErrDiceExhausted, len(outcomes)))
		}
		outcome := outcomes[index]
		index++
		return outcome
	}
}

func mustBeOutcomes(outcomes []int) {
	if len(outcomes) == 0 {
		panic("test dice need at least one outcome")
	}
	for _, o := range outcomes {
		if o < 1 {
			panic(fmt.Sprintf("dice outcome %d is below 1", o))
		}
	}
}
