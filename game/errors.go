package game

import "errors"

var (
	// ErrInvalidRollCount is returned for a roll count outside [0, MAX_ROLLS].
	ErrInvalidRollCount = errors.New("invalid roll count")
	// ErrInvalidStrategyOutput is returned by the validator for an action
	// outside [-1, MAX_ROLLS].
	ErrInvalidStrategyOutput = errors.New("invalid strategy output")
	// ErrPrecompletedGame is returned when a turn is resolved after the
	// opponent already reached the goal.
	ErrPrecompletedGame = errors.New("the game should be over")
)
