// meta/meta.go
package meta

// GOAL_SCORE defines the score a player must reach to win.
const GOAL_SCORE = 100

// MAX_ROLLS defines the most dice a player may roll in one turn.
const MAX_ROLLS = 10

// PIGS_FLY_LIMIT bounds a turn score to PIGS_FLY_LIMIT - num_rolls.
const PIGS_FLY_LIMIT = 25

// HOG_WILD_MODULUS triggers rerolling dice when the score sum divides by it.
const HOG_WILD_MODULUS = 7

// NUM_SAMPLES defines the default number of samples for averaged experiments.
const NUM_SAMPLES = 1000

// BASELINE_ROLLS defines how many dice the baseline strategy always rolls.
const BASELINE_ROLLS = 4

// GO_ROUTINES defines the number of goroutines to use for tournaments.
const GO_ROUTINES = 8

// MAX_TURNS bounds a single game in case of a degenerate dice source.
const MAX_TURNS = 10000
