// Package strategy holds the scripted Hog strategies evaluated by the
// experiment harness.
package strategy

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"hog/game"
	"hog/meta"
)

const (
	DefaultMargin   = 8
	DefaultNumRolls = 4
)

// baconPoints is what rolling zero dice would score, before the cap.
func baconPoints(opponentScore int) int {
	return game.HogtimusPrime(game.FreeBacon(opponentScore))
}

// Bacon rolls 0 dice if that gives at least margin points, and rolls
// numRolls otherwise.
func Bacon(margin, numRolls int) game.Strategy {
	return func(score, opponentScore int) int {
		if baconPoints(opponentScore) >= margin {
			return game.FreeBaconRolls
		}
		return numRolls
	}
}

// Swap rolls 0 dice when the Free Bacon points would leave us at exactly
// half the opponent's score, so the scores mirror in our favour. It also
// rolls 0 dice if that gives at least margin points, and numRolls otherwise.
func Swap(margin, numRolls int) game.Strategy {
	bacon := Bacon(margin, numRolls)
	return func(score, opponentScore int) int {
		if 2*(score+baconPoints(opponentScore)) == opponentScore {
			return game.FreeBaconRolls
		}
		return bacon(score, opponentScore)
	}
}

var (
	hogWildSwap = Swap(DefaultMargin, 6)
	eagerSwap   = Swap(DefaultMargin, 5)
	mirrorSwap  = Swap(DefaultMargin, DefaultNumRolls)
)

// Final opens with Pork Chop, rolls more dice under Hog Wild, takes Free
// Bacon whenever Swap would, and falls back on Free Bacon when far ahead
// or far behind.
func Final(score, opponentScore int) int {
	if score == 0 {
		return game.PorkChop
	}
	if game.IsHogWild(score, opponentScore) {
		return hogWildSwap(score, opponentScore)
	}
	if eagerSwap(score, opponentScore) == game.FreeBaconRolls {
		return game.FreeBaconRolls
	}
	if 2*(score+1) == opponentScore {
		return mirrorSwap(score, opponentScore)
	}
	if score > opponentScore && opponentScore > 13 {
		return game.FreeBaconRolls
	}
	if opponentScore-score > 10 {
		return game.FreeBaconRolls
	}
	return DefaultNumRolls
}

var registry = map[string]game.Strategy{
	"always_roll_8": game.AlwaysRoll(8),
	"bacon":         Bacon(DefaultMargin, DefaultNumRolls),
	"swap":          Swap(DefaultMargin, DefaultNumRolls),
	"final":         Final,
}

// Baseline is the strategy every experiment compares against.
func Baseline() game.Strategy {
	return game.AlwaysRoll(meta.BASELINE_ROLLS)
}

// Lookup returns a named strategy. Names of the form always_roll_N for
// N in [0, 10] are accepted besides the built-in names.
func Lookup(name string) (game.Strategy, error) {
	if s, ok := registry[name]; ok {
		return s, nil
	}
	if rolls, ok := strings.CutPrefix(name, "always_roll_"); ok {
		n, err := strconv.Atoi(rolls)
		if err == nil && n >= 0 && n <= meta.MAX_ROLLS {
			return game.AlwaysRoll(n), nil
		}
	}
	return nil, fmt.Errorf("unknown strategy %q", name)
}

// Names returns the built-in strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
