package game

import "hog/meta"

// Other returns the other player, for a player numbered 0 or 1.
func Other(player int) int {
	return 1 - player
}

// IsHogWild reports whether the sum of both scores triggers rerolling dice.
func IsHogWild(score, opponentScore int) bool {
	return (score+opponentScore)%meta.HOG_WILD_MODULUS == 0
}

// Mirror applies the score-mirroring rule. When both scores are nonzero
// and one is exactly double the other the scores are rewritten:
// score0 == 2*score1 gives (score1, 2*score1), and score1 == 2*score0
// gives (2*score0, score0). Otherwise the scores are returned unchanged.
func Mirror(score0, score1 int) (int, int, bool) {
	if score0 == 0 || score1 == 0 {
		return score0, score1, false
	}
	if score0 == 2*score1 {
		return score1, 2 * score1, true
	}
	if score1 == 2*score0 {
		return 2 * score0, score0, true
	}
	return score0, score1, false
}
