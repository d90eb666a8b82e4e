package game

// Strategy chooses an action from the current player's score and the
// opponent's score: PorkChop (-1), FreeBaconRolls (0) or a roll count (1..10).
type Strategy func(score, opponentScore int) int

const (
	PorkChop       = -1
	FreeBaconRolls = 0
)

// Number of players in a game of Hog.
const NumPlayers = 2
