package game

// Turn records what happened during one player's turn.
type Turn struct {
	Player   int
	Action   int
	Type     ActionType
	Points   int
	HogWild  bool // Dice were wrapped with Reroll
	Mirrored bool // Scores were rewritten by the mirror rule afterwards
	Score0   int  // Scores after the turn
	Score1   int
}
