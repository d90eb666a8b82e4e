package game

import (
	"fmt"

	"hog/dice"
)

// State is the state of one game: both scores, the player about to move
// and whether four-sided dice are swapped in.
type State struct {
	Scores      [NumPlayers]int
	Player      int
	DiceSwapped bool
	Goal        int
}

func NewState(score0, score1, goal int) State {
	return State{
		Scores: [NumPlayers]int{score0, score1},
		Goal:   goal,
	}
}

// IsOver reports whether either player reached the goal.
func (s State) IsOver() bool {
	return s.Scores[0] >= s.Goal || s.Scores[1] >= s.Goal
}

// Score returns the current player's score and the opponent's score.
func (s State) Score() (score, opponentScore int) {
	return s.Scores[s.Player], s.Scores[Other(s.Player)]
}

// Play applies action for the current player and returns the next state.
// The receiver is left untouched.
func (s State) Play(action int, six, four dice.Dice) (State, Turn, error) {
	next := s
	score, opponentScore := s.Score()
	turn := Turn{
		Player: s.Player,
		Action: action,
		Type:   TypeOf(action),
	}

	if action == PorkChop {
		turn.Points = 1
		next.DiceSwapped = !s.DiceSwapped
	} else {
		turn.HogWild = IsHogWild(score, opponentScore)
		d := SelectDiceFrom(six, four, score, opponentScore, s.DiceSwapped)
		points, err := ResolveTurn(action, opponentScore, s.Goal, d)
		if err != nil {
			return s, turn, fmt.Errorf("player %d at %d-%d: %w", s.Player, score, opponentScore, err)
		}
		turn.Points = points
	}
	next.Scores[s.Player] += turn.Points
	next.Player = Other(s.Player)

	next.Scores[0], next.Scores[1], turn.Mirrored = Mirror(next.Scores[0], next.Scores[1])
	turn.Score0, turn.Score1 = next.Scores[0], next.Scores[1]
	return next, turn, nil
}
