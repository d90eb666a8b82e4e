package game

import (
	"testing"

	"hog/dice"

	"github.com/stretchr/testify/require"
)

func noDice() int {
	panic("dice should not be rolled")
}

func TestStatePlay(t *testing.T) {
	t.Run("pork chop scores one and swaps dice", func(t *testing.T) {
		s := NewState(0, 0, 100)

		next, turn, err := s.Play(PorkChop, noDice, noDice)

		require.NoError(t, err)
		require.Equal(t, [2]int{1, 0}, next.Scores)
		require.True(t, next.DiceSwapped)
		require.Equal(t, 1, next.Player)
		require.Equal(t, PorkChopAction, turn.Type)
		require.Equal(t, 1, turn.Points)
		require.False(t, s.DiceSwapped, "Original state should not change")
	})

	t.Run("swapped dice are four-sided until swapped back", func(t *testing.T) {
		s := NewState(1, 0, 100)
		s.Player = 1
		s.DiceSwapped = true

		next, turn, err := s.Play(1, noDice, dice.MakeStrictTestDice(4))
		require.NoError(t, err)
		require.Equal(t, [2]int{1, 4}, next.Scores)
		require.Equal(t, 4, turn.Points)
		require.True(t, next.DiceSwapped, "Rolling should not toggle the swap")

		next, _, err = next.Play(PorkChop, noDice, noDice)
		require.NoError(t, err)
		require.False(t, next.DiceSwapped, "Second pork chop swaps back")
		require.Equal(t, [2]int{4, 2}, next.Scores, "Mirror rule: 4 is double 2")
	})

	t.Run("hog wild rerolls odd outcomes", func(t *testing.T) {
		s := NewState(3, 4, 100)

		next, turn, err := s.Play(1, dice.MakeStrictTestDice(5, 6), noDice)
		require.NoError(t, err)
		require.True(t, turn.HogWild)
		require.Equal(t, 6, turn.Points)
		require.Equal(t, [2]int{9, 4}, next.Scores)
	})

	t.Run("mirror after free bacon", func(t *testing.T) {
		s := NewState(5, 20, 100)

		next, turn, err := s.Play(FreeBaconRolls, noDice, noDice)
		require.NoError(t, err)
		require.Equal(t, 5, turn.Points)
		require.True(t, turn.Mirrored)
		require.Equal(t, [2]int{20, 10}, next.Scores)
		require.Equal(t, 20, turn.Score0)
		require.Equal(t, 10, turn.Score1)
	})

	t.Run("invalid action", func(t *testing.T) {
		s := NewState(0, 0, 100)
		next, _, err := s.Play(11, dice.SixSided, dice.FourSided)
		require.ErrorIs(t, err, ErrInvalidRollCount)
		require.Equal(t, s, next, "State should not change on error")
	})

	t.Run("game already over", func(t *testing.T) {
		s := NewState(0, 100, 100)
		require.True(t, s.IsOver())
		_, _, err := s.Play(2, dice.SixSided, dice.FourSided)
		require.ErrorIs(t, err, ErrPrecompletedGame)
	})
}
