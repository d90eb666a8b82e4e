package game

import (
	"testing"

	"hog/dice"

	"github.com/stretchr/testify/require"
)

func TestOther(t *testing.T) {
	require.Equal(t, 1, Other(0))
	require.Equal(t, 0, Other(1))
	for _, p := range []int{0, 1} {
		require.Equal(t, p, Other(Other(p)))
	}
}

func TestMirror(t *testing.T) {
	cases := []struct {
		name           string
		score0, score1 int
		want0, want1   int
		mirrored       bool
	}{
		{"player 0 doubles player 1", 20, 10, 10, 20, true},
		{"player 1 doubles player 0", 15, 30, 30, 15, true},
		{"zero scores never mirror", 0, 0, 0, 0, false},
		{"zero opponent never mirrors", 0, 7, 0, 7, false},
		{"not a double", 21, 10, 21, 10, false},
		{"equal scores", 12, 12, 12, 12, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got0, got1, mirrored := Mirror(c.score0, c.score1)
			require.Equal(t, c.want0, got0)
			require.Equal(t, c.want1, got1)
			require.Equal(t, c.mirrored, mirrored)
		})
	}
}

func TestSelectDice(t *testing.T) {
	t.Run("six-sided dice rerolled under hog wild", func(t *testing.T) {
		six := dice.MakeStrictTestDice(3, 5)
		d := SelectDiceFrom(six, nil, 3, 4, false)
		require.Equal(t, 5, d(), "Odd first outcome should be rerolled once")
	})

	t.Run("six-sided dice without hog wild", func(t *testing.T) {
		six := dice.MakeStrictTestDice(3, 5)
		d := SelectDiceFrom(six, nil, 1, 4, false)
		require.Equal(t, 3, d())
		require.Equal(t, 5, d())
	})

	t.Run("four-sided dice when swapped", func(t *testing.T) {
		four := dice.MakeStrictTestDice(1)
		d := SelectDiceFrom(nil, four, 2, 3, true)
		require.Equal(t, 1, d())
	})

	t.Run("default dice stay in range", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			outcome := SelectDice(10, 20, true)()
			require.True(t, outcome >= 1 && outcome <= 4)
		}
	})
}

func TestTypeOf(t *testing.T) {
	require.Equal(t, PorkChopAction, TypeOf(-1))
	require.Equal(t, FreeBaconAction, TypeOf(0))
	require.Equal(t, RollAction, TypeOf(6))
	require.Equal(t, "pork_chop", PorkChopAction.String())
}

func TestActionConstants(t *testing.T) {
	require.Equal(t, FreeBaconAction, TypeOf(FreeBaconRolls))
	require.Equal(t, PorkChopAction, TypeOf(PorkChop))
	require.Equal(t, "free_bacon", TypeOf(FreeBaconRolls).String())
	// the rule function is distinct from the zero-roll action
	require.Equal(t, 9, FreeBacon(48))
}
