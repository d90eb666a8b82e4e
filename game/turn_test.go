package game

import (
	"testing"

	"hog/dice"

	"github.com/stretchr/testify/require"
)

func TestRollDice(t *testing.T) {
	t.Run("sums outcomes without a one", func(t *testing.T) {
		faces := []int{2, 3, 4, 5, 6}
		for n := 1; n <= 10; n++ {
			want := 0
			for i := 0; i < n; i++ {
				want += faces[i%len(faces)]
			}
			got, err := RollDice(n, dice.MakeTestDice(faces...))
			require.NoError(t, err)
			require.Equal(t, want, got, "Rolling %d dice should sum the outcomes", n)
		}
	})

	t.Run("pig out counts the ones", func(t *testing.T) {
		got, err := RollDice(3, dice.MakeStrictTestDice(1, 5, 1))
		require.NoError(t, err)
		require.Equal(t, 2, got, "Should score the number of ones, not the sum")

		got, err = RollDice(5, dice.MakeStrictTestDice(6, 6, 6, 6, 1))
		require.NoError(t, err)
		require.Equal(t, 1, got)
	})

	t.Run("consumes exactly numRolls outcomes", func(t *testing.T) {
		_, err := RollDice(4, dice.MakeStrictTestDice(2, 2, 2, 2))
		require.NoError(t, err, "Strict dice would panic on a fifth roll")
	})

	t.Run("rejects zero and too many rolls", func(t *testing.T) {
		_, err := RollDice(0, dice.SixSided)
		require.ErrorIs(t, err, ErrInvalidRollCount)
		_, err = RollDice(11, dice.SixSided)
		require.ErrorIs(t, err, ErrInvalidRollCount)
	})
}

func TestFreeBacon(t *testing.T) {
	cases := map[int]int{0: 1, 7: 8, 10: 2, 48: 9, 84: 9, 55: 6, 99: 10, 90: 10}
	for score, want := range cases {
		require.Equal(t, want, FreeBacon(score), "FreeBacon(%d)", score)
	}
}

func TestHogtimusPrime(t *testing.T) {
	require.Equal(t, 3, HogtimusPrime(2))
	require.Equal(t, 5, HogtimusPrime(3))
	require.Equal(t, 23, HogtimusPrime(19))
	require.Equal(t, 1, HogtimusPrime(1), "One is not prime")
	require.Equal(t, 18, HogtimusPrime(18))
}

func TestWhenPigsFly(t *testing.T) {
	require.Equal(t, 18, WhenPigsFly(18, 3))
	require.Equal(t, 15, WhenPigsFly(60, 10))
	require.Equal(t, 25, WhenPigsFly(25, 0))
}

func TestTakeTurn(t *testing.T) {
	t.Run("sum of outcomes below the cap", func(t *testing.T) {
		got, err := TakeTurn(3, 10, dice.MakeStrictTestDice(6, 6, 6))
		require.NoError(t, err)
		require.Equal(t, 18, got)
	})

	t.Run("pig out bumped by hogtimus prime", func(t *testing.T) {
		got, err := TakeTurn(3, 10, dice.MakeStrictTestDice(1, 5, 1))
		require.NoError(t, err)
		require.Equal(t, 3, got, "Two ones is prime and bumps to three")
	})

	t.Run("capped by when pigs fly", func(t *testing.T) {
		got, err := TakeTurn(10, 0, dice.MakeTestDice(6))
		require.NoError(t, err)
		require.Equal(t, 15, got)
	})

	t.Run("prime bump then cap", func(t *testing.T) {
		// 4+4+4+4+3 = 19 -> 23 -> capped at 20
		got, err := TakeTurn(5, 0, dice.MakeStrictTestDice(4, 4, 4, 4, 3))
		require.NoError(t, err)
		require.Equal(t, 20, got)
	})

	t.Run("free bacon does not roll", func(t *testing.T) {
		got, err := TakeTurn(0, 48, dice.MakeStrictTestDice(1))
		require.NoError(t, err)
		require.Equal(t, 9, got)

		got, err = TakeTurn(0, 12, nil)
		require.NoError(t, err)
		require.Equal(t, 5, got, "Free bacon of 3 is prime and bumps to 5")
	})

	t.Run("invalid roll counts", func(t *testing.T) {
		for _, n := range []int{-2, -1, 11, 100} {
			_, err := TakeTurn(n, 0, dice.SixSided)
			require.ErrorIs(t, err, ErrInvalidRollCount, "num_rolls=%d", n)
		}
	})

	t.Run("game already over", func(t *testing.T) {
		_, err := TakeTurn(2, 100, dice.SixSided)
		require.ErrorIs(t, err, ErrPrecompletedGame)

		_, err = ResolveTurn(2, 100, 120, dice.MakeTestDice(2))
		require.NoError(t, err, "A larger goal keeps the game going")
	})
}
