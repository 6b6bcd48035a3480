package repeat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRules(t *testing.T) {
	rules := Rules{}

	t.Run("every letter is always playable", func(t *testing.T) {
		require.Equal(t, []Letter{A, B, C}, rules.LegalMoves(New()))
		require.Equal(t, []Letter{A, B, C}, rules.LegalMoves(State{Turn: 3, Prev: B, Last: A}))
	})

	t.Run("playing shifts the letters", func(t *testing.T) {
		s := rules.Play(New(), B)
		require.Equal(t, State{Turn: 1, Last: B}, s)
		require.Equal(t, 1, s.Player())

		s = rules.Play(s, C)
		require.Equal(t, State{Turn: 2, Prev: B, Last: C}, s)
		require.Equal(t, "bc", s.String())
		require.Panics(t, func() { rules.Play(s, Letter('d')) })
	})

	t.Run("a repeated letter ends the game", func(t *testing.T) {
		for _, s := range []State{New(), {Turn: 1, Last: A}, {Turn: 2, Prev: A, Last: B}} {
			_, terminal := rules.TerminalValue(s)
			require.False(t, terminal, "%v", s)
		}

		value, terminal := rules.TerminalValue(rules.Play(rules.Play(New(), C), C))
		require.True(t, terminal)
		require.Equal(t, math.Inf(1), value, "Should win for the player who did not repeat")
	})
}

func TestEvaluate(t *testing.T) {
	require.Equal(t, 0.0, Evaluate(New()))
	require.Equal(t, 0.0, Evaluate(State{Turn: 2, Prev: A, Last: B}))
	require.Equal(t, math.Inf(1), Evaluate(State{Turn: 2, Prev: A, Last: A}))
	require.Equal(t, "-", None.String())
	require.Equal(t, "a", A.String())
}
