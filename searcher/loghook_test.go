package searcher

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"minimax/game/fixture"
)

func TestLogHook(t *testing.T) {
	t.Run("pruning incidents at debug level", func(t *testing.T) {
		var buf bytes.Buffer
		hook := NewLogHook[*fixture.Node](zerolog.New(&buf).Level(zerolog.DebugLevel))

		_, err := Search[*fixture.Node, string](threeLevels(), fixture.Rules{}, fixture.Evaluate, 3, hook)
		require.NoError(t, err)

		out := buf.String()
		require.Equal(t, 1, strings.Count(out, "\n"), "Should log the single incident only")
		require.Contains(t, out, `"message":"pruned"`)
		require.Contains(t, out, `"state":"c"`)
		require.Contains(t, out, `"direction":"aboveBeta"`)
		require.Contains(t, out, `"childIndex":0`)
	})

	t.Run("visits and leaves at trace level", func(t *testing.T) {
		defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())
		zerolog.SetGlobalLevel(zerolog.TraceLevel)

		var buf bytes.Buffer
		hook := NewLogHook[*fixture.Node](zerolog.New(&buf).Level(zerolog.TraceLevel))

		_, err := Search[*fixture.Node, string](singleBranch(), fixture.Rules{}, fixture.Evaluate, 2, hook)
		require.NoError(t, err)

		out := buf.String()
		require.Equal(t, 7, strings.Count(out, "visited-node"))
		require.Equal(t, 5, strings.Count(out, "evaluated-leaf"))
	})
}
