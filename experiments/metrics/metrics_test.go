package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"minimax/searcher"
)

func TestCollector(t *testing.T) {
	t.Run("counts hook calls between start and complete", func(t *testing.T) {
		c := NewCollector[int]()
		c.Start(3)
		c.VisitedNode(1)
		c.VisitedNode(2)
		c.EvaluatedLeafNode(2)
		c.PruningIncident(searcher.PruningIncident[int]{Node: 1})

		m := c.Complete(4.5)
		require.Equal(t, 3, m.Plies)
		require.Equal(t, 2, m.Visited)
		require.Equal(t, 1, m.Leaves)
		require.Equal(t, 1, m.Prunings)
		require.Equal(t, 4.5, m.Evaluation)
		require.GreaterOrEqual(t, m.Duration, time.Duration(0))
	})

	t.Run("start resets the counts", func(t *testing.T) {
		c := NewCollector[int]()
		c.Start(1)
		c.VisitedNode(1)
		c.Start(2)
		require.Equal(t, 0, c.Complete(0).Visited, "Should forget the previous search")
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector[int]()
		c.Start(3)
		c.VisitedNode(1)
		require.Equal(t, SearchMetric{}, c.Complete(1))
	})
}

func TestWriter(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir, "pruning")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())

	t.Run("search records", func(t *testing.T) {
		err := w.WriteSearchRecords([]SearchRecord{{
			Game:         "sequence",
			Move:         "1",
			TreeNodes:    10,
			TreeLeaves:   6,
			Agree:        true,
			SearchMetric: SearchMetric{Plies: 2, Visited: 5, Leaves: 3, Evaluation: 1},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "search_records.csv"))
		require.Len(t, rows, 2, "Should write a header and one row")
		require.Equal(t, "game", rows[0][0])
		require.Equal(t, []string{"sequence", "2", "1", "1", "5", "3", "0", "10", "6", "0.5"}, rows[1][:10])
		require.Equal(t, "true", rows[1][12])
	})

	t.Run("game and move records", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, w.WriteGameRecords([]GameRecord{{
			ID: 1, Agent1: "alphabeta", Agent2: "random",
			GameMetric: GameMetric{Winner: 0, StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second, TotalMoves: 4},
		}}))
		require.NoError(t, w.WriteMoveRecords([]MoveRecord{{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: 0, Move: "3"}}}))

		games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Equal(t, []string{"1", "alphabeta", "random", "0", "0", "2024-01-01T00:00:00Z", "2024-01-01T00:00:01Z", "1s", "4"}, games[1])
		moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Equal(t, "3", moves[1][3])
	})

	t.Run("summaries", func(t *testing.T) {
		require.NoError(t, w.WriteSummaries([]Summary{{Name: "node_ratio", Count: 2, Mean: 0.5, StdDev: 0.1}}))
		rows := readCSV(t, filepath.Join(w.Dir(), "summaries.csv"))
		require.Equal(t, []string{"node_ratio", "2", "0.5", "0.1"}, rows[1])
	})
}

func TestStats(t *testing.T) {
	t.Run("summarize", func(t *testing.T) {
		s := Summarize("x", []float64{1, 2, 3})
		require.Equal(t, 3, s.Count)
		require.InDelta(t, 2.0, s.Mean, 1e-12)
		require.InDelta(t, 1.0, s.StdDev, 1e-12, "Should use the sample standard deviation")

		require.Equal(t, Summary{Name: "empty"}, Summarize("empty", nil))
		require.Equal(t, 0.0, Summarize("one", []float64{4}).StdDev)
	})

	t.Run("z value", func(t *testing.T) {
		require.InDelta(t, 1.96, ZVal(95), 0.001)
		require.InDelta(t, 2.576, ZVal(99), 0.001)
	})

	t.Run("win rate", func(t *testing.T) {
		rate, margin := WinRate(6, 2, 10, 95)
		require.InDelta(t, 0.7, rate, 1e-12, "Should count draws as half a win")
		require.Greater(t, margin, 0.0)

		rate, margin = WinRate(0, 0, 0, 95)
		require.Zero(t, rate)
		require.Zero(t, margin)
	})
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
