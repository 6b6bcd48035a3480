package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// SearchRecord compares one alpha-beta search with the exhaustive tree built
// for the same position and depth.
type SearchRecord struct {
	Game           string
	Move           string
	TreeNodes      int
	TreeLeaves     int
	OracleDuration time.Duration
	Agree          bool
	SearchMetric
}

// NodeRatio is the share of the full tree the pruned search visited.
func (r SearchRecord) NodeRatio() float64 {
	if r.TreeNodes == 0 {
		return 0
	}
	return float64(r.Visited) / float64(r.TreeNodes)
}

type GameRecord struct {
	ID     int
	Agent1 string
	Agent2 string
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Summary struct {
	Name   string
	Count  int
	Mean   float64
	StdDev float64
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped directory below outputDir/name for the
// files of one experiment run.
func NewWriter(outputDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(outputDir, name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create directory")
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSearchRecords(records []SearchRecord) error {
	header := []string{"game", "plies", "move", "evaluation", "visited", "leaves", "prunings", "tree_nodes", "tree_leaves", "node_ratio", "duration", "oracle_duration", "agree"}
	rows := lo.Map(records, func(r SearchRecord, _ int) []string {
		return []string{
			r.Game,
			strconv.Itoa(r.Plies),
			r.Move,
			formatFloat(r.Evaluation),
			strconv.Itoa(r.Visited),
			strconv.Itoa(r.Leaves),
			strconv.Itoa(r.Prunings),
			strconv.Itoa(r.TreeNodes),
			strconv.Itoa(r.TreeLeaves),
			formatFloat(r.NodeRatio()),
			r.Duration.String(),
			r.OracleDuration.String(),
			strconv.FormatBool(r.Agree),
		}
	})
	return w.write("search_records.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves"}
	rows := lo.Map(records, func(r GameRecord, _ int) []string {
		return []string{
			strconv.Itoa(r.ID),
			r.Agent1,
			r.Agent2,
			strconv.Itoa(r.StartingPlayer),
			strconv.Itoa(r.Winner),
			r.StartTime.Format(time.RFC3339),
			r.EndTime.Format(time.RFC3339),
			r.Duration.String(),
			strconv.Itoa(r.TotalMoves),
		}
	})
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "plies", "evaluation", "visited", "leaves", "prunings", "duration"}
	rows := lo.Map(records, func(r MoveRecord, _ int) []string {
		return []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			strconv.Itoa(r.Player),
			r.Move,
			strconv.Itoa(r.Plies),
			formatFloat(r.Evaluation),
			strconv.Itoa(r.Visited),
			strconv.Itoa(r.Leaves),
			strconv.Itoa(r.Prunings),
			r.Duration.String(),
		}
	})
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) WriteSummaries(summaries []Summary) error {
	header := []string{"name", "count", "mean", "std_dev"}
	rows := lo.Map(summaries, func(s Summary, _ int) []string {
		return []string{s.Name, strconv.Itoa(s.Count), formatFloat(s.Mean), formatFloat(s.StdDev)}
	})
	return w.write("summaries.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", name)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return errors.Wrapf(err, "failed to write %s header", name)
	}
	if err := writer.WriteAll(rows); err != nil {
		return errors.Wrapf(err, "failed to write %s rows", name)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
