package metrics

import (
	"time"

	"minimax/searcher"
)

type SearchMetric struct {
	Plies      int
	Duration   time.Duration
	Visited    int
	Leaves     int
	Prunings   int
	Evaluation float64
}

type MoveMetric struct {
	Step   int
	Player int // agent index
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int // agent index
	Winner         int // agent index, -1 for a draw or an unfinished game
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector is a search hook that turns the calls it observes during one
// search into a SearchMetric.
type Collector[S any] interface {
	searcher.Hook[S]
	Start(plies int)
	Complete(evaluation float64) SearchMetric
}

type collector[S any] struct {
	plies     int
	startTime time.Time
	visited   int
	leaves    int
	prunings  int
}

func NewCollector[S any]() Collector[S] {
	return &collector[S]{}
}

func (m *collector[S]) Start(plies int) {
	m.startTime = time.Now()
	m.plies = plies
	m.visited = 0
	m.leaves = 0
	m.prunings = 0
}

func (m *collector[S]) VisitedNode(S) {
	m.visited++
}

func (m *collector[S]) EvaluatedLeafNode(S) {
	m.leaves++
}

func (m *collector[S]) PruningIncident(searcher.PruningIncident[S]) {
	m.prunings++
}

func (m *collector[S]) Complete(evaluation float64) SearchMetric {
	return SearchMetric{
		Plies:      m.plies,
		Duration:   time.Since(m.startTime),
		Visited:    m.visited,
		Leaves:     m.leaves,
		Prunings:   m.prunings,
		Evaluation: evaluation,
	}
}

type dummyCollector[S any] struct{}

func NewDummyCollector[S any]() Collector[S] {
	return &dummyCollector[S]{}
}

func (m *dummyCollector[S]) Start(int)                                   {}
func (m *dummyCollector[S]) VisitedNode(S)                               {}
func (m *dummyCollector[S]) EvaluatedLeafNode(S)                         {}
func (m *dummyCollector[S]) PruningIncident(searcher.PruningIncident[S]) {}
func (m *dummyCollector[S]) Complete(float64) SearchMetric               { return SearchMetric{} }
