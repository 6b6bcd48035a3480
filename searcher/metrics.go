package searcher

// Direction tells which side of the window a pruned node fell on.
type Direction int

const (
	AboveBeta Direction = iota
	BelowAlpha
)

func (d Direction) String() string {
	switch d {
	case AboveBeta:
		return "aboveBeta"
	case BelowAlpha:
		return "belowAlpha"
	default:
		return "unknown"
	}
}

// PruningIncident records that the search stopped examining the remaining
// moves of Node after the move at ChildIndex.
type PruningIncident[S any] struct {
	Node       S
	Direction  Direction
	Value      float64
	Threshold  float64
	ChildIndex int
}

// Hook observes a search. It is called synchronously from the search, in
// visiting order.
type Hook[S any] interface {
	// Called on every recursive entry, the root included.
	VisitedNode(state S)
	// Called once per leaf evaluation (terminal state or exhausted plies).
	EvaluatedLeafNode(state S)
	PruningIncident(incident PruningIncident[S])
}

// Counter is a Hook that tallies what it observes. A nil *Counter is a valid
// hook that records nothing.
type Counter[S any] struct {
	Visited   int
	Leaves    int
	Incidents []PruningIncident[S]
}

func NewCounter[S any]() *Counter[S] {
	return &Counter[S]{}
}

func (c *Counter[S]) VisitedNode(S) {
	if c == nil {
		return
	}
	c.Visited++
}

func (c *Counter[S]) EvaluatedLeafNode(S) {
	if c == nil {
		return
	}
	c.Leaves++
}

func (c *Counter[S]) PruningIncident(incident PruningIncident[S]) {
	if c == nil {
		return
	}
	c.Incidents = append(c.Incidents, incident)
}

func (c *Counter[S]) Prunings() int {
	if c == nil {
		return 0
	}
	return len(c.Incidents)
}

func (c *Counter[S]) Reset() {
	if c == nil {
		return
	}
	c.Visited = 0
	c.Leaves = 0
	c.Incidents = nil
}

type noHook[S any] struct{}

func (noHook[S]) VisitedNode(S)                       {}
func (noHook[S]) EvaluatedLeafNode(S)                 {}
func (noHook[S]) PruningIncident(PruningIncident[S]) {}

// NoHook returns a Hook that ignores everything.
func NoHook[S any]() Hook[S] {
	return noHook[S]{}
}

type multiHook[S any] []Hook[S]

func (m multiHook[S]) VisitedNode(state S) {
	for _, h := range m {
		h.VisitedNode(state)
	}
}

func (m multiHook[S]) EvaluatedLeafNode(state S) {
	for _, h := range m {
		h.EvaluatedLeafNode(state)
	}
}

func (m multiHook[S]) PruningIncident(incident PruningIncident[S]) {
	for _, h := range m {
		h.PruningIncident(incident)
	}
}

// Hooks fans every call out to each non-nil hook, in order. Only untyped nils
// are dropped; a typed nil pointer must handle a nil receiver itself.
func Hooks[S any](hooks ...Hook[S]) Hook[S] {
	m := make(multiHook[S], 0, len(hooks))
	for _, h := range hooks {
		if h != nil {
			m = append(m, h)
		}
	}
	return m
}
