package searcher

import (
	"fmt"

	"github.com/rs/zerolog"
)

// LogHook writes every observation to a zerolog logger: visits and leaves at
// trace level, pruning incidents at debug level.
type LogHook[S any] struct {
	logger zerolog.Logger
}

func NewLogHook[S any](logger zerolog.Logger) *LogHook[S] {
	return &LogHook[S]{logger: logger}
}

func (l *LogHook[S]) VisitedNode(state S) {
	l.logger.Trace().Str("state", fmt.Sprint(state)).Msg("visited-node")
}

func (l *LogHook[S]) EvaluatedLeafNode(state S) {
	l.logger.Trace().Str("state", fmt.Sprint(state)).Msg("evaluated-leaf")
}

func (l *LogHook[S]) PruningIncident(incident PruningIncident[S]) {
	l.logger.Debug().
		Str("state", fmt.Sprint(incident.Node)).
		Stringer("direction", incident.Direction).
		Float64("value", incident.Value).
		Float64("threshold", incident.Threshold).
		Int("childIndex", incident.ChildIndex).
		Msg("pruned")
}
