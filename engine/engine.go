package engine

import (
	"github.com/pkg/errors"

	"minimax/experiments/metrics"
)

var (
	ErrIllegalMove = errors.New("agent chose an illegal move")
	ErrNoMove      = errors.New("agent found no move")
)

type Engine[S any] interface {
	// Run plays a game from state till it ends or a max number of moves is
	// reached. starting is the index of the agent that moves first.
	Run(state S, starting int) (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
