package engine

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/movetree"
	"minimax/searcher"
)

type Agent[S any, M comparable] interface {
	Name() string
	// FindMove returns the move to play in state and performance metrics (if
	// collected) from the search behind it
	FindMove(state S) (M, metrics.SearchMetric, error)
}

type searchAgent[S any, M comparable] struct {
	search    *searcher.AlphaBeta[S, M]
	collector metrics.Collector[S]
	plies     int
}

// NewSearchAgent returns an agent that plays the alpha-beta decision at a
// fixed depth.
func NewSearchAgent[S any, M comparable](rules game.Rules[S, M], evaluate game.Evaluate[S], plies int, options ...searcher.Option) Agent[S, M] {
	collector := metrics.NewCollector[S]()
	return &searchAgent[S, M]{
		search:    searcher.NewAlphaBeta(rules, evaluate, options...).SetHook(collector),
		collector: collector,
		plies:     plies,
	}
}

func (a *searchAgent[S, M]) Name() string {
	return fmt.Sprintf("alphabeta-%d", a.plies)
}

func (a *searchAgent[S, M]) FindMove(state S) (M, metrics.SearchMetric, error) {
	a.collector.Start(a.plies)
	result, err := a.search.Search(state, a.plies)
	if err != nil {
		return result.BestMove, metrics.SearchMetric{}, errors.Wrap(err, a.Name())
	}
	if !result.HasMove {
		return result.BestMove, metrics.SearchMetric{}, errors.Wrap(ErrNoMove, a.Name())
	}
	return result.BestMove, a.collector.Complete(result.Evaluation), nil
}

type oracleAgent[S any, M comparable] struct {
	oracle *movetree.Oracle[S, M]
	plies  int
}

// NewOracleAgent returns an agent that builds the whole tree at a fixed depth
// before every move.
func NewOracleAgent[S any, M comparable](rules game.Rules[S, M], evaluate game.Evaluate[S], plies int) Agent[S, M] {
	return &oracleAgent[S, M]{
		oracle: movetree.NewOracle(rules, evaluate, searcher.RejectTerminalRoot),
		plies:  plies,
	}
}

func (a *oracleAgent[S, M]) Name() string {
	return fmt.Sprintf("oracle-%d", a.plies)
}

func (a *oracleAgent[S, M]) FindMove(state S) (M, metrics.SearchMetric, error) {
	start := time.Now()
	result, err := a.oracle.Search(state, a.plies)
	if err != nil {
		return result.BestMove, metrics.SearchMetric{}, errors.Wrap(err, a.Name())
	}
	if !result.HasMove {
		return result.BestMove, metrics.SearchMetric{}, errors.Wrap(ErrNoMove, a.Name())
	}
	nodes, leaves := a.oracle.LastTree()
	return result.BestMove, metrics.SearchMetric{
		Plies:      a.plies,
		Duration:   time.Since(start),
		Visited:    nodes,
		Leaves:     leaves,
		Evaluation: result.Evaluation,
	}, nil
}

type randomAgent[S any, M comparable] struct {
	rules game.Rules[S, M]
	rng   *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
func NewRandomAgent[S any, M comparable](rules game.Rules[S, M], seed uint64) Agent[S, M] {
	return &randomAgent[S, M]{
		rules: rules,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (a *randomAgent[S, M]) Name() string {
	return "random"
}

func (a *randomAgent[S, M]) FindMove(state S) (M, metrics.SearchMetric, error) {
	moves := a.rules.LegalMoves(state)
	if len(moves) == 0 {
		var none M
		return none, metrics.SearchMetric{}, errors.Wrap(ErrNoMove, a.Name())
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
