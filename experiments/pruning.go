package experiments

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"

	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/searcher"
)

var ErrDisagreement = errors.New("alpha-beta search and full tree disagree")

type PruningReport struct {
	Records   []metrics.SearchRecord
	Summaries []metrics.Summary
}

// Positions plays random legal moves from state and returns up to n of the
// non-terminal positions it passes through, state included.
func Positions[S any, M comparable](state S, rules game.Rules[S, M], rng *rand.Rand, n int) []S {
	positions := []S{}
	for len(positions) < n {
		if _, terminal := rules.TerminalValue(state); terminal {
			break
		}
		positions = append(positions, state)
		moves := rules.LegalMoves(state)
		state = rules.Play(state, moves[rng.Intn(len(moves))])
	}
	return positions
}

// TreeSizer is implemented by searchers that can report the size of the tree
// behind their last decision.
type TreeSizer interface {
	LastTree() (nodes, leaves int)
}

// RunPruning searches every position at 1 to maxPlies plies with both pruned
// and full, and fails as soon as the two disagree. collector must be the hook
// attached to pruned; nil records no search statistics. When full is a
// TreeSizer the records compare the nodes visited by pruned with the size of
// its tree.
func RunPruning[S any, M comparable](name string, positions []S, pruned, full searcher.Searcher[S, M], collector metrics.Collector[S], maxPlies int) (PruningReport, error) {
	if collector == nil {
		collector = metrics.NewDummyCollector[S]()
	}
	sizer, sized := full.(TreeSizer)
	report := PruningReport{}

	log.Info().Msgf("starting %s pruning experiment on %d positions...", name, len(positions))

	for pi, position := range positions {
		for plies := 1; plies <= maxPlies; plies++ {
			collector.Start(plies)
			got, err := pruned.Search(position, plies)
			if err != nil {
				return report, errors.Wrapf(err, "pruned search on position %d at %d plies", pi, plies)
			}
			searchMetric := collector.Complete(got.Evaluation)
			searchMetric.Plies = plies

			start := time.Now()
			expected, err := full.Search(position, plies)
			if err != nil {
				return report, errors.Wrapf(err, "full tree on position %d at %d plies", pi, plies)
			}
			var nodes, leaves int
			if sized {
				nodes, leaves = sizer.LastTree()
			}

			record := metrics.SearchRecord{
				Game:           name,
				Move:           fmt.Sprint(got.BestMove),
				TreeNodes:      nodes,
				TreeLeaves:     leaves,
				OracleDuration: time.Since(start),
				Agree:          got == expected,
				SearchMetric:   searchMetric,
			}
			report.Records = append(report.Records, record)

			if !record.Agree {
				return report, errors.Wrapf(ErrDisagreement, "position %d at %d plies: got %+v, full tree %+v", pi, plies, got, expected)
			}
		}
		log.Debug().Msgf("completed position %d of %d", pi+1, len(positions))
	}

	report.Summaries = summarize(report.Records, maxPlies)
	log.Info().Msgf("completed %s pruning experiment", name)
	return report, nil
}

func summarize(records []metrics.SearchRecord, maxPlies int) []metrics.Summary {
	ratio := func(r metrics.SearchRecord, _ int) float64 { return r.NodeRatio() }
	prunings := func(r metrics.SearchRecord, _ int) float64 { return float64(r.Prunings) }

	summaries := []metrics.Summary{
		metrics.Summarize("node_ratio", lo.Map(records, ratio)),
		metrics.Summarize("prunings", lo.Map(records, prunings)),
	}
	byPlies := lo.GroupBy(records, func(r metrics.SearchRecord) int { return r.Plies })
	for plies := 1; plies <= maxPlies; plies++ {
		if group, ok := byPlies[plies]; ok {
			summaries = append(summaries, metrics.Summarize(fmt.Sprintf("node_ratio_%d", plies), lo.Map(group, ratio)))
		}
	}
	return summaries
}
