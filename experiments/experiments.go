package experiments

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"minimax/config"
	"minimax/engine"
	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/game/letters"
	"minimax/game/repeat"
	"minimax/game/sequence"
	"minimax/movetree"
	"minimax/searcher"
)

// Number of positions sampled by the pruning experiment.
const SampledPositions = 8

// Run executes the experiment or match described by c and stores its records
// under c.OutputDir.
func Run(c config.Config) error {
	writer, err := metrics.NewWriter(c.OutputDir, fmt.Sprintf("%s_%s", c.Mode, c.Game))
	if err != nil {
		return errors.Wrap(err, "failed to create experiment writer")
	}

	switch c.Game {
	case config.GameSequence:
		return run[sequence.State, sequence.Move](c, writer, sequence.New, sequence.Rules{}, sequence.Evaluate)
	case config.GameLetters:
		start, err := letters.New(c.Word)
		if err != nil {
			return err
		}
		newState := func() letters.State { return start }
		return run[letters.State, letters.Move](c, writer, newState, letters.Rules{}, letters.Evaluate)
	case config.GameRepeat:
		return run[repeat.State, repeat.Letter](c, writer, repeat.New, repeat.Rules{}, repeat.Evaluate)
	default:
		return errors.Wrapf(config.ErrInvalid, "unknown game %q", c.Game)
	}
}

func run[S any, M comparable](c config.Config, writer *metrics.Writer, newState func() S, rules game.Rules[S, M], evaluate game.Evaluate[S]) error {
	switch c.Mode {
	case config.ModeExperiment:
		rng := rand.New(rand.NewSource(c.Seed))
		positions := Positions(newState(), rules, rng, SampledPositions)
		collector := metrics.NewCollector[S]()
		pruned := searcher.NewAlphaBeta(rules, evaluate, searcher.WithRootPolicy(c.Policy())).SetHook(collector)
		full := movetree.NewOracle(rules, evaluate, c.Policy())
		report, err := RunPruning[S, M](c.Game, positions, pruned, full, collector, c.MaxPlies)
		if werr := writer.WriteSearchRecords(report.Records); werr != nil {
			return errors.Wrap(werr, "failed to write search records")
		}
		if err != nil {
			return err
		}
		log.Info().Msg("stored search records")

		if err := writer.WriteSummaries(report.Summaries); err != nil {
			return errors.Wrap(err, "failed to write summaries")
		}
		for _, s := range report.Summaries {
			log.Info().Msgf("%s: %.3f ± %.3f over %d searches", s.Name, s.Mean, s.StdDev, s.Count)
		}
		return nil

	case config.ModeMatch:
		matchUps := [][2]engine.Agent[S, M]{
			{
				engine.NewSearchAgent(rules, evaluate, c.Plies, searcher.WithRootPolicy(c.Policy())),
				engine.NewRandomAgent(rules, c.Seed),
			},
			{
				engine.NewSearchAgent(rules, evaluate, c.Plies, searcher.WithRootPolicy(c.Policy())),
				engine.NewOracleAgent(rules, evaluate, c.Plies),
			},
		}

		gameRecords := []metrics.GameRecord{}
		moveRecords := []metrics.MoveRecord{}
		for mi, agents := range matchUps {
			log.Info().Msgf("starting matchup %d of %d...", mi+1, len(matchUps))
			e := engine.NewLocalEngine(rules, agents, c.MaxTurns)
			report, err := RunMatch(e, newState, c.Games, len(gameRecords)+1)
			if err != nil {
				return errors.Wrapf(err, "matchup %d", mi+1)
			}
			gameRecords = append(gameRecords, report.Games...)
			moveRecords = append(moveRecords, report.Moves...)
		}

		if err := writer.WriteGameRecords(gameRecords); err != nil {
			return errors.Wrap(err, "failed to write game records")
		}
		log.Info().Msg("stored game records")
		if err := writer.WriteMoveRecords(moveRecords); err != nil {
			return errors.Wrap(err, "failed to write move records")
		}
		log.Info().Msg("stored move records")
		return nil

	default:
		return errors.Wrapf(config.ErrInvalid, "unknown mode %q", c.Mode)
	}
}
