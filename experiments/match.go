package experiments

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"minimax/engine"
	"minimax/experiments/metrics"
	"minimax/meta"
)

type MatchReport struct {
	Games  []metrics.GameRecord
	Moves  []metrics.MoveRecord
	Wins   [2]int
	Draws  int
	Rate   float64 // score of the first agent
	Margin float64
}

// RunMatch plays games between the two agents of e, alternating the starting
// agent. Game IDs continue from firstID.
func RunMatch[S any, M comparable](e *engine.LocalEngine[S, M], newState func() S, games, firstID int) (MatchReport, error) {
	report := MatchReport{}
	agent1, agent2 := e.Agents[0].Name(), e.Agents[1].Name()

	log.Info().Msgf("starting match between %s and %s...", agent1, agent2)

	for i := 0; i < games; i++ {
		id := firstID + i
		winner, gameMetric, moveMetrics, err := e.Run(newState(), i%2)
		if err != nil {
			return report, errors.Wrapf(err, "game %d", id)
		}
		report.Games = append(report.Games, metrics.GameRecord{
			ID:         id,
			Agent1:     agent1,
			Agent2:     agent2,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			report.Moves = append(report.Moves, metrics.MoveRecord{Game: id, MoveMetric: mm})
		}
		if winner < 0 {
			report.Draws++
		} else {
			report.Wins[winner]++
		}
		log.Info().Msgf("completed game %d of %d with winner: %d", i+1, games, winner)
	}

	report.Rate, report.Margin = metrics.WinRate(report.Wins[0], report.Draws, games, meta.CONFIDENCE)
	log.Info().Msgf("completed match: %s scored %.2f ± %.2f against %s", agent1, report.Rate, report.Margin, agent2)
	return report, nil
}
