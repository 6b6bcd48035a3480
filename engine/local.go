package engine

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"minimax/experiments/metrics"
	"minimax/game"
)

type LocalEngine[S any, M comparable] struct {
	Rules    game.Rules[S, M]
	Agents   [2]Agent[S, M]
	MaxTurns int
}

func NewLocalEngine[S any, M comparable](rules game.Rules[S, M], agents [2]Agent[S, M], maxTurns int) *LocalEngine[S, M] {
	if agents[0] == nil || agents[1] == nil {
		panic("need two agents")
	}
	if maxTurns <= 0 {
		panic("max turns must be positive")
	}
	return &LocalEngine[S, M]{Rules: rules, Agents: agents, MaxTurns: maxTurns}
}

// Run executes the entire game loop until the game ends. The winner is the
// index of the winning agent, or -1 for a draw or a game stopped by the turn
// limit.
func (e *LocalEngine[S, M]) Run(state S, starting int) (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{StartingPlayer: starting, Winner: -1, StartTime: time.Now()}
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Msgf("%s is starting", e.Agents[starting].Name())

	turn := 0
	value, terminal := e.Rules.TerminalValue(state)
	for ; !terminal && turn < e.MaxTurns; turn++ {
		player := (starting + turn) % 2
		agent := e.Agents[player]

		move, searchMetric, err := agent.FindMove(state)
		if err != nil {
			return -1, gameMetric, moveMetrics, errors.Wrapf(err, "turn %d", turn+1)
		}
		if !lo.Contains(e.Rules.LegalMoves(state), move) {
			return -1, gameMetric, moveMetrics, errors.Wrapf(ErrIllegalMove, "%s played %v on turn %d", agent.Name(), move, turn+1)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn + 1,
			Player:       player,
			Move:         fmt.Sprint(move),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("turn %d: %s played %v", turn+1, agent.Name(), move)

		state = e.Rules.Play(state, move)
		value, terminal = e.Rules.TerminalValue(state)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = turn

	if !terminal {
		log.Info().Msgf("stopped after %d turns (no winner yet)", turn)
		return -1, gameMetric, moveMetrics, nil
	}

	// The terminal value is seen by the player who would move next.
	next := (starting + turn) % 2
	switch {
	case value > 0:
		gameMetric.Winner = next
	case value < 0:
		gameMetric.Winner = 1 - next
	}
	if gameMetric.Winner < 0 {
		log.Info().Msgf("game ended in a draw after %d turns", turn)
	} else {
		log.Info().Msgf("game ended after %d turns with winner: %s", turn, e.Agents[gameMetric.Winner].Name())
	}
	return gameMetric.Winner, gameMetric, moveMetrics, nil
}
