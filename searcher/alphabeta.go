package searcher

import (
	"math"

	"minimax/game"
	"minimax/utils"
)

/*
Depth-limited minimax with alpha-beta pruning over mover-relative evaluations.

Every evaluation a game reports is seen from the player about to move. The
search keeps a single frame, the root mover's, by flipping a maximizing flag at
each level and multiplying leaf values by +1 or -1 accordingly.

Cutoffs fire on v >= beta (v <= alpha when minimizing), not on the strict
inequality, and only while moves remain: running out of moves is never
reported as pruning.
*/

type AlphaBeta[S any, M comparable] struct {
	rules    game.Rules[S, M]
	evaluate game.Evaluate[S]
	hook     Hook[S]
	settings
}

var _ Searcher[int, int] = (*AlphaBeta[int, int])(nil)

func NewAlphaBeta[S any, M comparable](rules game.Rules[S, M], evaluate game.Evaluate[S], options ...Option) *AlphaBeta[S, M] {
	if rules == nil || evaluate == nil {
		panic("alpha-beta search requires rules and an evaluation function")
	}
	ab := &AlphaBeta[S, M]{
		rules:    rules,
		evaluate: evaluate,
		hook:     NoHook[S](),
		settings: defaultSettings(),
	}
	for _, option := range options {
		option(&ab.settings)
	}
	return ab
}

// SetHook attaches a statistics hook; nil detaches it. A typed nil pointer is
// kept as is, so its methods must tolerate a nil receiver the way Counter's do.
func (ab *AlphaBeta[S, M]) SetHook(hook Hook[S]) *AlphaBeta[S, M] {
	if hook == nil {
		hook = NoHook[S]()
	}
	ab.hook = hook
	return ab
}

func (ab *AlphaBeta[S, M]) RootPolicy() RootPolicy {
	return ab.rootPolicy
}

func (ab *AlphaBeta[S, M]) Window() (alpha, beta float64) {
	return ab.alpha, ab.beta
}

// Search explores state to the given number of plies and returns the best
// move for the player about to move there.
func (ab *AlphaBeta[S, M]) Search(state S, plies int) (result Result[M], err error) {
	defer Recover(&err)

	// A finished game has the same result whatever the depth asked for
	if value, terminal := ab.rules.TerminalValue(state); terminal {
		if ab.rootPolicy == RejectTerminalRoot {
			Fail(ErrTerminalRoot, "root policy is %s", ab.rootPolicy)
		}
		return Result[M]{Evaluation: value}, nil
	}

	if plies < 0 {
		Fail(ErrNegativePlies, "got %d", plies)
	}

	result = ab.search(state, plies, ab.alpha, ab.beta, true)
	if plies > 0 && !result.HasMove {
		Fail(ErrNoResult, "searched %d plies", plies)
	}
	return result, nil
}

func (ab *AlphaBeta[S, M]) search(state S, plies int, alpha, beta float64, maximizing bool) Result[M] {
	ab.hook.VisitedNode(state)

	value, terminal := ab.rules.TerminalValue(state)
	if terminal || plies == 0 {
		if !terminal {
			value = ab.evaluate(state)
		}
		ab.hook.EvaluatedLeafNode(state)
		return Result[M]{Evaluation: value * utils.Sign(maximizing)}
	}

	moves := ab.rules.LegalMoves(state)
	if len(moves) == 0 {
		Fail(ErrNoLegalMoves, "%d plies remaining", plies)
	}

	if maximizing {
		return ab.maximize(state, moves, plies, alpha, beta)
	}
	return ab.minimize(state, moves, plies, alpha, beta)
}

func (ab *AlphaBeta[S, M]) maximize(state S, moves []M, plies int, alpha, beta float64) Result[M] {
	// Falls back to the first move when nothing beats the sentinel
	best := Result[M]{BestMove: moves[0], HasMove: true, Evaluation: math.Inf(-1)}
	last := len(moves) - 1

	for i, move := range moves {
		child := ab.search(ab.rules.Play(state, move), plies-1, math.Max(best.Evaluation, alpha), beta, false)

		if child.Evaluation > best.Evaluation {
			best.BestMove = move
			best.Evaluation = child.Evaluation
			if math.IsInf(child.Evaluation, 1) {
				return best // certain win
			}
		}

		if best.Evaluation >= beta && i < last {
			ab.hook.PruningIncident(PruningIncident[S]{
				Node:       state,
				Direction:  AboveBeta,
				Value:      best.Evaluation,
				Threshold:  beta,
				ChildIndex: i,
			})
			break
		}
	}
	return best
}

func (ab *AlphaBeta[S, M]) minimize(state S, moves []M, plies int, alpha, beta float64) Result[M] {
	best := Result[M]{BestMove: moves[0], HasMove: true, Evaluation: math.Inf(1)}
	last := len(moves) - 1

	for i, move := range moves {
		child := ab.search(ab.rules.Play(state, move), plies-1, alpha, math.Min(best.Evaluation, beta), true)

		if child.Evaluation < best.Evaluation {
			best.BestMove = move
			best.Evaluation = child.Evaluation
			if math.IsInf(child.Evaluation, -1) {
				return best // certain loss for the maximizing side
			}
		}

		if best.Evaluation <= alpha && i < last {
			ab.hook.PruningIncident(PruningIncident[S]{
				Node:       state,
				Direction:  BelowAlpha,
				Value:      best.Evaluation,
				Threshold:  alpha,
				ChildIndex: i,
			})
			break
		}
	}
	return best
}
