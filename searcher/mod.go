package searcher

import (
	"minimax/game"
)

// Result is the decision at the root of a search: the best move and the
// evaluation it leads to, in the root mover's frame. HasMove is false when no
// move was searched, i.e. the root was terminal or searched at zero plies.
type Result[M comparable] struct {
	BestMove   M
	HasMove    bool
	Evaluation float64
}

// RootPolicy selects how a search treats a root state that is already
// terminal.
type RootPolicy int

const (
	// Return immediately with no move and the terminal value of the root,
	// without consulting the evaluation function or the hook.
	TolerateTerminalRoot RootPolicy = iota
	// Fail with ErrTerminalRoot.
	RejectTerminalRoot
)

func (p RootPolicy) String() string {
	switch p {
	case TolerateTerminalRoot:
		return "tolerate"
	case RejectTerminalRoot:
		return "reject"
	default:
		return "unknown"
	}
}

// ParseRootPolicy maps the names returned by RootPolicy.String back to
// policies.
func ParseRootPolicy(name string) (RootPolicy, bool) {
	switch name {
	case "tolerate", "":
		return TolerateTerminalRoot, true
	case "reject":
		return RejectTerminalRoot, true
	default:
		return TolerateTerminalRoot, false
	}
}

type Searcher[S any, M comparable] interface {
	Search(state S, plies int) (Result[M], error)
}

// Search runs a single alpha-beta search with a fresh engine.
func Search[S any, M comparable](state S, rules game.Rules[S, M], evaluate game.Evaluate[S], plies int, hook Hook[S], options ...Option) (Result[M], error) {
	return NewAlphaBeta(rules, evaluate, options...).SetHook(hook).Search(state, plies)
}
