package game

// Any game that aims to be searchable implements these capabilities; the
// searcher and movetree packages never look inside a state or a move.

// Rules enumerates legal moves, produces successor states and detects terminal
// states. States are treated as immutable: Play always returns a new state.
type Rules[S any, M comparable] interface {
	// LegalMoves returns the moves available to the player about to move, in
	// the order the search will try them. Never called on terminal states.
	LegalMoves(state S) []M
	Play(state S, move M) S
	// TerminalValue reports whether the state is terminal and, if so, its
	// definitive value from the perspective of the player about to move there.
	TerminalValue(state S) (value float64, terminal bool)
}

// Evaluates a state to a desirability score from the perspective of the
// player about to move: +Inf is a certain win, -Inf a certain loss, 0 neutral.
type Evaluate[S any] func(S) float64

// Successor is one immediate successor of a state, keyed by the move that
// produces it.
type Successor[S any, M comparable] struct {
	Move  M
	State S
}

// Brancher returns all immediate successors of a non-terminal state, in
// enumeration order.
type Brancher[S any, M comparable] func(S) []Successor[S, M]

// BranchFrom derives a Brancher from a set of rules.
func BranchFrom[S any, M comparable](rules Rules[S, M]) Brancher[S, M] {
	return func(state S) []Successor[S, M] {
		moves := rules.LegalMoves(state)
		successors := make([]Successor[S, M], len(moves))
		for i, move := range moves {
			successors[i] = Successor[S, M]{Move: move, State: rules.Play(state, move)}
		}
		return successors
	}
}

// IsTerminal adapts the terminal check of a set of rules to a predicate.
func IsTerminal[S any, M comparable](rules Rules[S, M]) func(S) bool {
	return func(state S) bool {
		_, terminal := rules.TerminalValue(state)
		return terminal
	}
}

// RuleFuncs bundles plain functions into Rules, for games that only know
// whether a state is terminal and score terminal states with the same
// evaluation function as any other state.
type RuleFuncs[S any, M comparable] struct {
	Moves    func(S) []M
	Next     func(S, M) S
	Terminal func(S) bool
	Evaluate Evaluate[S]
}

func (r RuleFuncs[S, M]) LegalMoves(state S) []M {
	return r.Moves(state)
}

func (r RuleFuncs[S, M]) Play(state S, move M) S {
	return r.Next(state, move)
}

func (r RuleFuncs[S, M]) TerminalValue(state S) (float64, bool) {
	if !r.Terminal(state) {
		return 0, false
	}
	return r.Evaluate(state), true
}
