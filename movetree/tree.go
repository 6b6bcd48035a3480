package movetree

import (
	"math"

	"github.com/pkg/errors"

	"minimax/game"
	"minimax/searcher"
	"minimax/utils"
)

/*
Exhaustive two-phase minimax without pruning.

Generate materializes every line of play down to the ply limit, EvaluateLeaves
scores the leaves in the root player's frame and Propagate folds the values
upwards, maximizing at the root player's nodes and minimizing at the
opponent's. The result must always agree with the alpha-beta search, which
makes this the reference it is checked against.
*/

var ErrDuplicateMove = errors.New("brancher returned the same move twice")

// LeafEvaluator scores a leaf in the root player's frame. maximizing tells
// whether the player to move at the leaf is the root player.
type LeafEvaluator[S any] func(state S, maximizing bool) float64

// RootFrame builds a LeafEvaluator from mover-relative rules: the terminal
// value when the leaf is terminal, the heuristic otherwise, sign-adjusted to
// the root player.
func RootFrame[S any, M comparable](rules game.Rules[S, M], evaluate game.Evaluate[S]) LeafEvaluator[S] {
	return func(state S, maximizing bool) float64 {
		value, terminal := rules.TerminalValue(state)
		if !terminal {
			value = evaluate(state)
		}
		return value * utils.Sign(maximizing)
	}
}

// Generate builds the tree of all lines of play from state, plies deep.
// Terminal states are never expanded.
func Generate[S any, M comparable](state S, branch game.Brancher[S, M], terminal func(S) bool, plies int) (root *Node[S, M], err error) {
	defer searcher.Recover(&err)

	if plies < 0 {
		searcher.Fail(searcher.ErrNegativePlies, "got %d", plies)
	}
	root = NewRoot[S, M](state)
	expand(root, branch, terminal, plies)
	return root, nil
}

func expand[S any, M comparable](node *Node[S, M], branch game.Brancher[S, M], terminal func(S) bool, plies int) {
	if plies == 0 || terminal(node.State) {
		return
	}
	successors := branch(node.State)
	if len(successors) == 0 {
		searcher.Fail(searcher.ErrNoLegalMoves, "at depth %d", node.Depth())
	}
	for _, successor := range successors {
		child := node.AddChild(successor.Move, successor.State)
		expand(child, branch, terminal, plies-1)
	}
}

// EvaluateLeaves stores evaluator's value on every leaf of the tree.
func EvaluateLeaves[S any, M comparable](root *Node[S, M], evaluator LeafEvaluator[S]) {
	root.Walk(func(node *Node[S, M]) {
		if node.IsLeaf() {
			node.SetEvaluation(evaluator(node.State, node.Maximizing))
		}
	})
}

// Propagate evaluates every internal node from its children: the maximum
// where the root player moves, the minimum elsewhere.
func Propagate[S any, M comparable](root *Node[S, M]) (err error) {
	defer searcher.Recover(&err)

	root.Walk(func(node *Node[S, M]) {
		if node.IsLeaf() {
			return
		}
		best := math.Inf(-1)
		if !node.Maximizing {
			best = math.Inf(1)
		}
		for _, child := range node.children {
			value, ok := child.Evaluation()
			if !ok {
				searcher.Fail(searcher.ErrUnevaluatedChild, "move %v at depth %d", child.Move, child.Depth())
			}
			if node.Maximizing {
				best = math.Max(best, value)
			} else {
				best = math.Min(best, value)
			}
		}
		node.SetEvaluation(best)
	})
	return nil
}

// PickRootMove returns the first root move whose evaluation equals the
// root's.
func PickRootMove[S any, M comparable](root *Node[S, M]) (move M, err error) {
	defer searcher.Recover(&err)

	if root.IsLeaf() {
		searcher.Fail(searcher.ErrNoChildren, "root cannot choose a move")
	}
	value, ok := root.Evaluation()
	if !ok {
		searcher.Fail(searcher.ErrUnevaluatedChild, "root has not been propagated")
	}
	for _, child := range root.children {
		v, ok := child.Evaluation()
		if !ok {
			searcher.Fail(searcher.ErrUnevaluatedChild, "root move %v", child.Move)
		}
		if v == value {
			return child.Move, nil
		}
	}
	searcher.Fail(searcher.ErrNoResult, "no child carries the root value %v", value)
	return move, nil
}

// Solve runs the whole pipeline on state and reports its decision the way
// searcher.Search does. Terminal roots are tolerated at any plies.
func Solve[S any, M comparable](state S, rules game.Rules[S, M], evaluate game.Evaluate[S], plies int) (searcher.Result[M], error) {
	result, _, err := solve(state, rules, evaluate, plies)
	return result, err
}

func solve[S any, M comparable](state S, rules game.Rules[S, M], evaluate game.Evaluate[S], plies int) (searcher.Result[M], *Node[S, M], error) {
	if value, terminal := rules.TerminalValue(state); terminal {
		root := NewRoot[S, M](state)
		root.SetEvaluation(value)
		return searcher.Result[M]{Evaluation: value}, root, nil
	}
	root, err := Generate(state, game.BranchFrom(rules), game.IsTerminal(rules), plies)
	if err != nil {
		return searcher.Result[M]{}, nil, err
	}
	EvaluateLeaves(root, RootFrame(rules, evaluate))
	if err := Propagate(root); err != nil {
		return searcher.Result[M]{}, root, err
	}
	value, _ := root.Evaluation()
	if root.IsLeaf() {
		return searcher.Result[M]{Evaluation: value}, root, nil
	}
	move, err := PickRootMove(root)
	if err != nil {
		return searcher.Result[M]{}, root, err
	}
	return searcher.Result[M]{BestMove: move, HasMove: true, Evaluation: value}, root, nil
}

// Oracle adapts Solve to searcher.Searcher and remembers the size of the
// last tree it built.
type Oracle[S any, M comparable] struct {
	rules      game.Rules[S, M]
	evaluate   game.Evaluate[S]
	policy     searcher.RootPolicy
	lastNodes  int
	lastLeaves int
}

var _ searcher.Searcher[int, int] = (*Oracle[int, int])(nil)

func NewOracle[S any, M comparable](rules game.Rules[S, M], evaluate game.Evaluate[S], policy searcher.RootPolicy) *Oracle[S, M] {
	if rules == nil || evaluate == nil {
		panic("oracle requires rules and an evaluation function")
	}
	return &Oracle[S, M]{rules: rules, evaluate: evaluate, policy: policy}
}

func (o *Oracle[S, M]) Search(state S, plies int) (result searcher.Result[M], err error) {
	defer searcher.Recover(&err)

	_, terminal := o.rules.TerminalValue(state)
	if terminal && o.policy == searcher.RejectTerminalRoot {
		searcher.Fail(searcher.ErrTerminalRoot, "root policy is %s", o.policy)
	}
	result, root, err := solve(state, o.rules, o.evaluate, plies)
	o.lastNodes, o.lastLeaves = 0, 0
	if root != nil {
		o.lastNodes = root.Size()
		o.lastLeaves = len(root.Leaves())
	}
	return result, err
}

// LastTree reports the node and leaf counts of the tree built by the most
// recent Search.
func (o *Oracle[S, M]) LastTree() (nodes, leaves int) {
	return o.lastNodes, o.lastLeaves
}
