package movetree

import (
	"github.com/samber/lo"

	"minimax/searcher"
)

// Node owns its children through an ordered, move-keyed mapping. Parent is a
// back-reference for traversal only.
type Node[S any, M comparable] struct {
	State      S
	Move       M // move that led here from Parent, zero at the root
	Maximizing bool
	Parent     *Node[S, M]
	evaluation *float64
	children   []*Node[S, M]
	index      map[M]int
}

func NewRoot[S any, M comparable](state S) *Node[S, M] {
	return &Node[S, M]{State: state, Maximizing: true}
}

// AddChild appends a child reached by move. The mover flips from parent to
// child.
func (n *Node[S, M]) AddChild(move M, state S) *Node[S, M] {
	if n.index == nil {
		n.index = make(map[M]int)
	}
	if _, ok := n.index[move]; ok {
		searcher.Fail(ErrDuplicateMove, "move %v", move)
	}
	child := &Node[S, M]{
		State:      state,
		Move:       move,
		Maximizing: !n.Maximizing,
		Parent:     n,
	}
	n.index[move] = len(n.children)
	n.children = append(n.children, child)
	return child
}

func (n *Node[S, M]) Child(move M) (*Node[S, M], bool) {
	i, ok := n.index[move]
	if !ok {
		return nil, false
	}
	return n.children[i], true
}

func (n *Node[S, M]) Children() []*Node[S, M] {
	return n.children
}

// Moves lists the child moves in enumeration order.
func (n *Node[S, M]) Moves() []M {
	return lo.Map(n.children, func(child *Node[S, M], _ int) M {
		return child.Move
	})
}

func (n *Node[S, M]) IsLeaf() bool {
	return len(n.children) == 0
}

func (n *Node[S, M]) IsRoot() bool {
	return n.Parent == nil
}

func (n *Node[S, M]) Evaluated() bool {
	return n.evaluation != nil
}

// Evaluation returns the stored value and whether there is one.
func (n *Node[S, M]) Evaluation() (float64, bool) {
	if n.evaluation == nil {
		return 0, false
	}
	return *n.evaluation, true
}

func (n *Node[S, M]) SetEvaluation(value float64) {
	n.evaluation = &value
}

func (n *Node[S, M]) Depth() int {
	depth := 0
	for node := n.Parent; node != nil; node = node.Parent {
		depth++
	}
	return depth
}

// Line returns the moves leading from the root to this node.
func (n *Node[S, M]) Line() []M {
	line := make([]M, n.Depth())
	for node, i := n, len(line)-1; node.Parent != nil; node, i = node.Parent, i-1 {
		line[i] = node.Move
	}
	return line
}

// Walk visits the subtree in post-order: children, left to right, before
// their parent.
func (n *Node[S, M]) Walk(visit func(*Node[S, M])) {
	for _, child := range n.children {
		child.Walk(visit)
	}
	visit(n)
}

func (n *Node[S, M]) Size() int {
	size := 0
	n.Walk(func(*Node[S, M]) { size++ })
	return size
}

func (n *Node[S, M]) Leaves() []*Node[S, M] {
	leaves := []*Node[S, M]{}
	n.Walk(func(node *Node[S, M]) {
		if node.IsLeaf() {
			leaves = append(leaves, node)
		}
	})
	return leaves
}
