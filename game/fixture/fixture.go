// Package fixture turns a literal labeled tree into a game. Moves are child
// labels; values are written from the root player's point of view and
// converted to the mover's point of view by depth parity, so a tree can be
// written down exactly as it would be drawn on paper.
package fixture

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/rand"

	"minimax/utils"
)

type Node struct {
	Label    string
	Value    float64 // root player's frame; heuristic for internal nodes
	Children []*Node
	parent   *Node
	depth    int
}

func Leaf(label string, value float64) *Node {
	return &Node{Label: label, Value: value}
}

func Branch(label string, children ...*Node) *Node {
	return &Node{Label: label, Children: children}
}

// Root wraps the given subtrees in a root node and links every node to its
// parent.
func Root(children ...*Node) *Node {
	root := Branch("root", children...)
	link(root, nil, 0)
	return root
}

func link(node, parent *Node, depth int) {
	node.parent = parent
	node.depth = depth
	for _, child := range node.Children {
		link(child, node, depth+1)
	}
}

// WithValue sets the heuristic value of an internal node.
func (n *Node) WithValue(value float64) *Node {
	n.Value = value
	return n
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) Depth() int {
	return n.depth
}

func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

func (n *Node) labels() []string {
	labels := make([]string, len(n.Children))
	for i, child := range n.Children {
		labels[i] = child.Label
	}
	return labels
}

// Find returns the first node labeled label in depth-first order.
func (n *Node) Find(label string) *Node {
	if n.Label == label {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(label); found != nil {
			return found
		}
	}
	return nil
}

// Size counts the nodes of the subtree.
func (n *Node) Size() int {
	size := 1
	for _, child := range n.Children {
		size += child.Size()
	}
	return size
}

func (n *Node) String() string {
	return n.Label
}

// Path lists the labels from the root down to this node.
func (n *Node) Path() string {
	labels := []string{}
	for node := n; node != nil; node = node.parent {
		labels = append([]string{node.Label}, labels...)
	}
	return strings.Join(labels, "/")
}

// relative converts the stored value into the frame of the player to move.
func (n *Node) relative() float64 {
	return n.Value * utils.Sign(n.depth%2 == 0)
}

// Rules implements game.Rules over *Node states.
type Rules struct{}

func (Rules) LegalMoves(n *Node) []string {
	return n.labels()
}

func (Rules) Play(n *Node, label string) *Node {
	i := utils.FindIndex(n.labels(), label)
	if i < 0 {
		panic(fmt.Sprintf("node %s has no child %q", n.Path(), label))
	}
	return n.Children[i]
}

func (Rules) TerminalValue(n *Node) (float64, bool) {
	if !n.IsLeaf() {
		return 0, false
	}
	return n.relative(), true
}

// Evaluate scores a node from the mover's perspective.
func Evaluate(n *Node) float64 {
	return n.relative()
}

// Random builds a tree at most depth plies deep whose internal nodes have
// between 1 and maxBranching children. Leaf values are small integers so that
// ties are frequent, with the occasional certain win or loss; internal nodes
// get heuristic values too, for searches that stop above the leaves.
func Random(rng *rand.Rand, depth, maxBranching int) *Node {
	counter := 0
	var build func(level int) *Node
	build = func(level int) *Node {
		counter++
		label := fmt.Sprintf("n%d", counter)
		value := float64(rng.Intn(21) - 10)
		if level == depth || (level > 0 && rng.Intn(6) == 0) {
			switch rng.Intn(20) {
			case 0:
				value = math.Inf(1)
			case 1:
				value = math.Inf(-1)
			}
			return Leaf(label, value)
		}
		children := make([]*Node, 1+rng.Intn(maxBranching))
		for i := range children {
			children[i] = build(level + 1)
		}
		return Branch(label, children...).WithValue(value)
	}

	root := build(0)
	root.Label = "root"
	link(root, nil, 0)
	return root
}
