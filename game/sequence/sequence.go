// Package sequence is the number-sequence game: a shared counter starts at
// zero, each player in turn adds 1, 2, 3 or 4 to it, and whoever brings it to
// exactly Target wins.
package sequence

import (
	"math"
)

const Target = 10

var steps = []Move{1, 2, 3, 4}

type Move int

type State struct {
	Counter int
	Turn    int // number of moves played so far
}

func New() State {
	return State{}
}

// Player returns 0 or 1: the player about to move.
func (s State) Player() int {
	return s.Turn % 2
}

func (s State) IsTerminal() bool {
	return s.Counter >= Target
}

type Rules struct{}

// LegalMoves lists the steps that do not overshoot the target.
func (Rules) LegalMoves(s State) []Move {
	moves := make([]Move, 0, len(steps))
	for _, step := range steps {
		if s.Counter+int(step) <= Target {
			moves = append(moves, step)
		}
	}
	return moves
}

func (Rules) Play(s State, m Move) State {
	return State{Counter: s.Counter + int(m), Turn: s.Turn + 1}
}

// TerminalValue: the opponent just reached the target, so the player to move
// has lost.
func (Rules) TerminalValue(s State) (float64, bool) {
	if !s.IsTerminal() {
		return 0, false
	}
	return math.Inf(-1), true
}

// Evaluate scores a non-terminal state for the player to move. A distance to
// the target that is a multiple of five cannot be escaped by the mover.
func Evaluate(s State) float64 {
	if s.IsTerminal() {
		return math.Inf(-1)
	}
	if (Target-s.Counter)%5 == 0 {
		return -1
	}
	return 1
}
