// Package repeat is the repeated-letter game: players take turns calling one
// of the letters a, b and c, and whoever calls the letter just called loses.
// Every other position is even, which makes it a convenient game for checking
// exact tree shapes and values.
package repeat

import (
	"fmt"
	"math"
)

type Letter byte

const (
	None Letter = 0
	A    Letter = 'a'
	B    Letter = 'b'
	C    Letter = 'c'
)

func (l Letter) String() string {
	if l == None {
		return "-"
	}
	return string(rune(l))
}

type State struct {
	Turn int
	Prev Letter // called by the player to move
	Last Letter // called by the opponent
}

func New() State {
	return State{}
}

func (s State) Player() int {
	return s.Turn % 2
}

// Repeated tells whether the last letter repeats the one before it.
func (s State) Repeated() bool {
	return s.Last != None && s.Last == s.Prev
}

func (s State) String() string {
	return fmt.Sprintf("%v%v", s.Prev, s.Last)
}

type Rules struct{}

func (Rules) LegalMoves(State) []Letter {
	return []Letter{A, B, C}
}

func (Rules) Play(s State, l Letter) State {
	if l != A && l != B && l != C {
		panic(fmt.Sprintf("unknown letter %d", byte(l)))
	}
	return State{Turn: s.Turn + 1, Prev: s.Last, Last: l}
}

// TerminalValue is a certain win for the player to move once the opponent has
// repeated a letter.
func (Rules) TerminalValue(s State) (float64, bool) {
	if s.Repeated() {
		return math.Inf(1), true
	}
	return 0, false
}

func Evaluate(s State) float64 {
	value, _ := Rules{}.TerminalValue(s)
	return value
}
