// Package letters is the letter game: players take turns removing a letter
// from either end of a shared word and score its position in the alphabet.
// When the word is used up the higher score wins.
package letters

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

type Move int

const (
	TakeLeft Move = iota
	TakeRight
)

func (m Move) String() string {
	if m == TakeLeft {
		return "left"
	}
	return "right"
}

type State struct {
	Word   string
	Scores [2]int
	Turn   int
}

// New starts a game on word, keeping only its letters.
func New(word string) (State, error) {
	letters := strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, word)
	if letters == "" {
		return State{}, errors.Errorf("word %q has no ascii letters", word)
	}
	return State{Word: letters}, nil
}

func (s State) Player() int {
	return s.Turn % 2
}

// Margin is the score of the player to move minus the opponent's.
func (s State) Margin() int {
	return s.Scores[s.Player()] - s.Scores[1-s.Player()]
}

func (s State) String() string {
	return fmt.Sprintf("%q %d:%d", s.Word, s.Scores[0], s.Scores[1])
}

func score(letter byte) int {
	return int(letter-'a') + 1
}

type Rules struct{}

func (Rules) LegalMoves(s State) []Move {
	if len(s.Word) == 1 {
		return []Move{TakeLeft}
	}
	return []Move{TakeLeft, TakeRight}
}

func (Rules) Play(s State, m Move) State {
	next := State{Scores: s.Scores, Turn: s.Turn + 1}
	switch m {
	case TakeLeft:
		next.Scores[s.Player()] += score(s.Word[0])
		next.Word = s.Word[1:]
	case TakeRight:
		next.Scores[s.Player()] += score(s.Word[len(s.Word)-1])
		next.Word = s.Word[:len(s.Word)-1]
	default:
		panic(fmt.Sprintf("unknown move %d", int(m)))
	}
	return next
}

func (Rules) TerminalValue(s State) (float64, bool) {
	if s.Word != "" {
		return 0, false
	}
	switch margin := s.Margin(); {
	case margin > 0:
		return math.Inf(1), true
	case margin < 0:
		return math.Inf(-1), true
	default:
		return 0, true
	}
}

// Evaluate is the current score margin of the player to move.
func Evaluate(s State) float64 {
	return float64(s.Margin())
}
