package engine

import (
	. "github.com/ChizhovVadim/CounterFour/pkg/common"
	"github.com/ChizhovVadim/CounterFour/pkg/eval"
)

// Rules is everything a search engine needs from the game definition.
type Rules interface {
	Actions(b Board) []Move
	Apply(p Player, m Move, b Board) (Board, error)
	Terminal(b Board) Result
	Evaluate(p Player, b Board) int
	ToMove(b Board) Player
	Hash(b Board) (key Key, mirrored bool)
}

type Connect4 struct{}

func NewConnect4() *Connect4 {
	return &Connect4{}
}

func (r *Connect4) Actions(b Board) []Move {
	return b.Actions(make([]Move, 0, MaxMoves))
}

func (r *Connect4) Apply(p Player, m Move, b Board) (Board, error) {
	return b.Apply(p, m)
}

func (r *Connect4) Terminal(b Board) Result {
	return b.Terminal()
}

func (r *Connect4) Evaluate(p Player, b Board) int {
	return eval.Evaluate(p, &b)
}

func (r *Connect4) ToMove(b Board) Player {
	return b.SideToMove()
}

func (r *Connect4) Hash(b Board) (Key, bool) {
	return b.CanonicalKey()
}
