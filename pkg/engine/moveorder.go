package engine

import (
	. "github.com/ChizhovVadim/CounterFour/pkg/common"
	"github.com/ChizhovVadim/CounterFour/pkg/eval"
)

const (
	OrderingSeq    = "seq"
	OrderingCenter = "center"
	OrderingDelta  = "delta"
)

// MoveOrder returns a permutation of ml. A legal hint goes first.
// The input slice is not modified.
type MoveOrder interface {
	Order(b *Board, ml []Move, hint Move) []Move
}

func NewMoveOrder(id string) (MoveOrder, error) {
	switch id {
	case OrderingSeq, "":
		return seqOrder{}, nil
	case OrderingCenter:
		return centerOrder{}, nil
	case OrderingDelta:
		return deltaOrder{}, nil
	}
	return nil, &ConfigurationError{Field: "ordering", Value: id, Reason: "unknown move ordering"}
}

type orderedMove struct {
	Move Move
	Key  int
}

type seqOrder struct{}

func (seqOrder) Order(b *Board, ml []Move, hint Move) []Move {
	var result = cloneMoves(ml)
	applyHint(result, hint)
	return result
}

type centerOrder struct{}

func (centerOrder) Order(b *Board, ml []Move, hint Move) []Move {
	return orderByKey(ml, hint, func(m Move) int {
		return -Abs(2*int(m) - (Columns - 1))
	})
}

type deltaOrder struct{}

func (deltaOrder) Order(b *Board, ml []Move, hint Move) []Move {
	var side = b.SideToMove()
	return orderByKey(ml, hint, func(m Move) int {
		return eval.EvalDelta(b, m, side)
	})
}

func orderByKey(ml []Move, hint Move, key func(m Move) int) []Move {
	var buffer [MaxMoves]orderedMove
	var oml = buffer[:0]
	for _, m := range ml {
		oml = append(oml, orderedMove{Move: m, Key: key(m)})
	}
	sortMoves(oml)
	var result = make([]Move, len(oml))
	for i := range oml {
		result[i] = oml[i].Move
	}
	applyHint(result, hint)
	return result
}

func applyHint(ml []Move, hint Move) {
	if hint == MoveEmpty {
		return
	}
	var index = findMoveIndex(ml, hint)
	if index >= 0 {
		moveToBegin(ml, index)
	}
}

// stable, descending by key
func sortMoves(moves []orderedMove) {
	for i := 1; i < len(moves); i++ {
		j, t := i, moves[i]
		for ; j > 0 && moves[j-1].Key < t.Key; j-- {
			moves[j] = moves[j-1]
		}
		moves[j] = t
	}
}
