package engine

import (
	"strings"

	. "github.com/ChizhovVadim/CounterFour/pkg/common"
	"github.com/samber/lo"
)

const (
	rootPly   = 1
	maxPly    = 64
	valueDraw = 0
	valueWin  = Inf - 2*maxPly
	valueLoss = -valueWin
)

func lossIn(ply int) int {
	return -Inf + ply
}

func isMateScore(v int) bool {
	return v >= valueWin || v <= valueLoss
}

// valueToTT makes a mate score relative to the node it was found at.
func valueToTT(v, ply int) int {
	if v >= valueWin {
		return v + ply
	}
	if v <= valueLoss {
		return v - ply
	}
	return v
}

func valueFromTT(v, ply int) int {
	if v >= valueWin {
		return v - ply
	}
	if v <= valueLoss {
		return v + ply
	}
	return v
}

func findMoveIndex(ml []Move, move Move) int {
	for i := range ml {
		if ml[i] == move {
			return i
		}
	}
	return -1
}

func moveToBegin(ml []Move, index int) {
	if index <= 0 {
		return
	}
	var item = ml[index]
	for i := index; i > 0; i-- {
		ml[i] = ml[i-1]
	}
	ml[0] = item
}

func cloneMoves(ml []Move) []Move {
	var result = make([]Move, len(ml))
	copy(result, ml)
	return result
}

func prependMove(m Move, line []Move) []Move {
	var result = make([]Move, len(line)+1)
	result[0] = m
	copy(result[1:], line)
	return result
}

func mirrorMoves(ml []Move) []Move {
	return lo.Map(ml, func(m Move, _ int) Move {
		return m.Mirror()
	})
}

// FormatLine renders a line 1-indexed, e.g. "4, 4, 3".
func FormatLine(ml []Move) string {
	return strings.Join(lo.Map(ml, func(m Move, _ int) string {
		return m.String()
	}), ", ")
}
