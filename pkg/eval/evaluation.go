package eval

import (
	. "github.com/ChizhovVadim/CounterFour/pkg/common"
)

// weights is indexed by the number of chips one player owns in a segment
// the opponent has not touched.
var weights = [SegmentLength + 1]int{0, 1, 4, 9, 0}

// Evaluate scores the board for p. Terminal boards score ±Inf or 0.
func Evaluate(p Player, b *Board) int {
	var score1, score2 int
	for i := range Segments {
		var p1, p2 = b.Count(&Segments[i])
		if p1 == SegmentLength || p2 == SegmentLength {
			if (p1 == SegmentLength) == (p == Player1) {
				return Inf
			}
			return -Inf
		}
		if p2 == 0 {
			score1 += weights[p1]
		} else if p1 == 0 {
			score2 += weights[p2]
		}
	}
	if b.IsFull() {
		return 0
	}
	var score = score1 - score2
	if p == Player2 {
		score = -score
	}
	return score
}
