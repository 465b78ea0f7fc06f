package eval

import (
	. "github.com/ChizhovVadim/CounterFour/pkg/common"
)

// deltaTable[own][opp] is the score change of a segment when the side to move
// drops a chip into it. Growing an untouched line gains the weight difference,
// the first chip in an opponent line removes the opponent weight.
var deltaTable [SegmentLength][SegmentLength]int

func init() {
	for own := 0; own < SegmentLength; own++ {
		for opp := 0; opp < SegmentLength; opp++ {
			var delta int
			if opp == 0 {
				delta = weights[own+1] - weights[own]
			} else if own == 0 {
				delta = weights[opp]
			}
			deltaTable[own][opp] = delta
		}
	}
}

// EvalDelta scores a single candidate move for p looking only at the segments
// through its landing cell. It returns Inf when the move connects four and
// Inf-1 when the move must be played: it blocks an opponent four or leaves two
// immediately playable winning cells.
func EvalDelta(b *Board, move Move, p Player) int {
	var row = b.FreeRow(move)
	if row < 0 {
		return 0
	}
	var cell = MakeCell(int(move), row)
	var score int
	var forced bool
	var threats [2]int
	var threatCount int
	for _, index := range CellSegments[cell] {
		var seg = &Segments[index]
		var own, opp = countFor(b, seg, p)
		if opp == 0 && own == SegmentLength-1 {
			return Inf
		}
		if own == 0 && opp == SegmentLength-1 {
			forced = true
		}
		if opp == 0 && own == SegmentLength-2 && threatCount < len(threats) {
			var threat = openCell(b, seg, cell)
			if isPlayableAfter(b, threat, move) &&
				!(threatCount == 1 && threats[0] == threat) {
				threats[threatCount] = threat
				threatCount++
			}
		}
		score += deltaTable[own][opp]
	}
	if forced || threatCount >= 2 {
		return Inf - 1
	}
	return score
}

func countFor(b *Board, seg *Segment, p Player) (own, opp int) {
	var p1, p2 = b.Count(seg)
	if p == Player1 {
		return p1, p2
	}
	return p2, p1
}

// openCell returns the empty cell of seg other than the landing cell.
func openCell(b *Board, seg *Segment, landing int) int {
	for _, cell := range seg {
		if cell != landing && b.At(cell) == Empty {
			return cell
		}
	}
	return -1
}

func isPlayableAfter(b *Board, cell int, move Move) bool {
	if cell < 0 {
		return false
	}
	var col = Move(CellColumn(cell))
	var height = b.FreeRow(col)
	if height < 0 {
		return false
	}
	if col == move {
		height++
	}
	return CellRow(cell) == height
}
