package common

// Segment is a run of four aligned cells that can hold a win.
type Segment [SegmentLength]int

var (
	Segments     []Segment
	CellSegments [CellCount][]int
)

func init() {
	var directions = [...][2]int{
		{1, 0},  // horizontal
		{0, 1},  // vertical
		{1, 1},  // diagonal
		{1, -1}, // anti-diagonal
	}
	for _, d := range directions {
		for row := 0; row < Rows; row++ {
			for col := 0; col < Columns; col++ {
				var lastCol = col + d[0]*(SegmentLength-1)
				var lastRow = row + d[1]*(SegmentLength-1)
				if lastCol < 0 || lastCol >= Columns || lastRow < 0 || lastRow >= Rows {
					continue
				}
				var seg Segment
				for i := range seg {
					seg[i] = MakeCell(col+d[0]*i, row+d[1]*i)
				}
				var index = len(Segments)
				Segments = append(Segments, seg)
				for _, cell := range seg {
					CellSegments[cell] = append(CellSegments[cell], index)
				}
			}
		}
	}
}

// MakeCell returns the index of a cell, row 0 being the bottom row.
func MakeCell(col, row int) int {
	return row*Columns + col
}

func CellColumn(cell int) int {
	return cell % Columns
}

func CellRow(cell int) int {
	return cell / Columns
}

// Count returns how many cells of the segment each player owns.
func (b *Board) Count(seg *Segment) (p1, p2 int) {
	for _, cell := range seg {
		switch b.cells[cell] {
		case Player1:
			p1++
		case Player2:
			p2++
		}
	}
	return
}
