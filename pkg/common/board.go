package common

import (
	"fmt"
	"strings"
)

// Board is an immutable value: Apply returns a modified copy.
type Board struct {
	cells   [CellCount]Player
	heights [Columns]int8
	chips   [3]int8
}

func (b *Board) Cell(col, row int) Player {
	return b.cells[MakeCell(col, row)]
}

func (b *Board) At(cell int) Player {
	return b.cells[cell]
}

// FreeRow returns the row a chip dropped into col lands on, or -1 for a full column.
func (b *Board) FreeRow(col Move) int {
	if col < 0 || col >= Columns {
		return -1
	}
	var h = int(b.heights[col])
	if h >= Rows {
		return -1
	}
	return h
}

func (b *Board) IsLegal(col Move) bool {
	return b.FreeRow(col) >= 0
}

func (b *Board) ChipCount() int {
	return int(b.chips[Player1]) + int(b.chips[Player2])
}

func (b *Board) IsFull() bool {
	return b.ChipCount() == CellCount
}

// SideToMove assumes Player1 opens the game.
func (b *Board) SideToMove() Player {
	if b.chips[Player1] > b.chips[Player2] {
		return Player2
	}
	return Player1
}

func (b *Board) Actions(buffer []Move) []Move {
	var result = buffer[:0]
	for col := Move(0); col < Columns; col++ {
		if b.heights[col] < Rows {
			result = append(result, col)
		}
	}
	return result
}

func (b Board) Apply(p Player, col Move) (Board, error) {
	if p != Player1 && p != Player2 {
		return b, fmt.Errorf("%w: bad player %v", ErrInvalidMove, p)
	}
	if col < 0 || col >= Columns {
		return b, fmt.Errorf("%w: column %v out of range", ErrInvalidMove, int(col))
	}
	var row = int(b.heights[col])
	if row >= Rows {
		return b, fmt.Errorf("%w: column %v is full", ErrInvalidMove, int(col))
	}
	b.cells[MakeCell(int(col), row)] = p
	b.heights[col]++
	b.chips[p]++
	return b, nil
}

func (b *Board) Terminal() Result {
	for i := range Segments {
		var p1, p2 = b.Count(&Segments[i])
		if p1 == SegmentLength {
			return ResultPlayer1Won
		}
		if p2 == SegmentLength {
			return ResultPlayer2Won
		}
	}
	if b.IsFull() {
		return ResultDraw
	}
	return ResultNone
}

func (b *Board) Mirror() Board {
	var result Board
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			result.cells[MakeCell(Columns-1-col, row)] = b.cells[MakeCell(col, row)]
		}
	}
	for col := 0; col < Columns; col++ {
		result.heights[Columns-1-col] = b.heights[col]
	}
	result.chips = b.chips
	return result
}

// ParseBoard replays a sequence of 1-indexed columns ("4453") with alternating players.
func ParseBoard(moves string) (Board, error) {
	var b Board
	var side = Player1
	for _, ch := range strings.TrimSpace(moves) {
		if ch < '1' || ch > '0'+Columns {
			return Board{}, fmt.Errorf("%w: bad column %q", ErrInvalidMove, ch)
		}
		var next, err = b.Apply(side, Move(ch-'1'))
		if err != nil {
			return Board{}, err
		}
		b = next
		side = side.Opponent()
	}
	return b, nil
}

func (b Board) String() string {
	var sb = &strings.Builder{}
	for row := Rows - 1; row >= 0; row-- {
		for col := 0; col < Columns; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.Cell(col, row).String())
		}
		sb.WriteByte('\n')
	}
	for col := 0; col < Columns; col++ {
		if col > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(sb, col+1)
	}
	return sb.String()
}
