package common

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	Columns       = 7
	Rows          = 6
	CellCount     = Columns * Rows
	SegmentLength = 4
	MaxMoves      = Columns
)

// Inf exceeds any heuristic score. Terminal scores are ±(Inf - ply).
const Inf = 1_000_000

var ErrInvalidMove = errors.New("invalid move")

type Player int8

const (
	Empty Player = iota
	Player1
	Player2
)

func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "X"
	case Player2:
		return "O"
	}
	return "."
}

// Move is a column index.
type Move int

const MoveEmpty Move = -1

// String renders the move 1-indexed, the way it is shown to users.
func (m Move) String() string {
	if m == MoveEmpty {
		return "-"
	}
	return strconv.Itoa(int(m) + 1)
}

func (m Move) Mirror() Move {
	if m == MoveEmpty {
		return m
	}
	return Columns - 1 - m
}

func ParseMove(s string) (Move, error) {
	var n, err = strconv.Atoi(s)
	if err != nil {
		return MoveEmpty, err
	}
	if n < 1 || n > Columns {
		return MoveEmpty, fmt.Errorf("%w: column %v out of range", ErrInvalidMove, n)
	}
	return Move(n - 1), nil
}

type Result int8

const (
	ResultNone Result = iota
	ResultDraw
	ResultPlayer1Won
	ResultPlayer2Won
)

// Winner returns Empty for draws and unfinished games.
func (r Result) Winner() Player {
	switch r {
	case ResultPlayer1Won:
		return Player1
	case ResultPlayer2Won:
		return Player2
	}
	return Empty
}

func (r Result) String() string {
	switch r {
	case ResultDraw:
		return "1/2-1/2"
	case ResultPlayer1Won:
		return "1-0"
	case ResultPlayer2Won:
		return "0-1"
	}
	return "*"
}
