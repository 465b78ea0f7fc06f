package play

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	. "github.com/ChizhovVadim/CounterFour/pkg/common"
	"github.com/ChizhovVadim/CounterFour/pkg/engine"
	"github.com/ChizhovVadim/CounterFour/pkg/protocol"
	"github.com/rs/zerolog"
)

type Engine interface {
	Search(ctx context.Context, params engine.SearchParams) engine.SearchInfo
	String() string
}

type session struct {
	out    io.Writer
	eng    Engine
	rules  engine.Rules
	board  Board
	human  Player
	limits engine.Limits
	color  bool
}

// Play runs a terminal game between a human typing columns 1-7 and eng.
func Play(
	ctx context.Context,
	in io.Reader,
	out io.Writer,
	eng Engine,
	start Board,
	human Player,
	limits engine.Limits,
	color bool,
	logger zerolog.Logger,
) error {
	var s = &session{
		out:    out,
		eng:    eng,
		rules:  engine.NewConnect4(),
		board:  start,
		human:  human,
		limits: limits,
		color:  color,
	}
	s.print()
	if s.finished() {
		return nil
	}
	if s.rules.ToMove(s.board) != s.human {
		if err := s.engineMove(ctx); err != nil {
			return err
		}
		if s.finished() {
			return nil
		}
	}
	return protocol.RunCli(ctx, in, logger, s)
}

func (s *session) Handle(ctx context.Context, command string) error {
	command = strings.TrimSpace(command)
	if command == "" {
		return nil
	}
	var m, err = ParseMove(command)
	if err != nil {
		return err
	}
	s.board, err = s.rules.Apply(s.human, m, s.board)
	if err != nil {
		return err
	}
	s.print()
	if s.finished() {
		return io.EOF
	}
	if err := s.engineMove(ctx); err != nil {
		return err
	}
	if s.finished() {
		return io.EOF
	}
	return nil
}

func (s *session) engineMove(ctx context.Context) error {
	var si = s.eng.Search(ctx, engine.SearchParams{
		Rules:  s.rules,
		Board:  s.board,
		Limits: s.limits,
	})
	if len(si.MainLine) == 0 {
		return fmt.Errorf("%v returned no move", s.eng)
	}
	var bestMove = si.MainLine[0]
	var child, err = s.rules.Apply(s.rules.ToMove(s.board), bestMove, s.board)
	if err != nil {
		return fmt.Errorf("%v: %w", s.eng, err)
	}
	s.board = child
	fmt.Fprintf(s.out, "%v plays %v\n", s.eng, bestMove)
	s.print()
	return nil
}

func (s *session) finished() bool {
	var result = s.rules.Terminal(s.board)
	if result == ResultNone {
		return false
	}
	var comment string
	switch result.Winner() {
	case Empty:
		comment = "draw"
	case s.human:
		comment = "you win"
	default:
		comment = "you lose"
	}
	fmt.Fprintf(s.out, "%v {%v}\n", result, comment)
	return true
}

func (s *session) print() {
	for row := Rows - 1; row >= 0; row-- {
		for col := 0; col < Columns; col++ {
			fmt.Fprint(s.out, s.cellString(s.board.Cell(col, row)))
		}
		fmt.Fprintln(s.out)
	}
	for col := 0; col < Columns; col++ {
		fmt.Fprintf(s.out, "%v ", col+1)
	}
	fmt.Fprintln(s.out)
}

const (
	fgBlack = iota + 30
	fgRed
	fgGreen
	fgYellow
)

const bgBlue = 44

func (s *session) cellString(p Player) string {
	var text = p.String() + " "
	if !s.color {
		return text
	}
	var fgColor = fgBlack
	switch p {
	case Player1:
		fgColor = fgRed
	case Player2:
		fgColor = fgYellow
	}
	const escape = "\x1b"
	const reset = 0
	return fmt.Sprintf("%s[%s;%sm%s%s[%dm",
		escape, strconv.Itoa(fgColor), strconv.Itoa(bgBlue), text, escape, reset)
}
