package protocol

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	. "github.com/ChizhovVadim/CounterFour/pkg/common"
	"github.com/ChizhovVadim/CounterFour/pkg/engine"
	"github.com/rs/zerolog"
)

type Engine interface {
	Prepare() error
	Clear()
	Search(ctx context.Context, params engine.SearchParams) engine.SearchInfo
}

// Protocol is a line protocol for driving one engine from another process:
//
//	c4 | setoption name N value V | isready | newgame
//	position startpos [moves 4 4 3] | position moves 443
//	go [movetime ms] [nodes n] [time ms] [inc ms] | stop | d | quit
type Protocol struct {
	name         string
	author       string
	version      string
	options      []Option
	engine       Engine
	rules        engine.Rules
	board        Board
	out          io.Writer
	logger       zerolog.Logger
	thinking     bool
	engineOutput chan engine.SearchInfo
	cancel       context.CancelFunc
}

func New(name, author, version string, eng Engine, options []Option,
	out io.Writer, logger zerolog.Logger) *Protocol {
	return &Protocol{
		name:    name,
		author:  author,
		version: version,
		engine:  eng,
		options: options,
		rules:   engine.NewConnect4(),
		out:     out,
		logger:  logger,
	}
}

// Run serves commands until quit or end of input. A running search is
// finished and reported before Run returns at end of input.
func (p *Protocol) Run(in io.Reader) error {
	var commands = make(chan string)

	go func() {
		defer close(commands)
		readCommands(in, commands)
	}()

	var searchResult engine.SearchInfo
	for {
		select {
		case si, ok := <-p.engineOutput:
			if ok {
				fmt.Fprintln(p.out, searchInfoString(si))
				searchResult = si
			} else {
				if len(searchResult.MainLine) != 0 {
					fmt.Fprintf(p.out, "bestmove %v\n", searchResult.MainLine[0])
				}
				p.cancel()
				p.thinking = false
				p.cancel = nil
				p.engineOutput = nil
				searchResult = engine.SearchInfo{}
				if commands == nil {
					return nil
				}
			}
		case commandLine, ok := <-commands:
			if !ok {
				if !p.thinking {
					return nil
				}
				commands = nil
				continue
			}
			var err = p.handle(commandLine)
			if err != nil {
				p.logger.Error().Err(err).Str("command", commandLine).Msg("command failed")
			}
		}
	}
}

func readCommands(in io.Reader, commands chan<- string) {
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var commandLine = scanner.Text()
		if commandLine == "quit" {
			return
		}
		if commandLine != "" {
			commands <- commandLine
		}
	}
}

func (p *Protocol) handle(commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	if p.thinking {
		if commandName == "stop" {
			p.cancel()
			return nil
		}
		return errors.New("search still run")
	}

	var h func(fields []string) error

	switch commandName {
	case "c4":
		h = p.c4Command
	case "setoption":
		h = p.setOptionCommand
	case "isready":
		h = p.isReadyCommand
	case "position":
		h = p.positionCommand
	case "go":
		h = p.goCommand
	case "newgame":
		h = p.newGameCommand
	case "d":
		h = p.displayCommand
	}

	if h == nil {
		return errors.New("command not found")
	}

	return h(fields)
}

func (p *Protocol) c4Command(fields []string) error {
	fmt.Fprintf(p.out, "id name %s %s\n", p.name, p.version)
	fmt.Fprintf(p.out, "id author %s\n", p.author)
	for _, option := range p.options {
		fmt.Fprintln(p.out, option.OptionString())
	}
	fmt.Fprintln(p.out, "c4ok")
	return nil
}

func (p *Protocol) setOptionCommand(fields []string) error {
	if len(fields) < 4 {
		return errors.New("invalid setoption arguments")
	}
	var name, value = fields[1], strings.Join(fields[3:], " ")
	for _, option := range p.options {
		if strings.EqualFold(option.OptionName(), name) {
			return option.Set(value)
		}
	}
	return errors.New("unhandled option")
}

func (p *Protocol) isReadyCommand(fields []string) error {
	if err := p.engine.Prepare(); err != nil {
		return err
	}
	fmt.Fprintln(p.out, "readyok")
	return nil
}

func (p *Protocol) positionCommand(fields []string) error {
	if len(fields) == 0 {
		return errors.New("unknown position command")
	}
	var board Board
	var movesIndex = findIndexString(fields, "moves")
	switch fields[0] {
	case "startpos":
		if movesIndex >= 0 {
			for _, smove := range fields[movesIndex+1:] {
				var m, err = ParseMove(smove)
				if err != nil {
					return err
				}
				board, err = p.rules.Apply(p.rules.ToMove(board), m, board)
				if err != nil {
					return err
				}
			}
		}
	case "moves":
		var err error
		board, err = ParseBoard(strings.Join(fields[1:], ""))
		if err != nil {
			return err
		}
	default:
		return errors.New("unknown position command")
	}
	p.board = board
	return nil
}

func (p *Protocol) goCommand(fields []string) error {
	var limits, err = parseLimits(fields)
	if err != nil {
		return err
	}
	if err := p.engine.Prepare(); err != nil {
		return err
	}
	var ctx, cancel = context.WithCancel(context.Background())
	p.cancel = cancel
	p.thinking = true
	p.engineOutput = make(chan engine.SearchInfo, 3)
	var board = p.board
	var output = p.engineOutput
	go func() {
		var searchResult = p.engine.Search(ctx, engine.SearchParams{
			Rules:  p.rules,
			Board:  board,
			Limits: limits,
			Progress: func(si engine.SearchInfo) {
				select {
				case output <- si:
				default:
				}
			},
		})
		output <- searchResult
		close(output)
	}()
	return nil
}

func (p *Protocol) newGameCommand(fields []string) error {
	p.engine.Clear()
	p.board = Board{}
	return nil
}

func (p *Protocol) displayCommand(fields []string) error {
	fmt.Fprintln(p.out, p.board.String())
	return nil
}

func searchInfoString(si engine.SearchInfo) string {
	var sb = &strings.Builder{}
	var timeMs = si.Time.Milliseconds()
	if si.Simulations != 0 {
		fmt.Fprintf(sb, "info simulations %v depth %v winrate %.3f time %v",
			si.Simulations, si.MaxDepth, si.WinRate, timeMs)
	} else {
		var nps = si.Stats.Nodes * 1000 / (timeMs + 1)
		fmt.Fprintf(sb, "info depth %v score %v nodes %v time %v nps %v",
			si.Depth, si.Score, si.Stats.Nodes, timeMs, nps)
	}
	if len(si.MainLine) != 0 {
		fmt.Fprintf(sb, " pv")
		for _, move := range si.MainLine {
			sb.WriteString(" ")
			sb.WriteString(move.String())
		}
	}
	return sb.String()
}

func parseLimits(args []string) (result engine.Limits, err error) {
	var next = func(i int) (int64, error) {
		if i+1 >= len(args) {
			return 0, fmt.Errorf("missing value for %v", args[i])
		}
		return strconv.ParseInt(args[i+1], 10, 64)
	}
	for i := 0; i < len(args); i++ {
		var v int64
		switch args[i] {
		case "movetime":
			v, err = next(i)
			result.MoveTime = time.Duration(v) * time.Millisecond
			i++
		case "nodes":
			v, err = next(i)
			result.Nodes = v
			i++
		case "time":
			v, err = next(i)
			result.Time = time.Duration(v) * time.Millisecond
			i++
		case "inc":
			v, err = next(i)
			result.Increment = time.Duration(v) * time.Millisecond
			i++
		}
		if err != nil {
			return
		}
	}
	return
}

func findIndexString(slice []string, value string) int {
	for p, v := range slice {
		if v == value {
			return p
		}
	}
	return -1
}
