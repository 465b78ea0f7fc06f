package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/ChizhovVadim/CounterFour/internal/arena"
	"github.com/ChizhovVadim/CounterFour/internal/enginebuilder"
	"github.com/ChizhovVadim/CounterFour/internal/logx"
	"github.com/ChizhovVadim/CounterFour/internal/play"
	. "github.com/ChizhovVadim/CounterFour/pkg/common"
	"github.com/ChizhovVadim/CounterFour/pkg/engine"
	"github.com/ChizhovVadim/CounterFour/pkg/protocol"
	"github.com/rs/zerolog"
)

const (
	name   = "CounterFour"
	author = "Vadim Chizhov"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
)

var logger = logx.NewLogger(os.Stderr, false)

func main() {
	var ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var cli = NewCommandHandler()
	cli.Add("bm", func(args []string) error { return runBestMove(ctx, args) })
	cli.Add("play", func(args []string) error { return runPlay(ctx, args) })
	cli.Add("arena", func(args []string) error { return runArena(ctx, args) })
	cli.Add("protocol", runProtocol)

	var err = cli.Execute(os.Args[1:])
	if err != nil {
		logger.Fatal().Err(err).Msg("c4 failed")
	}
}

type commonFlags struct {
	seed     int64
	debug    bool
	moveTime time.Duration
	nodes    int64
}

func addCommonFlags(fs *flag.FlagSet) *commonFlags {
	var cf = &commonFlags{}
	fs.Int64Var(&cf.seed, "seed", 1, "static seed for reproducible experiments")
	fs.BoolVar(&cf.debug, "debug", false, "log search iterations")
	fs.DurationVar(&cf.moveTime, "movetime", 0, "time limit per move, 0 for none")
	fs.Int64Var(&cf.nodes, "nodes", 0, "node or simulation limit per move, 0 for none")
	return cf
}

func (cf *commonFlags) options() engine.Options {
	var options = engine.NewOptions()
	options.Seed = cf.seed
	return options
}

func (cf *commonFlags) limits() engine.Limits {
	return engine.Limits{MoveTime: cf.moveTime, Nodes: cf.nodes}
}

func (cf *commonFlags) logger() zerolog.Logger {
	if cf.debug {
		logger = logx.NewLogger(os.Stderr, true)
	}
	return logger
}

func runBestMove(ctx context.Context, args []string) error {
	var fs = flag.NewFlagSet("bm", flag.ContinueOnError)
	var engineSpec = fs.String("engine", "abdeep:6", "engine, format name:par1:par2")
	var moves = fs.String("board", "", "moves played so far, e.g. 4453")
	var cf = addCommonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	var logger = cf.logger()

	var board, err = ParseBoard(*moves)
	if err != nil {
		return err
	}
	eng, err := enginebuilder.Build(*engineSpec, cf.options(), logger)
	if err != nil {
		return err
	}
	fmt.Println(board.String())
	var si = eng.Search(ctx, engine.SearchParams{
		Rules:  engine.NewConnect4(),
		Board:  board,
		Limits: cf.limits(),
	})
	if len(si.MainLine) == 0 {
		return engine.ErrNoMoves
	}
	fmt.Println(si.String())
	fmt.Printf("bestmove %v\n", si.BestMove())
	return nil
}

func runPlay(ctx context.Context, args []string) error {
	var fs = flag.NewFlagSet("play", flag.ContinueOnError)
	var engineSpec = fs.String("engine", "pvsdeep:7", "engine, format name:par1:par2")
	var player2 = fs.Bool("player2", false, "play as player 2")
	var moves = fs.String("board", "", "starting moves, e.g. 44")
	var color = fs.Bool("color", true, "colored board")
	var cf = addCommonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	var logger = cf.logger()

	var board, err = ParseBoard(*moves)
	if err != nil {
		return err
	}
	eng, err := enginebuilder.Build(*engineSpec, cf.options(), logger)
	if err != nil {
		return err
	}
	var human = Player1
	if *player2 {
		human = Player2
	}
	return play.Play(ctx, os.Stdin, os.Stdout, eng, board, human, cf.limits(), *color, logger)
}

func runArena(ctx context.Context, args []string) error {
	var fs = flag.NewFlagSet("arena", flag.ContinueOnError)
	var engines = fs.String("engines", "negamax:4,abdeep:6,pvsdeep:6,mcts:1000", "comma separated engines")
	var rounds = fs.Int("rounds", 1, "number of rounds")
	var concurrency = fs.Int("concurrency", runtime.NumCPU(), "number of games played at once")
	var openings = fs.String("openings", "", "comma separated openings, empty for the built-in list")
	var recordsPath = fs.String("records", "", "write zstd compressed game records to this file")
	var cf = addCommonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	var logger = cf.logger()

	var config = arena.Config{
		Engines:     strings.Split(*engines, ","),
		Concurrency: *concurrency,
		Rounds:      *rounds,
		Limits:      cf.limits(),
	}
	if *openings != "" {
		config.Openings = strings.Split(*openings, ",")
	}
	if *recordsPath != "" {
		var f, err = os.Create(*recordsPath)
		if err != nil {
			return err
		}
		defer f.Close()
		config.Records = f
	}

	// engines log through the arena only
	var options = cf.options()
	var build = func(spec string) (arena.Engine, error) {
		var eng, err = enginebuilder.Build(spec, options, zerolog.Nop())
		if err != nil {
			return nil, err
		}
		return eng, nil
	}
	var summary, err = arena.Run(ctx, config, build, logger)
	if err != nil {
		return err
	}
	printSummary(summary)
	return nil
}

func printSummary(summary arena.Summary) {
	fmt.Printf("%-4v %-24v %6v %6v %6v %6v %7v\n", "#", "engine", "games", "wins", "losses", "draws", "points")
	for i, s := range summary.Standings {
		fmt.Printf("%-4v %-24v %6v %6v %6v %6v %7.1f\n", i+1, s.Name, s.Games, s.Wins, s.Losses, s.Draws, s.Points())
	}
	fmt.Println()
	for _, p := range summary.Pairs {
		fmt.Printf("%v vs %v: %v - %v - %v\n", p.A, p.B, p.Wins, p.Losses, p.Draws)
	}
}

func runProtocol(args []string) error {
	var fs = flag.NewFlagSet("protocol", flag.ContinueOnError)
	var engineSpec = fs.String("engine", "abdeep", "engine, parameters given here override the options")
	var depth = fs.Int("depth", 6, "default search depth")
	var cf = addCommonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	var logger = cf.logger()

	logger.Info().
		Str("name", name).
		Str("VersionName", versionName).
		Str("BuildDate", buildDate).
		Str("GitRevision", gitRevision).
		Str("RuntimeVersion", runtime.Version()).
		Int("NumCPU", runtime.NumCPU()).
		Msg("protocol started")

	var eng = enginebuilder.NewConfigurable(*engineSpec, logger)
	eng.Options = cf.options()
	eng.Options.Depth = *depth
	var p = protocol.New(name, author, versionName, eng,
		[]protocol.Option{
			&protocol.StringOption{Name: "Engine", Value: &eng.Spec},
			&protocol.IntOption{Name: "Depth", Min: 1, Max: 64, Value: &eng.Options.Depth},
			&protocol.StringOption{Name: "Ordering", Vars: []string{engine.OrderingSeq, engine.OrderingCenter, engine.OrderingDelta}, Value: &eng.Options.Ordering},
			&protocol.IntOption{Name: "Simulations", Min: 1, Max: 1 << 24, Value: &eng.Options.Simulations},
			&protocol.FloatOption{Name: "C", Min: 0, Max: 10, Value: &eng.Options.C},
		},
		os.Stdout, logger)
	return p.Run(os.Stdin)
}
