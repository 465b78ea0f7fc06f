package enginebuilder

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	. "github.com/ChizhovVadim/CounterFour/pkg/common"
	"github.com/ChizhovVadim/CounterFour/pkg/engine"
	"github.com/rs/zerolog"
)

// Engine is what applications drive: a searcher with diagnostics that can
// also answer the plain move choice.
type Engine interface {
	Search(ctx context.Context, params engine.SearchParams) engine.SearchInfo
	Choose(ctx context.Context, rules engine.Rules, b Board) (Move, error)
	String() string
}

var Names = []string{
	"negamax", "alphabeta", "abcached", "abdeep",
	"pvs", "pvscached", "pvsdeep",
	"mcts", "greedy", "weighted", "random",
}

// Build creates an engine from "name:par1:par2". Missing parameters are
// taken from defaults.
//
//	negamax:depth
//	alphabeta|abcached|abdeep|pvs|pvscached|pvsdeep:depth:ordering
//	mcts:simulations:C
//	weighted|random:seed
//	greedy
func Build(spec string, defaults engine.Options, logger zerolog.Logger) (Engine, error) {
	var parts = strings.Split(spec, ":")
	var name, args = strings.ToLower(parts[0]), parts[1:]
	var options = defaults

	var tree = func(newSearcher func(order engine.MoveOrder) engine.NodeSearcher) (Engine, error) {
		if err := parseArgs(args, intArg("depth", &options.Depth), stringArg(&options.Ordering)); err != nil {
			return nil, err
		}
		var order, err = engine.NewMoveOrder(options.Ordering)
		if err != nil {
			return nil, err
		}
		eng, err := engine.NewEngine(newSearcher(order), options.Depth)
		if err != nil {
			return nil, err
		}
		eng.Logger = logger
		return eng, nil
	}

	switch name {
	case "negamax":
		return tree(func(engine.MoveOrder) engine.NodeSearcher {
			return engine.NewNegamax()
		})
	case "alphabeta":
		return tree(func(order engine.MoveOrder) engine.NodeSearcher {
			return engine.NewAlphaBeta(order)
		})
	case "abcached":
		return tree(func(order engine.MoveOrder) engine.NodeSearcher {
			return engine.NewCached(engine.NewAlphaBeta(order))
		})
	case "abdeep":
		return tree(func(order engine.MoveOrder) engine.NodeSearcher {
			return engine.NewDeepening(engine.NewCached(engine.NewAlphaBeta(order)))
		})
	case "pvs":
		return tree(func(order engine.MoveOrder) engine.NodeSearcher {
			return engine.NewPVS(order)
		})
	case "pvscached":
		return tree(func(order engine.MoveOrder) engine.NodeSearcher {
			return engine.NewCached(engine.NewPVS(order))
		})
	case "pvsdeep":
		return tree(func(order engine.MoveOrder) engine.NodeSearcher {
			return engine.NewDeepening(engine.NewCached(engine.NewPVS(order)))
		})
	case "mcts":
		if err := parseArgs(args, intArg("simulations", &options.Simulations), floatArg("C", &options.C)); err != nil {
			return nil, err
		}
		var eng, err = engine.NewMCTS(options.Simulations, options.C, options.Seed)
		if err != nil {
			return nil, err
		}
		eng.Logger = logger
		return eng, nil
	case "greedy":
		if err := parseArgs(args); err != nil {
			return nil, err
		}
		return engine.NewGreedy(), nil
	case "weighted":
		if err := parseArgs(args, int64Arg("seed", &options.Seed)); err != nil {
			return nil, err
		}
		return engine.NewWeightedGreedy(options.Seed), nil
	case "random":
		if err := parseArgs(args, int64Arg("seed", &options.Seed)); err != nil {
			return nil, err
		}
		return engine.NewRandom(options.Seed), nil
	}
	return nil, &engine.ConfigurationError{
		Field:  "engine",
		Value:  name,
		Reason: fmt.Sprintf("unknown engine, expected one of %v", strings.Join(Names, ", ")),
	}
}

type argParser func(s string) error

func parseArgs(args []string, parsers ...argParser) error {
	if len(args) > len(parsers) {
		return &engine.ConfigurationError{Field: "parameters", Value: strings.Join(args, ":"), Reason: "too many parameters"}
	}
	for i, arg := range args {
		if arg == "" {
			continue
		}
		if err := parsers[i](arg); err != nil {
			return err
		}
	}
	return nil
}

func intArg(field string, value *int) argParser {
	return func(s string) error {
		var v, err = strconv.Atoi(s)
		if err != nil {
			return &engine.ConfigurationError{Field: field, Value: s, Reason: err.Error()}
		}
		*value = v
		return nil
	}
}

func int64Arg(field string, value *int64) argParser {
	return func(s string) error {
		var v, err = strconv.ParseInt(s, 10, 64)
		if err != nil {
			return &engine.ConfigurationError{Field: field, Value: s, Reason: err.Error()}
		}
		*value = v
		return nil
	}
}

func floatArg(field string, value *float64) argParser {
	return func(s string) error {
		var v, err = strconv.ParseFloat(s, 64)
		if err != nil {
			return &engine.ConfigurationError{Field: field, Value: s, Reason: err.Error()}
		}
		*value = v
		return nil
	}
}

func stringArg(value *string) argParser {
	return func(s string) error {
		*value = s
		return nil
	}
}
