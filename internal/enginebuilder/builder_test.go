package enginebuilder

import (
	"context"
	"errors"
	"testing"

	. "github.com/ChizhovVadim/CounterFour/pkg/common"
	"github.com/ChizhovVadim/CounterFour/pkg/engine"
	"github.com/rs/zerolog"
)

func TestBuild(t *testing.T) {
	var tests = []struct {
		spec string
		name string
	}{
		{"negamax:2", "Negamax(2)"},
		{"alphabeta:3:center", "AlphaBeta(3)"},
		{"abcached:3", "AlphaBetaCache(3)"},
		{"abdeep:4:delta", "AlphaBetaCacheDeep(4)"},
		{"pvs", "PVS(4)"},
		{"pvscached:3", "PVSCache(3)"},
		{"PVSDeep:5", "PVSCacheDeep(5)"},
		{"mcts:50:1.4", "MCTS(50, 1.40)"},
		{"mcts", "MCTS(1000, 0.71)"},
		{"greedy", "Greedy"},
		{"weighted:7", "WeightedGreedy"},
		{"random", "Random"},
	}
	var rules = engine.NewConnect4()
	var b, _ = ParseBoard("44")
	for _, test := range tests {
		t.Run(test.spec, func(t *testing.T) {
			var eng, err = Build(test.spec, engine.NewOptions(), zerolog.Nop())
			if err != nil {
				t.Fatal(err)
			}
			if eng.String() != test.name {
				t.Error(eng.String())
			}
			m, err := eng.Choose(context.Background(), rules, b)
			if err != nil {
				t.Fatal(err)
			}
			if !b.IsLegal(m) {
				t.Error("illegal move", m)
			}
		})
	}
}

func TestBuildErrors(t *testing.T) {
	var tests = []struct {
		spec  string
		field string
	}{
		{"minimax:3", "engine"},
		{"negamax:x", "depth"},
		{"negamax:0", "depth"},
		{"alphabeta:3:killer", "ordering"},
		{"mcts:0", "simulations"},
		{"mcts:10:abc", "C"},
		{"greedy:1", "parameters"},
		{"random:seed", "seed"},
	}
	for _, test := range tests {
		t.Run(test.spec, func(t *testing.T) {
			var _, err = Build(test.spec, engine.NewOptions(), zerolog.Nop())
			var configErr *engine.ConfigurationError
			if !errors.As(err, &configErr) {
				t.Fatal(err)
			}
			if configErr.Field != test.field {
				t.Error(configErr.Field, err)
			}
		})
	}
}

func TestConfigurable(t *testing.T) {
	var c = NewConfigurable("abdeep", zerolog.Nop())
	c.Options.Depth = 3
	if err := c.Prepare(); err != nil {
		t.Fatal(err)
	}
	var first = c.engine
	if err := c.Prepare(); err != nil {
		t.Fatal(err)
	}
	if c.engine != first {
		t.Error("engine rebuilt without changes")
	}
	c.Options.Ordering = "delta"
	if err := c.Prepare(); err != nil {
		t.Fatal(err)
	}
	if c.engine == first {
		t.Error("engine not rebuilt")
	}
	c.Spec = "unknown"
	var err = c.Prepare()
	var configErr *engine.ConfigurationError
	if !errors.As(err, &configErr) {
		t.Error(err)
	}
	var si = c.Search(context.Background(), engine.SearchParams{Rules: engine.NewConnect4(), Board: Board{}})
	if len(si.MainLine) == 0 || si.Depth != 3 {
		t.Error(si)
	}
}
