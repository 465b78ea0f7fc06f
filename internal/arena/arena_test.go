package arena

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"testing"

	. "github.com/ChizhovVadim/CounterFour/pkg/common"
	"github.com/ChizhovVadim/CounterFour/pkg/engine"
	"github.com/rs/zerolog"
)

func testBuild(spec string) (Engine, error) {
	switch spec {
	case "random":
		return engine.NewRandom(1), nil
	case "greedy":
		return engine.NewGreedy(), nil
	case "alphabeta":
		var order, _ = engine.NewMoveOrder(engine.OrderingCenter)
		var eng, err = engine.NewEngine(engine.NewAlphaBeta(order), 2)
		if err != nil {
			return nil, err
		}
		return eng, nil
	}
	return nil, fmt.Errorf("unknown engine %v", spec)
}

func TestRun(t *testing.T) {
	var records = &bytes.Buffer{}
	var config = Config{
		Engines:     []string{"random", "greedy", "alphabeta"},
		Concurrency: 2,
		Rounds:      1,
		Openings:    []string{"4", "44"},
		Records:     records,
	}
	var summary, err = Run(context.Background(), config, testBuild, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	// 3 pairs, 2 openings, both colours
	if summary.Games != 12 {
		t.Fatal(summary.Games)
	}
	if len(summary.Pairs) != 3 {
		t.Error(len(summary.Pairs))
	}
	for _, s := range summary.Standings {
		if s.Games != 8 || s.Wins+s.Losses+s.Draws != s.Games {
			t.Error(s)
		}
	}
	for i := 1; i < len(summary.Standings); i++ {
		if summary.Standings[i-1].Points() < summary.Standings[i].Points() {
			t.Error("standings not sorted")
		}
	}

	var games, readErr = ReadRecords(records)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if len(games) != 12 {
		t.Fatal(len(games))
	}
	for _, g := range games {
		var b, err = g.Board()
		if err != nil {
			t.Fatal(g, err)
		}
		if b.Terminal() != g.Result {
			t.Error(g.Game, b.Terminal(), g.Result)
		}
		if g.First == g.Second {
			t.Error("self play", g)
		}
	}
}

func TestRunErrors(t *testing.T) {
	var tests = []struct {
		name   string
		config Config
	}{
		{"one engine", Config{Engines: []string{"random"}}},
		{"duplicate", Config{Engines: []string{"random", "random"}}},
		{"unknown engine", Config{Engines: []string{"random", "minimax"}}},
		{"bad opening", Config{Engines: []string{"random", "greedy"}, Openings: []string{"48"}}},
		{"finished opening", Config{Engines: []string{"random", "greedy"}, Openings: []string{"1212121"}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := Run(context.Background(), test.config, testBuild, zerolog.Nop()); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunCancelled(t *testing.T) {
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	var config = Config{Engines: []string{"random", "greedy"}}
	if _, err := Run(ctx, config, testBuild, zerolog.Nop()); err == nil {
		t.Error("cancelled arena reported success")
	}
}

func TestComputeStat(t *testing.T) {
	var tests = []struct {
		wins, losses, draws int
		fraction, elo, los  float64
	}{
		{10, 10, 0, 0.5, 0, 0.5},
		{3, 1, 0, 0.75, 190.85, 0.8413},
		{0, 0, 4, 0.5, 0, 0.5},
	}
	for _, test := range tests {
		var stat = computeStat(test.wins, test.losses, test.draws)
		if math.Abs(stat.winningFraction-test.fraction) > 1e-3 ||
			math.Abs(stat.eloDifference-test.elo) > 1e-2 ||
			math.Abs(stat.los-test.los) > 1e-3 {
			t.Error(test, stat)
		}
	}
}

func TestOpenings(t *testing.T) {
	var openings = getOpenings()
	if len(openings) == 0 {
		t.Fatal("no embedded openings")
	}
	if err := checkOpenings(openings); err != nil {
		t.Error(err)
	}
}

func TestParseRecord(t *testing.T) {
	var r, err = parseRecord("7\tgreedy\trandom\t44\t3512\t1-0")
	if err != nil {
		t.Fatal(err)
	}
	if r.Game != 7 || r.First != "greedy" || r.Opening != "44" || len(r.Moves) != 4 || r.Moves[0] != Move(2) || r.Result != ResultPlayer1Won {
		t.Error(r)
	}
	if _, err := parseRecord("1\ta\tb\t4\t9\t1-0"); err == nil {
		t.Error("bad move accepted")
	}
}
