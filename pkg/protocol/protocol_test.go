package protocol

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ChizhovVadim/CounterFour/pkg/engine"
	"github.com/rs/zerolog"
)

type testEngine struct {
	*engine.Engine
	prepared int
}

func (e *testEngine) Prepare() error {
	e.prepared++
	return nil
}

func newTestProtocol(t *testing.T, out *bytes.Buffer) (*Protocol, *testEngine) {
	t.Helper()
	var eng, err = engine.NewEngine(engine.NewNegamax(), 2)
	if err != nil {
		t.Fatal(err)
	}
	var te = &testEngine{Engine: eng}
	var depth = 2
	var ordering = engine.OrderingSeq
	var c = 0.7
	var p = New("CounterFour", "test", "dev", te, []Option{
		&IntOption{Name: "Depth", Min: 1, Max: 20, Value: &depth},
		&StringOption{Name: "Ordering", Vars: []string{"seq", "center", "delta"}, Value: &ordering},
		&FloatOption{Name: "C", Min: 0, Max: 10, Value: &c},
	}, out, zerolog.Nop())
	return p, te
}

func TestRunSearch(t *testing.T) {
	var out = &bytes.Buffer{}
	var p, te = newTestProtocol(t, out)
	var input = "c4\nisready\nposition startpos moves 4 4\ngo\n"
	if err := p.Run(strings.NewReader(input)); err != nil {
		t.Fatal(err)
	}
	var text = out.String()
	for _, want := range []string{"id name CounterFour dev", "option name Depth type spin default 2 min 1 max 20",
		"option name Ordering type combo default seq var seq var center var delta", "c4ok", "readyok", "info depth 2", "bestmove "} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q in\n%v", want, text)
		}
	}
	if te.prepared != 2 {
		t.Error("prepared", te.prepared)
	}
}

func TestSetOption(t *testing.T) {
	var out = &bytes.Buffer{}
	var p, _ = newTestProtocol(t, out)
	if err := p.handle("setoption name depth value 5"); err != nil {
		t.Error(err)
	}
	if err := p.handle("setoption name Depth value 50"); err == nil {
		t.Error("out of range accepted")
	}
	if err := p.handle("setoption name Ordering value history"); err == nil {
		t.Error("unknown combo value accepted")
	}
	if err := p.handle("setoption name C value 1.5"); err != nil {
		t.Error(err)
	}
	if err := p.handle("setoption name Hash value 1"); err == nil {
		t.Error("unknown option accepted")
	}
}

func TestPosition(t *testing.T) {
	var out = &bytes.Buffer{}
	var p, _ = newTestProtocol(t, out)
	if err := p.handle("position startpos moves 4 4 3"); err != nil {
		t.Fatal(err)
	}
	var b1 = p.board
	if err := p.handle("position moves 443"); err != nil {
		t.Fatal(err)
	}
	if p.board != b1 || p.board.ChipCount() != 3 {
		t.Error(p.board.String())
	}
	if err := p.handle("position startpos moves 1 1 1 1 1 1 1"); err == nil {
		t.Error("move into full column accepted")
	}
	if err := p.handle("position fen x"); err == nil {
		t.Error("unknown position accepted")
	}
}

func TestParseLimits(t *testing.T) {
	var limits, err = parseLimits([]string{"movetime", "150", "nodes", "1000"})
	if err != nil {
		t.Fatal(err)
	}
	if limits.MoveTime.Milliseconds() != 150 || limits.Nodes != 1000 {
		t.Error(limits)
	}
	if _, err := parseLimits([]string{"nodes"}); err == nil {
		t.Error("missing value accepted")
	}
}
