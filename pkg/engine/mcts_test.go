package engine

import (
	"context"
	"errors"
	"testing"

	. "github.com/ChizhovVadim/CounterFour/pkg/common"
)

func TestMCTSConfiguration(t *testing.T) {
	var configErr *ConfigurationError
	if _, err := NewMCTS(0, 0.7, 1); !errors.As(err, &configErr) || configErr.Field != "simulations" {
		t.Error(err)
	}
	if _, err := NewMCTS(100, -1, 1); !errors.As(err, &configErr) || configErr.Field != "C" {
		t.Error(err)
	}
}

func TestMCTSExpandsInColumnOrder(t *testing.T) {
	var rules = NewConnect4()
	var e, err = NewMCTS(1, 0.7, 1)
	if err != nil {
		t.Fatal(err)
	}
	e.Search(context.Background(), SearchParams{Rules: rules, Board: Board{}})
	var visits = func(m Move) int {
		var child, _ = Board{}.Apply(Player1, m)
		var key, _ = child.CanonicalKey()
		var st, ok = e.stats[key]
		if !ok {
			return 0
		}
		return st.n
	}
	if visits(0) != 1 {
		t.Error("first column not expanded first")
	}
	for m := Move(1); m < Columns-1; m++ {
		if visits(m) != 0 {
			t.Error("column visited", m)
		}
	}
	// mirrored columns share statistics
	if visits(Columns-1) != 1 {
		t.Error("mirror not shared")
	}
}

func TestMCTSDeterministic(t *testing.T) {
	var b = mustBoard(t, "4453")
	var run = func() SearchInfo {
		var e, err = NewMCTS(300, 0.7, 42)
		if err != nil {
			t.Fatal(err)
		}
		return e.Search(context.Background(), SearchParams{Rules: NewConnect4(), Board: b})
	}
	var si1, si2 = run(), run()
	if si1.BestMove() != si2.BestMove() || si1.WinRate != si2.WinRate || si1.MaxDepth != si2.MaxDepth {
		t.Error(si1, si2)
	}
	if si1.Simulations != 300 {
		t.Error(si1.Simulations)
	}
}

func TestMCTSFindsWin(t *testing.T) {
	// only the fifth column completes the bottom row
	var b = mustBoard(t, "213747")
	var e, err = NewMCTS(2000, 0.7, 1)
	if err != nil {
		t.Fatal(err)
	}
	var m, chooseErr = e.Choose(context.Background(), NewConnect4(), b)
	if chooseErr != nil {
		t.Fatal(chooseErr)
	}
	if m != 4 {
		t.Error(m)
	}
}

func TestMCTSCancelled(t *testing.T) {
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	var e, err = NewMCTS(1000, 0.7, 1)
	if err != nil {
		t.Fatal(err)
	}
	var b = mustBoard(t, "111111")
	var si = e.Search(ctx, SearchParams{Rules: NewConnect4(), Board: b})
	if si.Simulations != 0 {
		t.Error(si.Simulations)
	}
	if !b.IsLegal(si.BestMove()) {
		t.Error(si.BestMove())
	}
}

func TestPolicies(t *testing.T) {
	var rules = NewConnect4()
	var win = mustBoard(t, "112233")
	var choosers = []Chooser{NewGreedy(), NewWeightedGreedy(1)}
	for _, c := range choosers {
		var m, err = c.Choose(context.Background(), rules, win)
		if err != nil {
			t.Fatal(err)
		}
		if m != 3 {
			t.Error(c, m)
		}
	}
	var block = mustBoard(t, "171727")
	if m, _ := NewWeightedGreedy(1).Choose(context.Background(), rules, block); m != 6 {
		t.Error("no block", m)
	}
	var r = NewRandom(1)
	for i := 0; i < 50; i++ {
		var b = mustBoard(t, "111111")
		var m, err = r.Choose(context.Background(), rules, b)
		if err != nil || !b.IsLegal(m) {
			t.Fatal(m, err)
		}
	}
	if _, err := NewRandom(1).Choose(context.Background(), rules, mustBoard(t, "1212121")); !errors.Is(err, ErrNoMoves) {
		t.Error(err)
	}
}
