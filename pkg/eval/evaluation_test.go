package eval

import (
	"math/rand"
	"testing"

	. "github.com/ChizhovVadim/CounterFour/pkg/common"
)

func TestEvaluate(t *testing.T) {
	var tests = []struct {
		moves  string
		player Player
		want   int
	}{
		{"", Player1, 0},
		{"4", Player1, 7},
		{"4", Player2, -7},
		{"1", Player1, 3},
		{"1212121", Player1, Inf},
		{"1212121", Player2, -Inf},
	}
	for _, tt := range tests {
		var b, err = ParseBoard(tt.moves)
		if err != nil {
			t.Fatal(err)
		}
		if got := Evaluate(tt.player, &b); got != tt.want {
			t.Error(tt.moves, tt.player, got, tt.want)
		}
	}
}

func TestEvaluateMirror(t *testing.T) {
	var r = rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		var b = randomBoard(r, r.Intn(30))
		var m = b.Mirror()
		for _, p := range []Player{Player1, Player2} {
			if Evaluate(p, &b) != Evaluate(p, &m) {
				t.Fatal("\n" + b.String())
			}
			if Evaluate(p, &b) != -Evaluate(p.Opponent(), &b) {
				t.Fatal("not zero-sum\n" + b.String())
			}
		}
	}
}

func TestEvalDeltaSpecial(t *testing.T) {
	var tests = []struct {
		name  string
		moves string
		move  Move
		want  int
	}{
		{"connect four", "112233", 3, Inf},
		{"block vertical", "171727", 6, Inf - 1},
		{"double threat", "2737", 3, Inf - 1},
		{"full column", "111111", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b, err = ParseBoard(tt.moves)
			if err != nil {
				t.Fatal(err)
			}
			if got := EvalDelta(&b, tt.move, b.SideToMove()); got != tt.want {
				t.Errorf("got %v want %v", got, tt.want)
			}
		})
	}
}

// Outside of forced moves the delta equals the full evaluation difference.
func TestEvalDeltaMatchesEvaluate(t *testing.T) {
	var r = rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		var b = randomBoard(r, r.Intn(30))
		if b.Terminal() != ResultNone {
			continue
		}
		var side = b.SideToMove()
		for _, m := range b.Actions(nil) {
			var delta = EvalDelta(&b, m, side)
			if delta < 0 {
				t.Fatal("negative delta", delta)
			}
			if delta >= Inf-1 {
				continue
			}
			var child, _ = b.Apply(side, m)
			if child.IsFull() {
				continue
			}
			var want = Evaluate(side, &child) - Evaluate(side, &b)
			if delta != want {
				t.Fatalf("move %v delta %v want %v\n%v", m, delta, want, b.String())
			}
		}
	}
}

func randomBoard(r *rand.Rand, plies int) Board {
	var b Board
	var side = Player1
	for i := 0; i < plies; i++ {
		var ml = b.Actions(nil)
		if len(ml) == 0 || b.Terminal() != ResultNone {
			break
		}
		b, _ = b.Apply(side, ml[r.Intn(len(ml))])
		side = side.Opponent()
	}
	return b
}
