package engine

import (
	"context"
	"math/rand"
	"time"

	. "github.com/ChizhovVadim/CounterFour/pkg/common"
	"github.com/ChizhovVadim/CounterFour/pkg/eval"
	"github.com/samber/lo"
)

// Greedy plays the move with the best static evaluation one ply ahead.
type Greedy struct{}

func NewGreedy() *Greedy {
	return &Greedy{}
}

func (e *Greedy) String() string {
	return "Greedy"
}

func (e *Greedy) Choose(ctx context.Context, rules Rules, b Board) (Move, error) {
	return chooseWith(ctx, e, rules, b)
}

func (e *Greedy) Search(ctx context.Context, params SearchParams) SearchInfo {
	var start = time.Now()
	var rules = params.Rules
	var ml = rules.Actions(params.Board)
	var si = SearchInfo{Engine: e.String()}
	if len(ml) == 0 || rules.Terminal(params.Board) != ResultNone {
		return si
	}
	var side = rules.ToMove(params.Board)
	var bestMove = MoveEmpty
	var best int
	for _, m := range ml {
		var child, err = rules.Apply(side, m, params.Board)
		if err != nil {
			panic(err)
		}
		si.Stats.Nodes++
		var score = rules.Evaluate(side, child)
		if bestMove == MoveEmpty || score > best {
			bestMove = m
			best = score
		}
	}
	si.Depth = 1
	si.MainLine = []Move{bestMove}
	si.Score = best
	si.Time = time.Since(start)
	return si
}

// WeightedGreedy picks a random move with probability proportional to its
// EvalDelta. Winning and blocking moves are played deterministically.
type WeightedGreedy struct {
	rnd *rand.Rand
}

func NewWeightedGreedy(seed int64) *WeightedGreedy {
	return &WeightedGreedy{rnd: rand.New(rand.NewSource(seed))}
}

func (e *WeightedGreedy) String() string {
	return "WeightedGreedy"
}

func (e *WeightedGreedy) Choose(ctx context.Context, rules Rules, b Board) (Move, error) {
	return chooseWith(ctx, e, rules, b)
}

func (e *WeightedGreedy) Search(ctx context.Context, params SearchParams) SearchInfo {
	var start = time.Now()
	var rules = params.Rules
	var ml = rules.Actions(params.Board)
	var si = SearchInfo{Engine: e.String()}
	if len(ml) == 0 || rules.Terminal(params.Board) != ResultNone {
		return si
	}
	var m, score = weightedChoice(e.rnd, &params.Board, rules.ToMove(params.Board), ml)
	si.Depth = 1
	si.MainLine = []Move{m}
	si.Score = score
	si.Stats.Nodes = int64(len(ml))
	si.Time = time.Since(start)
	return si
}

func weightedChoice(rnd *rand.Rand, b *Board, side Player, ml []Move) (Move, int) {
	if len(ml) == 1 {
		return ml[0], eval.EvalDelta(b, ml[0], side)
	}
	var scores = lo.Map(ml, func(m Move, _ int) int {
		return eval.EvalDelta(b, m, side)
	})
	var bestIndex = 0
	for i := range scores {
		if scores[i] > scores[bestIndex] {
			bestIndex = i
		}
	}
	if scores[bestIndex] >= Inf-1 {
		return ml[bestIndex], scores[bestIndex]
	}
	var total = lo.Sum(scores) + len(scores)
	var r = rnd.Intn(total)
	for i := range scores {
		r -= scores[i] + 1
		if r < 0 {
			return ml[i], scores[i]
		}
	}
	return ml[len(ml)-1], scores[len(ml)-1]
}
