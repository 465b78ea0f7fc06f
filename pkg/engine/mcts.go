package engine

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	. "github.com/ChizhovVadim/CounterFour/pkg/common"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

type mctsStat struct {
	n int
	w float64
}

// MCTS is a Monte Carlo tree search with UCB1 selection and weighted greedy
// playouts. Statistics are keyed by canonical board and persist across calls
// until Clear.
type MCTS struct {
	Logger      zerolog.Logger
	simulations int
	c           float64
	rnd         *rand.Rand
	stats       map[Key]*mctsStat
}

func NewMCTS(simulations int, c float64, seed int64) (*MCTS, error) {
	if simulations <= 0 {
		return nil, &ConfigurationError{Field: "simulations", Value: simulations, Reason: "must be positive"}
	}
	if c < 0 || math.IsNaN(c) || math.IsInf(c, 0) {
		return nil, &ConfigurationError{Field: "C", Value: c, Reason: "must be a finite non-negative number"}
	}
	return &MCTS{
		Logger:      zerolog.Nop(),
		simulations: simulations,
		c:           c,
		rnd:         rand.New(rand.NewSource(seed)),
		stats:       make(map[Key]*mctsStat),
	}, nil
}

func (e *MCTS) String() string {
	return fmt.Sprintf("MCTS(%v, %.2f)", e.simulations, e.c)
}

func (e *MCTS) Clear() {
	e.stats = make(map[Key]*mctsStat)
}

func (e *MCTS) Choose(ctx context.Context, rules Rules, b Board) (Move, error) {
	return chooseWith(ctx, e, rules, b)
}

func (e *MCTS) Search(ctx context.Context, params SearchParams) SearchInfo {
	var start = time.Now()
	var rules = params.Rules
	var root = params.Board
	var si = SearchInfo{Engine: e.String()}
	var ml = rules.Actions(root)
	if len(ml) == 0 || rules.Terminal(root) != ResultNone {
		return si
	}
	ctx, tm := newTimeManager(ctx, params.Limits)
	defer tm.Close()

	var path []Key
	for i := 0; i < e.simulations; i++ {
		if ctx.Err() != nil {
			break
		}
		var b = root
		var depth = 0
		path = path[:0]
		for rules.Terminal(b) == ResultNone {
			depth++
			var move, selected = e.selectChild(rules, &b)
			var child, err = rules.Apply(rules.ToMove(b), move, b)
			if err != nil {
				panic(err)
			}
			b = child
			var key, _ = rules.Hash(b)
			path = append(path, key)
			si.Stats.Nodes++
			if !selected {
				break
			}
		}
		si.MaxDepth = Max(si.MaxDepth, depth)

		// result for the side to move at b
		var result float64
		switch rules.Terminal(b) {
		case ResultNone:
			result = e.simulate(rules, b)
		case ResultDraw:
			result = 0.5
		default:
			result = 0
		}

		for j := len(path) - 1; j >= 0; j-- {
			result = 1 - result
			var st = e.stat(path[j])
			st.n++
			st.w += result
		}
		si.Simulations++
		tm.OnNodesChanged(int64(si.Simulations))
	}

	var side = rules.ToMove(root)
	var children = lo.Map(ml, func(m Move, _ int) *mctsStat {
		var child, _ = rules.Apply(side, m, root)
		var key, _ = rules.Hash(child)
		return e.stat(key)
	})
	var maxN = lo.MaxBy(children, func(a, b *mctsStat) bool { return a.n > b.n }).n
	var candidates = lo.Filter(ml, func(_ Move, i int) bool { return children[i].n == maxN })
	var bestMove = candidates[e.rnd.Intn(len(candidates))]
	var best = children[findMoveIndex(ml, bestMove)]

	for i, m := range ml {
		e.Logger.Debug().
			Str("move", m.String()).
			Float64("w", children[i].w).
			Int("n", children[i].n).
			Float64("rate", winRate(children[i])).
			Msg("mcts-move")
	}

	si.Depth = si.MaxDepth
	si.MainLine = []Move{bestMove}
	si.WinRate = winRate(best)
	si.Time = time.Since(start)
	e.Logger.Info().
		Str("engine", si.Engine).
		Str("move", bestMove.String()).
		Float64("winrate", si.WinRate).
		Int("simulations", si.Simulations).
		Int("maxdepth", si.MaxDepth).
		Dur("time", si.Time).
		Msg("search-complete")
	return si
}

func (e *MCTS) stat(key Key) *mctsStat {
	var st, ok = e.stats[key]
	if !ok {
		st = &mctsStat{}
		e.stats[key] = st
	}
	return st
}

// selectChild returns the first unvisited child, or the UCB1 maximum when
// every child has been visited. selected is false for an expansion.
func (e *MCTS) selectChild(rules Rules, b *Board) (move Move, selected bool) {
	var side = rules.ToMove(*b)
	var ml = rules.Actions(*b)
	var children = make([]*mctsStat, len(ml))
	var total = 0
	for i, m := range ml {
		var child, _ = rules.Apply(side, m, *b)
		var key, _ = rules.Hash(child)
		children[i] = e.stat(key)
		if children[i].n == 0 {
			return m, false
		}
		total += children[i].n
	}
	var logTotal = math.Log(float64(total))
	var bestMove = MoveEmpty
	var best float64
	for i, m := range ml {
		var st = children[i]
		var n = float64(st.n)
		var score = st.w/n + e.c*math.Sqrt(2*logTotal/n)
		if bestMove == MoveEmpty || score > best {
			bestMove = m
			best = score
		}
	}
	return bestMove, true
}

func (e *MCTS) simulate(rules Rules, b Board) float64 {
	var leafSide = rules.ToMove(b)
	for {
		var result = rules.Terminal(b)
		if result != ResultNone {
			if result == ResultDraw {
				return 0.5
			}
			if result.Winner() == leafSide {
				return 1
			}
			return 0
		}
		var side = rules.ToMove(b)
		var m, _ = weightedChoice(e.rnd, &b, side, rules.Actions(b))
		var child, err = rules.Apply(side, m, b)
		if err != nil {
			panic(err)
		}
		b = child
	}
}

func winRate(st *mctsStat) float64 {
	if st.n == 0 {
		return 0
	}
	return st.w / float64(st.n)
}
