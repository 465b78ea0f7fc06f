package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	. "github.com/ChizhovVadim/CounterFour/pkg/common"
	"github.com/rs/zerolog"
)

var ErrNoMoves = errors.New("no legal moves")

var errSearchTimeout = errors.New("search timeout")

type SearchParams struct {
	Rules    Rules
	Board    Board
	Limits   Limits
	Progress func(SearchInfo)
}

type Searcher interface {
	Search(ctx context.Context, params SearchParams) SearchInfo
}

// Chooser is the move selection contract. The returned move is legal for b.
type Chooser interface {
	Choose(ctx context.Context, rules Rules, b Board) (Move, error)
}

// NodeSearcher expands one node of the game tree. Wrappers hold an inner
// NodeSearcher; children are always searched through thread.search so every
// layer sees every node.
type NodeSearcher interface {
	searchNode(t *thread, n node) (pv []Move, score int)
	String() string
}

type clearer interface {
	clear()
}

// Engine drives a tree searcher from the root at a fixed maximum depth.
type Engine struct {
	Name     string
	Logger   zerolog.Logger
	searcher NodeSearcher
	depth    int
}

type thread struct {
	ctx        context.Context
	tm         *timeManager
	rules      Rules
	root       NodeSearcher
	progress   func(SearchInfo)
	engineName string
	logger     *zerolog.Logger
	start      time.Time
	stats      Stats
	mainLine   mainLine
	iterations []IterationInfo
}

type node struct {
	board Board
	side  Player
	depth int
	ply   int
	alpha int
	beta  int
	hint  Move
}

type mainLine struct {
	moves []Move
	score int
	depth int
}

func NewEngine(searcher NodeSearcher, depth int) (*Engine, error) {
	if err := checkDepth(depth); err != nil {
		return nil, err
	}
	return &Engine{
		Logger:   zerolog.Nop(),
		searcher: searcher,
		depth:    depth,
	}, nil
}

func (e *Engine) String() string {
	if e.Name != "" {
		return e.Name
	}
	return fmt.Sprintf("%v(%v)", e.searcher, e.depth)
}

func (e *Engine) Depth() int {
	return e.depth
}

func (e *Engine) Clear() {
	if c, ok := e.searcher.(clearer); ok {
		c.clear()
	}
}

func (e *Engine) Choose(ctx context.Context, rules Rules, b Board) (Move, error) {
	return chooseWith(ctx, e, rules, b)
}

func (e *Engine) Search(ctx context.Context, params SearchParams) SearchInfo {
	var start = time.Now()
	var rules = params.Rules
	var ml = rules.Actions(params.Board)
	if len(ml) == 0 || rules.Terminal(params.Board) != ResultNone {
		return SearchInfo{Engine: e.String()}
	}
	ctx, tm := newTimeManager(ctx, params.Limits)
	defer tm.Close()

	var t = &thread{
		ctx:        ctx,
		tm:         tm,
		rules:      rules,
		root:       e.searcher,
		progress:   params.Progress,
		engineName: e.String(),
		logger:     &e.Logger,
		start:      start,
		mainLine:   mainLine{moves: ml[:1]},
	}
	t.run(node{
		board: params.Board,
		side:  rules.ToMove(params.Board),
		depth: e.depth,
		ply:   rootPly,
		alpha: -Inf,
		beta:  Inf,
		hint:  MoveEmpty,
	})

	var si = t.currentSearchResult()
	e.Logger.Info().
		Str("engine", si.Engine).
		Int("depth", si.Depth).
		Int("score", si.Score).
		Str("pv", FormatLine(si.MainLine)).
		Int64("nodes", si.Stats.Nodes).
		Int64("hits", si.Stats.Hits).
		Int64("betacuts", si.Stats.BetaCuts).
		Float64("nps", si.Nps()).
		Dur("time", si.Time).
		Msg("search-complete")
	return si
}

func (t *thread) run(root node) {
	defer func() {
		if r := recover(); r != nil {
			if r == errSearchTimeout {
				return
			}
			panic(r)
		}
	}()
	var pv, score = t.search(root)
	if len(pv) == 0 {
		return
	}
	var depth = root.depth
	if len(t.iterations) != 0 {
		depth = t.iterations[len(t.iterations)-1].Depth
	}
	t.mainLine = mainLine{moves: pv, score: score, depth: depth}
}

func (t *thread) search(n node) ([]Move, int) {
	return t.root.searchNode(t, n)
}

func (t *thread) incNodes() {
	t.stats.Nodes++
	if t.stats.Nodes&255 == 0 {
		t.tm.OnNodesChanged(t.stats.Nodes)
		if t.ctx.Err() != nil {
			panic(errSearchTimeout)
		}
	}
}

// leaf scores terminal and horizon nodes.
func (t *thread) leaf(n *node) (int, bool) {
	switch t.rules.Terminal(n.board) {
	case ResultNone:
	case ResultDraw:
		t.stats.Leaves++
		t.stats.Draws++
		return valueDraw, true
	default:
		// the previous move ended the game
		t.stats.Leaves++
		t.stats.Mates++
		return lossIn(n.ply), true
	}
	if n.depth <= 0 {
		t.stats.Leaves++
		return t.rules.Evaluate(n.side, n.board), true
	}
	return 0, false
}

func (t *thread) child(n *node, m Move, alpha, beta int) node {
	var b, err = t.rules.Apply(n.side, m, n.board)
	if err != nil {
		panic(err)
	}
	return node{
		board: b,
		side:  n.side.Opponent(),
		depth: n.depth - 1,
		ply:   n.ply + 1,
		alpha: alpha,
		beta:  beta,
		hint:  MoveEmpty,
	}
}

func (t *thread) onIterationComplete(depth int, pv []Move, score int, before Stats, started time.Time) {
	var info = IterationInfo{
		Depth:    depth,
		Score:    score,
		MainLine: pv,
		Stats:    t.stats.Sub(before),
		Time:     time.Since(started),
	}
	t.iterations = append(t.iterations, info)
	if len(pv) != 0 {
		t.mainLine = mainLine{moves: pv, score: score, depth: depth}
	}
	t.logger.Debug().
		Str("engine", t.engineName).
		Int("depth", depth).
		Int("score", score).
		Str("pv", FormatLine(pv)).
		Int64("nodes", info.Stats.Nodes).
		Int64("betacuts", info.Stats.BetaCuts).
		Int64("hits", info.Stats.Hits).
		Msg("iteration-complete")
	if t.progress != nil {
		t.progress(t.currentSearchResult())
	}
}

func (t *thread) currentSearchResult() SearchInfo {
	return SearchInfo{
		Engine:     t.engineName,
		Depth:      t.mainLine.depth,
		MainLine:   cloneMoves(t.mainLine.moves),
		Score:      t.mainLine.score,
		Stats:      t.stats,
		Iterations: t.iterations,
		Time:       time.Since(t.start),
	}
}

func chooseWith(ctx context.Context, s Searcher, rules Rules, b Board) (Move, error) {
	var si = s.Search(ctx, SearchParams{Rules: rules, Board: b})
	if len(si.MainLine) == 0 {
		return MoveEmpty, ErrNoMoves
	}
	return si.MainLine[0], nil
}
