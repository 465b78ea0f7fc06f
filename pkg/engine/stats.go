package engine

import (
	"fmt"
	"strings"
	"time"

	. "github.com/ChizhovVadim/CounterFour/pkg/common"
)

// Stats are the counters of one search call.
type Stats struct {
	Nodes      int64
	Leaves     int64
	Draws      int64
	Mates      int64
	Hits       int64
	BetaCuts   int64
	ReSearches int64
}

func (s *Stats) Add(other Stats) {
	s.Nodes += other.Nodes
	s.Leaves += other.Leaves
	s.Draws += other.Draws
	s.Mates += other.Mates
	s.Hits += other.Hits
	s.BetaCuts += other.BetaCuts
	s.ReSearches += other.ReSearches
}

func (s Stats) Sub(other Stats) Stats {
	return Stats{
		Nodes:      s.Nodes - other.Nodes,
		Leaves:     s.Leaves - other.Leaves,
		Draws:      s.Draws - other.Draws,
		Mates:      s.Mates - other.Mates,
		Hits:       s.Hits - other.Hits,
		BetaCuts:   s.BetaCuts - other.BetaCuts,
		ReSearches: s.ReSearches - other.ReSearches,
	}
}

type IterationInfo struct {
	Depth    int
	Score    int
	MainLine []Move
	Stats    Stats
	Time     time.Duration
}

type SearchInfo struct {
	Engine     string
	Depth      int
	MainLine   []Move
	Score      int
	Stats      Stats
	Iterations []IterationInfo
	Time       time.Duration

	// monte carlo search
	Simulations int
	MaxDepth    int
	WinRate     float64
}

func (si *SearchInfo) BestMove() Move {
	if len(si.MainLine) == 0 {
		return MoveEmpty
	}
	return si.MainLine[0]
}

func (si *SearchInfo) Nps() float64 {
	var seconds = si.Time.Seconds()
	if seconds == 0 {
		return 0
	}
	return float64(si.Stats.Nodes) / seconds
}

func (si SearchInfo) String() string {
	var sb = &strings.Builder{}
	if si.Simulations != 0 {
		fmt.Fprintf(sb, "bestmove: %v win rate: %.1f%% [time: %.3fs]\n",
			si.BestMove(), si.WinRate*100, si.Time.Seconds())
		fmt.Fprintf(sb, "simulations: %v, maximum depth: %v", si.Simulations, si.MaxDepth)
		return sb.String()
	}
	if len(si.Iterations) != 0 {
		fmt.Fprintf(sb, "[depth: %v] ", si.Depth)
	}
	fmt.Fprintf(sb, "score: %v [time: %.3fs, pv: %v]\n", si.Score, si.Time.Seconds(), FormatLine(si.MainLine))
	fmt.Fprintf(sb, "nps: %.0f, nodes: %v, betacuts: %v\n", si.Nps(), si.Stats.Nodes, si.Stats.BetaCuts)
	fmt.Fprintf(sb, "hits: %v, leaves: %v, draws: %v, mates: %v",
		si.Stats.Hits, si.Stats.Leaves, si.Stats.Draws, si.Stats.Mates)
	return sb.String()
}
