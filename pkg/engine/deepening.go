package engine

import (
	"fmt"
	"time"

	. "github.com/ChizhovVadim/CounterFour/pkg/common"
)

// Deepening runs the inner searcher at depths 1..n at the root, seeding each
// iteration's move ordering with the previous best move. Other nodes pass
// through unchanged.
type Deepening struct {
	inner NodeSearcher
}

func NewDeepening(inner NodeSearcher) *Deepening {
	return &Deepening{inner: inner}
}

func (s *Deepening) String() string {
	return fmt.Sprintf("%vDeep", s.inner)
}

func (s *Deepening) clear() {
	if c, ok := s.inner.(clearer); ok {
		c.clear()
	}
}

func (s *Deepening) searchNode(t *thread, n node) ([]Move, int) {
	if n.ply != rootPly {
		return s.inner.searchNode(t, n)
	}
	var maxDepth = n.depth
	var line []Move
	var score int
	var hint = n.hint
	for depth := 1; depth <= maxDepth; depth++ {
		var before = t.stats
		var started = time.Now()
		var iteration = n
		iteration.depth = depth
		iteration.hint = hint
		line, score = s.inner.searchNode(t, iteration)
		t.onIterationComplete(depth, line, score, before, started)
		if len(line) != 0 {
			hint = line[0]
		}
		if isMateScore(score) {
			break
		}
	}
	return line, score
}
