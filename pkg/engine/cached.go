package engine

import (
	"fmt"

	. "github.com/ChizhovVadim/CounterFour/pkg/common"
)

// Cached memoizes an inner searcher by canonical board key. A board and its
// mirror share one entry.
type Cached struct {
	inner      NodeSearcher
	transTable *transTable
	// reuse entries regardless of their bound; only for measuring the
	// difference in tests
	ignoreBounds bool
}

func NewCached(inner NodeSearcher) *Cached {
	return &Cached{
		inner:      inner,
		transTable: newTransTable(),
	}
}

func (s *Cached) String() string {
	return fmt.Sprintf("%vCache", s.inner)
}

func (s *Cached) clear() {
	s.transTable.Clear()
	if c, ok := s.inner.(clearer); ok {
		c.clear()
	}
}

func (s *Cached) searchNode(t *thread, n node) ([]Move, int) {
	var key, mirrored = t.rules.Hash(n.board)
	if entry, ok := s.transTable.Read(key); ok {
		var line = entry.line
		if mirrored {
			line = mirrorMoves(line)
		}
		var score = valueFromTT(entry.score, n.ply)
		if entry.depth >= n.depth && s.usable(entry.bound, score, n.alpha, n.beta) {
			t.stats.Hits++
			return cloneMoves(line), score
		}
		if n.hint == MoveEmpty && len(line) != 0 {
			n.hint = line[0]
		}
	}

	var line, score = s.inner.searchNode(t, n)

	var stored = cloneMoves(line)
	if mirrored {
		stored = mirrorMoves(line)
	}
	s.transTable.Update(key, n.depth, valueToTT(score, n.ply),
		boundOf(score, n.alpha, n.beta), stored)
	return line, score
}

func (s *Cached) usable(bound, score, alpha, beta int) bool {
	if s.ignoreBounds {
		return true
	}
	return bound == boundExact ||
		bound == boundLower && score >= beta ||
		bound == boundUpper && score <= alpha
}
