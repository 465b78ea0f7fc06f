package engine

import . "github.com/ChizhovVadim/CounterFour/pkg/common"

// AlphaBeta is negamax with window pruning. Scores at or below alpha are
// upper bounds, scores at or above beta are lower bounds.
type AlphaBeta struct {
	order MoveOrder
}

func NewAlphaBeta(order MoveOrder) *AlphaBeta {
	return &AlphaBeta{order: order}
}

func (s *AlphaBeta) String() string {
	return "AlphaBeta"
}

func (s *AlphaBeta) searchNode(t *thread, n node) ([]Move, int) {
	t.incNodes()
	if score, ok := t.leaf(&n); ok {
		return nil, score
	}
	var ml = s.order.Order(&n.board, t.rules.Actions(n.board), n.hint)
	var best = n.alpha
	var pv []Move
	for _, m := range ml {
		var childPV, score = t.search(t.child(&n, m, -n.beta, -best))
		score = -score
		if score > best || pv == nil {
			if score > best {
				best = score
			}
			pv = prependMove(m, childPV)
		}
		if best >= n.beta {
			t.stats.BetaCuts++
			break
		}
	}
	return pv, best
}
