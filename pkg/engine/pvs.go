package engine

import . "github.com/ChizhovVadim/CounterFour/pkg/common"

// PVS searches the first ordered move with the full window and proves the
// rest with null-window probes, re-searching a move only when its probe
// beats the current best.
type PVS struct {
	order MoveOrder
}

func NewPVS(order MoveOrder) *PVS {
	return &PVS{order: order}
}

func (s *PVS) String() string {
	return "PVS"
}

func (s *PVS) searchNode(t *thread, n node) ([]Move, int) {
	t.incNodes()
	if score, ok := t.leaf(&n); ok {
		return nil, score
	}
	var ml = s.order.Order(&n.board, t.rules.Actions(n.board), n.hint)
	var nullWindow = n.beta-n.alpha == 1
	var best = n.alpha
	var pv []Move
	for i, m := range ml {
		var childPV []Move
		var score int
		if i == 0 || n.depth == 1 || nullWindow {
			childPV, score = t.search(t.child(&n, m, -n.beta, -best))
			score = -score
		} else {
			childPV, score = t.search(t.child(&n, m, -(best + 1), -best))
			score = -score
			if score > best {
				t.stats.ReSearches++
				childPV, score = t.search(t.child(&n, m, -n.beta, -best))
				score = -score
			}
		}
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
