package engine

import . "github.com/ChizhovVadim/CounterFour/pkg/common"

// Negamax is the exhaustive fixed-depth search in natural column order.
type Negamax struct{}

func NewNegamax() *Negamax {
	return &Negamax{}
}

func (s *Negamax) String() string {
	return "Negamax"
}

func (s *Negamax) searchNode(t *thread, n node) ([]Move, int) {
	t.incNodes()
	if score, ok := t.leaf(&n); ok {
		return nil, score
	}
	var best = -Inf - 1
	var pv []Move
	for _, m := range t.rules.Actions(n.board) {
		var childPV, score = t.search(t.child(&n, m, -Inf, Inf))
		score = -score
		if score > best {
			best = score
			pv = prependMove(m, childPV)
		}
	}
	return pv, best
}
