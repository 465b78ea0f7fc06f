package engine

import (
	"context"
	"math/rand"
	"time"

	. "github.com/ChizhovVadim/CounterFour/pkg/common"
)

type Random struct {
	rnd *rand.Rand
}

func NewRandom(seed int64) *Random {
	return &Random{rnd: rand.New(rand.NewSource(seed))}
}

func (e *Random) String() string {
	return "Random"
}

func (e *Random) Choose(ctx context.Context, rules Rules, b Board) (Move, error) {
	return chooseWith(ctx, e, rules, b)
}

func (e *Random) Search(ctx context.Context, params SearchParams) SearchInfo {
	var start = time.Now()
	var rules = params.Rules
	var ml = rules.Actions(params.Board)
	var si = SearchInfo{Engine: e.String()}
	if len(ml) == 0 || rules.Terminal(params.Board) != ResultNone {
		return si
	}
	si.MainLine = []Move{ml[e.rnd.Intn(len(ml))]}
	si.Time = time.Since(start)
	return si
}
