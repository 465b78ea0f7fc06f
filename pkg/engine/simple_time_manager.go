package engine

import (
	"context"
	"time"

	. "github.com/ChizhovVadim/CounterFour/pkg/common"
)

// Limits bound one search call. Zero values mean unlimited.
type Limits struct {
	MoveTime  time.Duration
	Nodes     int64
	Time      time.Duration
	Increment time.Duration
}

type timeManager struct {
	limits    Limits
	hardLimit time.Duration
	cancel    context.CancelFunc
}

func newTimeManager(ctx context.Context, limits Limits) (context.Context, *timeManager) {
	var tm = &timeManager{
		limits: limits,
	}

	if limits.MoveTime > 0 {
		tm.hardLimit = limits.MoveTime
	} else if limits.Time > 0 {
		tm.hardLimit = calcLimit(limits.Time, limits.Increment)
	}

	var cancel context.CancelFunc
	if tm.hardLimit != 0 {
		ctx, cancel = context.WithTimeout(ctx, tm.hardLimit)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}

	tm.cancel = cancel
	return ctx, tm
}

func (tm *timeManager) OnNodesChanged(nodes int64) {
	if tm.limits.Nodes > 0 && nodes >= tm.limits.Nodes {
		tm.cancel()
	}
}

func (tm *timeManager) Close() {
	tm.cancel()
}

// a game has at most CellCount/2 moves per side
func calcLimit(main, inc time.Duration) time.Duration {
	const (
		MoveOverhead = 50 * time.Millisecond
		MinTimeLimit = 1 * time.Millisecond
	)

	main -= MoveOverhead
	if main < MinTimeLimit {
		main = MinTimeLimit
	}

	var hard = main/time.Duration(Max(CellCount/4, 1)) + inc/2
	return limitDuration(hard, MinTimeLimit, main)
}

func limitDuration(v, min, max time.Duration) time.Duration {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
