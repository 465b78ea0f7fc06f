package engine

import . "github.com/ChizhovVadim/CounterFour/pkg/common"

const (
	boundLower = 1 << iota
	boundUpper
)

const boundExact = boundLower | boundUpper

// lines are stored in canonical orientation
type transEntry struct {
	line  []Move
	score int
	depth int
	bound int
}

// transTable never evicts. It lives as long as its owner.
type transTable struct {
	entries map[Key]transEntry
}

func newTransTable() *transTable {
	return &transTable{
		entries: make(map[Key]transEntry),
	}
}

func (tt *transTable) Size() int {
	return len(tt.entries)
}

func (tt *transTable) Clear() {
	tt.entries = make(map[Key]transEntry)
}

func (tt *transTable) Read(key Key) (entry transEntry, ok bool) {
	entry, ok = tt.entries[key]
	return
}

func (tt *transTable) Update(key Key, depth, score, bound int, line []Move) {
	if old, found := tt.entries[key]; found && old.depth > depth {
		return
	}
	tt.entries[key] = transEntry{
		line:  line,
		score: score,
		depth: depth,
		bound: bound,
	}
}

func boundOf(score, alpha, beta int) int {
	if score <= alpha {
		return boundUpper
	}
	if score >= beta {
		return boundLower
	}
	return boundExact
}
