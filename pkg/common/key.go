package common

import "fmt"

// Key is a base-3 board encoding. 3^42 does not fit into 64 bits, so the
// digits are split: Hi holds the first half of the cells, Lo the second.
// Comparing (Hi, Lo) lexicographically equals comparing the full numbers.
type Key struct {
	Hi, Lo uint64
}

const keySplit = CellCount / 2

func (k Key) Less(other Key) bool {
	if k.Hi != other.Hi {
		return k.Hi < other.Hi
	}
	return k.Lo < other.Lo
}

func (k Key) String() string {
	return fmt.Sprintf("%x:%x", k.Hi, k.Lo)
}

func (b *Board) encode(mirror bool) Key {
	var k Key
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			var src = col
			if mirror {
				src = Columns - 1 - col
			}
			var digit = uint64(b.cells[MakeCell(src, row)])
			if MakeCell(col, row) < keySplit {
				k.Hi = k.Hi*3 + digit
			} else {
				k.Lo = k.Lo*3 + digit
			}
		}
	}
	return k
}

// CanonicalKey folds a board and its horizontal mirror onto the same key.
// mirrored reports that the key was taken from the mirrored board.
func (b *Board) CanonicalKey() (key Key, mirrored bool) {
	var k1 = b.encode(false)
	var k2 = b.encode(true)
	if k2.Less(k1) {
		return k2, true
	}
	return k1, false
}
