package engine

import (
	"errors"
	"testing"

	. "github.com/ChizhovVadim/CounterFour/pkg/common"
)

func TestMoveOrder(t *testing.T) {
	var all = []Move{0, 1, 2, 3, 4, 5, 6}
	var tests = []struct {
		ordering string
		moves    string
		hint     Move
		want     string
	}{
		{OrderingSeq, "", MoveEmpty, "1, 2, 3, 4, 5, 6, 7"},
		{OrderingSeq, "", 4, "5, 1, 2, 3, 4, 6, 7"},
		{OrderingCenter, "", MoveEmpty, "4, 3, 5, 2, 6, 1, 7"},
		{OrderingCenter, "", 0, "1, 4, 3, 5, 2, 6, 7"},
		{OrderingDelta, "112233", MoveEmpty, "4"},
	}
	for _, test := range tests {
		var order = mustOrder(t, test.ordering)
		var b = mustBoard(t, test.moves)
		var input = cloneMoves(all)
		var got = FormatLine(order.Order(&b, input, test.hint))
		if test.ordering == OrderingDelta {
			// only the winning move is pinned
			got = got[:1]
		}
		if got != test.want {
			t.Error(test.ordering, test.hint, got)
		}
		if FormatLine(input) != FormatLine(all) {
			t.Error("input modified", input)
		}
	}
}

func TestMoveOrderIllegalHint(t *testing.T) {
	var b = mustBoard(t, "111111")
	var ml = b.Actions(nil)
	var got = mustOrder(t, OrderingSeq).Order(&b, ml, 0)
	if FormatLine(got) != FormatLine(ml) {
		t.Error(got)
	}
}

func TestUnknownMoveOrder(t *testing.T) {
	var _, err = NewMoveOrder("killer")
	var configErr *ConfigurationError
	if !errors.As(err, &configErr) {
		t.Error(err)
	}
}
