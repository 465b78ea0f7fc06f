package arena

import (
	"context"
	"io"

	. "github.com/ChizhovVadim/CounterFour/pkg/common"
	"github.com/ChizhovVadim/CounterFour/pkg/engine"
)

type Engine interface {
	Search(ctx context.Context, params engine.SearchParams) engine.SearchInfo
	String() string
}

type clearer interface {
	Clear()
}

// BuildFunc makes a fresh engine instance from a spec. Every game worker
// builds its own instances.
type BuildFunc func(spec string) (Engine, error)

type Config struct {
	Engines     []string
	Concurrency int
	Rounds      int
	// move strings, e.g. "44"; empty means the embedded list
	Openings []string
	Limits   engine.Limits
	// zstd compressed game records are written here when set
	Records io.Writer
}

type gameInfo struct {
	gameNumber int
	opening    string
	first      int // engine index playing Player1
	second     int
}

type gameResult struct {
	gameInfo gameInfo
	moves    []Move
	result   Result
	comment  string
}
