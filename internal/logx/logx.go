package logx

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a console logger writing to w. Debug enables engine
// iteration output.
func NewLogger(w io.Writer, debug bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return fmt.Sprintf("%-20s", fmt.Sprintf("%s:%d", filepath.Base(file), line))
	}
	var level = zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(output).Level(level).With().Timestamp().Caller().Logger()
}
