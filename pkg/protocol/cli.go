package protocol

import (
	"bufio"
	"context"
	"io"

	"github.com/rs/zerolog"
)

type CommandHandler interface {
	Handle(ctx context.Context, command string) error
}

// RunCli feeds lines from in to handler until "quit" or end of input.
// Handler errors are logged and do not stop the loop; io.EOF from the
// handler ends it.
func RunCli(ctx context.Context, in io.Reader, logger zerolog.Logger, handler CommandHandler) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var commandLine = scanner.Text()
		if commandLine == "quit" {
			return nil
		}
		var err = handler.Handle(ctx, commandLine)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			logger.Error().Err(err).Str("command", commandLine).Msg("command failed")
		}
	}
	return scanner.Err()
}
