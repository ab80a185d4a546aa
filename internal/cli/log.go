package cli

import (
	"context"
	"io"
	"time"

	charmlog "github.com/charmbracelet/log"
)

type ctxKey string

const loggerKey ctxKey = "logger"

// newLogger creates a charmbracelet logger writing to w at the given level.
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})
}

// withLogger stores a logger in the context for downstream commands.
func withLogger(ctx context.Context, logger *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// loggerFromContext retrieves the logger from the context, falling back to a
// silent logger when none was stored.
func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*charmlog.Logger); ok {
		return logger
	}
	return newLogger(io.Discard, charmlog.FatalLevel)
}

// progress tracks the duration of a CLI operation for debug output.
type progress struct {
	logger *charmlog.Logger
	start  time.Time
}

func newProgress(logger *charmlog.Logger) *progress {
	return &progress{logger: logger, start: time.Now()}
}

func (p *progress) done(msg string) {
	p.logger.Debugf("%s in %s", msg, time.Since(p.start).Round(time.Millisecond))
}
