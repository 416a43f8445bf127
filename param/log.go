package param

import (
	"context"
	"log/slog"
)

// logger records decode fallbacks at debug level. It discards everything
// until replaced through SetLogger.
var logger = noopLogger()

// SetLogger routes the package's debug logging to l. Passing nil restores
// the discarding default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = noopLogger()
	}
	logger = l
}

type noopLoggerHandler struct {
}

func (n noopLoggerHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return false
}

func (n noopLoggerHandler) Handle(ctx context.Context, record slog.Record) error {
	return nil
}

func (n noopLoggerHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return n
}

func (n noopLoggerHandler) WithGroup(name string) slog.Handler {
	return n
}

func noopLogger() *slog.Logger {
	return slog.New(noopLoggerHandler{})
}
