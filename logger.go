package relevance

import (
	"context"
	"io"
	"log/slog"
	"math"
	"os"
)

// Logger wraps slog.Logger with scoring-specific helpers so log fields stay
// consistent across the library.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler. If handler is nil,
// a text handler to stderr at Info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(math.MaxInt),
	}))}
}

// WithField adds the scored field name to the logger.
func (l *Logger) WithField(field string) *Logger {
	return &Logger{Logger: l.Logger.With("field", field)}
}

// LogWeight logs the construction of a per-query weight.
func (l *Logger) LogWeight(ctx context.Context, field string, terms int, idf float64) {
	l.DebugContext(ctx, "weight computed",
		"field", field,
		"terms", terms,
		"idf", idf,
	)
}

// LogRank logs completion of a batch scoring run.
func (l *Logger) LogRank(ctx context.Context, postings, hits int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "ranking failed",
			"postings", postings,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "ranking completed",
			"postings", postings,
			"hits", hits,
		)
	}
}
