// Package logging provides contextual logger backed by zerolog.
package logging

import (
	"context"
	"io"
	"strings"

	"github.com/bool64/ctxd"
	"github.com/rs/zerolog"
)

// Logger implements ctxd.Logger with zerolog.
type Logger struct {
	zl zerolog.Logger
}

var _ ctxd.Logger = Logger{}

// New creates a logger writing JSON lines to w.
//
// Unknown or empty level falls back to info.
func New(w io.Writer, level string) Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return Logger{
		zl: zerolog.New(w).Level(lvl).With().Timestamp().Logger(),
	}
}

// Zerolog returns underlying logger.
func (l Logger) Zerolog() zerolog.Logger {
	return l.zl
}

// Debug logs a message.
func (l Logger) Debug(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.log(ctx, l.zl.Debug(), msg, keysAndValues)
}

// Info logs a message.
func (l Logger) Info(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.log(ctx, l.zl.Info(), msg, keysAndValues)
}

// Important logs a message that should not be filtered out by level.
func (l Logger) Important(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.log(ctx, l.zl.WithLevel(zerolog.NoLevel).Bool("important", true), msg, keysAndValues)
}

// Warn logs a message.
func (l Logger) Warn(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.log(ctx, l.zl.Warn(), msg, keysAndValues)
}

// Error logs a message.
func (l Logger) Error(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.log(ctx, l.zl.Error(), msg, keysAndValues)
}

func (l Logger) log(ctx context.Context, e *zerolog.Event, msg string, keysAndValues []interface{}) {
	if e == nil {
		return
	}

	if fields := ctxd.Fields(ctx); len(fields) > 0 {
		e = e.Fields(fields)
	}

	if len(keysAndValues) > 0 {
		e = e.Fields(keysAndValues)
	}

	e.Msg(msg)
}
