// Package logger builds the zerolog logger shared by the server, the
// directory service and the event consumer.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger for env.  In "dev" it writes human readable lines
// to stderr, everywhere else one JSON object per line.  An unknown level
// falls back to info.
func New(env, level string) zerolog.Logger {
	return NewWithWriter(env, level, os.Stderr)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(env, level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	out := w
	if env == "dev" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Str("env", env).Logger()
}
