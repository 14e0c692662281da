// Package obs centralizes structured logging for the engine, CLI, and
// host adapters. zerolog was already pulled in transitively by the
// detection stack this module descends from; this promotes it to a
// direct, consistently-used dependency instead of leaving it unexercised.
package obs

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the type every package in this module logs through.
type Logger = zerolog.Logger

// New builds the root logger. level follows zerolog's names
// ("debug", "info", "warn", "error"); an unrecognized name falls back to
// "info". pretty selects the human-readable console writer (for `safedoc`
// run from a terminal) over newline-delimited JSON (for service/batch
// contexts where logs are shipped elsewhere).
func New(levelName string, pretty bool) Logger {
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var w io.Writer = os.Stderr
	if pretty {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// WithRun attaches a batch run's correlation id to every subsequent log
// line emitted through the returned logger.
func WithRun(l Logger, runID string) Logger {
	return l.With().Str("run_id", runID).Logger()
}

// WithMatch returns a debug-level event carrying the fields that identify
// one match (rule name, rune offsets, applied weight).
func WithMatch(l Logger, ruleName string, start, end, weight int) *zerolog.Event {
	return l.Debug().
		Str("rule", ruleName).
		Int("start", start).
		Int("end", end).
		Int("weight", weight)
}
