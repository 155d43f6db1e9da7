package povu

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Sink is the injected logging destination for the core. Global error
// reporting is deliberately absent from this module: every fallible
// operation returns an error, and Sink exists only for progress and
// warning-level narration (e.g. a per-RoV EnumerationBound warning).
type Sink interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
}

// NopSink discards everything. Useful for library consumers and tests
// that don't want log noise.
type NopSink struct{}

func (NopSink) Debug(string, ...any) {}
func (NopSink) Info(string, ...any)  {}
func (NopSink) Warn(string, ...any)  {}
func (NopSink) Error(string, ...any) {}

// zerologSink adapts zerolog to Sink. It is the default sink returned by
// NewSink, and is the concrete instance a Decompose run correlates via
// the run's uuid (see RunID in decompose.go).
type zerologSink struct {
	logger zerolog.Logger
}

// NewSink builds a Sink writing to w (os.Stderr is typical), tagged with
// runID so concurrent RoV workers can be correlated back to one
// decomposition run.
func NewSink(w io.Writer, runID string) Sink {
	if w == nil {
		w = os.Stderr
	}
	logger := zerolog.New(w).With().Timestamp().Str("run_id", runID).Logger()
	return &zerologSink{logger: logger}
}

// with attaches kv to ev, the level-specific event the caller already
// drew from s.logger (Debug/Info/Warn/Error carry distinct levels that
// must be chosen before any fields are attached).
func (s *zerologSink) with(ev *zerolog.Event, kv []any) *zerolog.Event {
	return attachFields(ev, kv)
}

func (s *zerologSink) Debug(msg string, kv ...any) { s.with(s.logger.Debug(), kv).Msg(msg) }
func (s *zerologSink) Info(msg string, kv ...any)  { s.with(s.logger.Info(), kv).Msg(msg) }
func (s *zerologSink) Warn(msg string, kv ...any)  { s.with(s.logger.Warn(), kv).Msg(msg) }
func (s *zerologSink) Error(msg string, kv ...any) { s.with(s.logger.Error(), kv).Msg(msg) }

// attachFields pairs up a flat key/value varargs list onto a zerolog
// event, dropping a trailing unpaired key rather than panicking.
func attachFields(ev *zerolog.Event, kv []any) *zerolog.Event {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		ev = ev.Interface(key, kv[i+1])
	}
	return ev
}
