// Package telemetry records movement events derived from consecutive hits.
// Sinks register themselves in init() by name so the CLI can pick one with
// --telemetry without knowing the concrete types.
package telemetry

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubblepop/internal/event"
	"github.com/vovakirdan/bubblepop/internal/storage"
)

// Sink consumes movement events.
type Sink interface {
	// Write records one movement. Errors are reported to the caller but the
	// game keeps running regardless.
	Write(m event.Movement) error

	// Close flushes and releases any underlying resource.
	Close() error
}

// Options carries everything a sink factory may need. Factories use only
// the fields relevant to them.
type Options struct {
	// Dir is where file-based sinks create their output. Defaults to ".".
	Dir string

	// SessionKey tags rows written to the store.
	SessionKey string

	// Store backs the sqlite sink.
	Store *storage.Store

	// Logger backs the log sink.
	Logger *log.Logger

	// Out backs the stdout sink. Defaults to os.Stdout.
	Out io.Writer

	// Now stamps file names. Defaults to time.Now.
	Now func() time.Time
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// Attach subscribes sink to movement events. Write errors are logged at
// warn level and swallowed.
func Attach(sub event.Subscriber, sink Sink, logger *log.Logger) {
	event.On(sub, func(m event.Movement) {
		if err := sink.Write(m); err != nil && logger != nil {
			logger.Warn("telemetry write failed", "error", err)
		}
	})
}
