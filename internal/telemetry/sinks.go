package telemetry

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubblepop/internal/event"
	"github.com/vovakirdan/bubblepop/internal/storage"
)

// StdoutSink is the name of the sink that prints to the process stdout.
const StdoutSink = "stdout"

func init() {
	Register("none", "discard movements", func(Options) (Sink, error) { return Discard{}, nil })
	Register(StdoutSink, "print distance, elapsed and side per movement", NewWriterSink)
	Register("log", "log movements at info level", NewLogSink)
	Register("sqlite", "store movements in the scores database", NewStoreSink)
}

// Discard drops every movement.
type Discard struct{}

func (Discard) Write(event.Movement) error { return nil }
func (Discard) Close() error               { return nil }

// WriterSink prints "distance elapsed side" lines.
type WriterSink struct {
	out io.Writer
}

// NewWriterSink writes to opts.Out, or stdout when unset.
func NewWriterSink(opts Options) (Sink, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return &WriterSink{out: out}, nil
}

func (s *WriterSink) Write(m event.Movement) error {
	_, err := fmt.Fprintf(s.out, "%g %g %d\n", m.Distance(), m.Elapsed, m.Side)
	return err
}

func (s *WriterSink) Close() error { return nil }

// LogSink emits one structured log line per movement.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink requires opts.Logger.
func NewLogSink(opts Options) (Sink, error) {
	if opts.Logger == nil {
		return nil, errors.New("telemetry: log sink needs a logger")
	}
	return &LogSink{logger: opts.Logger.WithPrefix("movement")}, nil
}

func (s *LogSink) Write(m event.Movement) error {
	s.logger.Info("movement",
		"from", m.From,
		"to", m.To,
		"distance", m.Distance(),
		"elapsed", m.Elapsed,
		"side", m.Side,
		"speed", m.Speed,
	)
	return nil
}

func (s *LogSink) Close() error { return nil }

// StoreSink saves movements to SQLite under the session key.
// The store is owned by the caller and stays open on Close.
type StoreSink struct {
	store *storage.Store
	key   string
}

// NewStoreSink requires opts.Store.
func NewStoreSink(opts Options) (Sink, error) {
	if opts.Store == nil {
		return nil, errors.New("telemetry: sqlite sink needs an open store")
	}
	return &StoreSink{store: opts.Store, key: opts.SessionKey}, nil
}

func (s *StoreSink) Write(m event.Movement) error {
	_, err := s.store.SaveMovement(s.key, m)
	return err
}

func (s *StoreSink) Close() error { return nil }
