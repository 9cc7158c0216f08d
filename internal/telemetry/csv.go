package telemetry

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/vovakirdan/bubblepop/internal/event"
)

func init() {
	Register("csv", "append rows to movements-<timestamp>.csv", NewCSVSink)
}

var csvHeader = []string{
	"from_x", "from_y", "to_x", "to_y", "side", "speed", "direction", "elapsed", "distance",
}

// CSVSink appends one row per movement to a timestamped file.
type CSVSink struct {
	mu   sync.Mutex
	file *os.File
	w    *csv.Writer
}

// NewCSVSink creates movements-<timestamp>.csv under opts.Dir and writes
// the header row.
func NewCSVSink(opts Options) (Sink, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("telemetry: cannot create directory %s: %w", dir, err)
	}

	name := fmt.Sprintf("movements-%s.csv", opts.now().Format("20060102-150405"))
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("telemetry: cannot create csv file: %w", err)
	}

	s := &CSVSink{file: f, w: csv.NewWriter(f)}
	if err := s.w.Write(csvHeader); err != nil {
		f.Close()
		return nil, fmt.Errorf("telemetry: cannot write csv header: %w", err)
	}
	s.w.Flush()
	return s, nil
}

// Path returns the file the sink writes to.
func (s *CSVSink) Path() string {
	return s.file.Name()
}

// Write appends m and flushes so a crash loses at most the current row.
func (s *CSVSink) Write(m event.Movement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := []string{
		strconv.Itoa(m.From.X),
		strconv.Itoa(m.From.Y),
		strconv.Itoa(m.To.X),
		strconv.Itoa(m.To.Y),
		strconv.Itoa(m.Side),
		strconv.Itoa(m.Speed),
		strconv.FormatFloat(m.Direction, 'f', 4, 64),
		strconv.FormatFloat(m.Elapsed, 'f', 3, 64),
		strconv.FormatFloat(m.Distance(), 'f', 2, 64),
	}
	if err := s.w.Write(row); err != nil {
		return fmt.Errorf("telemetry: cannot write csv row: %w", err)
	}
	s.w.Flush()
	return s.w.Error()
}

// Close flushes and closes the file.
func (s *CSVSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.w.Flush()
	return s.file.Close()
}
