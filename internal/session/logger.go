package session

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// DefaultLogFile keeps logs away from the terminal the game draws on.
const DefaultLogFile = "~/.bubblepop/bubblepop.log"

// NewLogger builds a timestamped logger at the given level. An empty path
// or "-" logs to stderr; anything else is appended to. The returned close
// func releases the file.
func NewLogger(path, level, prefix string) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("session: invalid log level %q: %w", level, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() error { return nil }

	if path != "" && path != "-" {
		if path[0] == '~' {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, nil, fmt.Errorf("session: cannot expand home directory: %w", err)
			}
			path = filepath.Join(home, path[1:])
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("session: cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("session: cannot open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	})
	return logger, closeFn, nil
}
