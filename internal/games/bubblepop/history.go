package bubblepop

import (
	"time"

	"github.com/vovakirdan/bubblepop/internal/core"
	"github.com/vovakirdan/bubblepop/internal/event"
)

// ClickRecord describes one successful click and the last bubble it popped.
type ClickRecord struct {
	Pos       core.Point
	Side      int
	Speed     int
	Direction float64
	At        time.Time
}

// History keeps the most recent successful clicks in a fixed-size window.
type History struct {
	records []ClickRecord
	size    int
}

// NewHistory creates a history holding at most size records.
func NewHistory(size int) *History {
	return &History{records: make([]ClickRecord, 0, size), size: size}
}

// Len returns the number of records held.
func (h *History) Len() int { return len(h.records) }

// Add appends a record, dropping the oldest when full. Once the window is
// full every addition yields a movement from the oldest click to this one.
func (h *History) Add(r ClickRecord) (event.Movement, bool) {
	if len(h.records) == h.size {
		copy(h.records, h.records[1:])
		h.records = h.records[:h.size-1]
	}
	h.records = append(h.records, r)

	if len(h.records) < h.size {
		return event.Movement{}, false
	}
	first := h.records[0]
	return event.Movement{
		From:      first.Pos,
		To:        r.Pos,
		Side:      r.Side,
		Speed:     r.Speed,
		Direction: r.Direction,
		Elapsed:   r.At.Sub(first.At).Seconds(),
	}, true
}
