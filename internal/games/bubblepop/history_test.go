package bubblepop

import (
	"testing"
	"time"

	"github.com/vovakirdan/bubblepop/internal/core"
)

func TestHistoryMovement(t *testing.T) {
	h := NewHistory(2)

	if _, ok := h.Add(ClickRecord{Pos: core.Pt(0, 0), Side: 40, Speed: 10, At: testEpoch}); ok {
		t.Fatal("first click should not produce a movement")
	}

	m, ok := h.Add(ClickRecord{Pos: core.Pt(30, 40), Side: 25, Speed: 80, Direction: 1.5, At: testEpoch.Add(500 * time.Millisecond)})
	if !ok {
		t.Fatal("second click should produce a movement")
	}
	if m.Distance() != 50 {
		t.Errorf("Distance() = %v, expected 50", m.Distance())
	}
	if m.Elapsed != 0.5 {
		t.Errorf("Elapsed = %v, expected 0.5", m.Elapsed)
	}
	if m.Side != 25 || m.Speed != 80 || m.Direction != 1.5 {
		t.Errorf("Movement = %+v, expected the latest bubble's side, speed and direction", m)
	}

	m, ok = h.Add(ClickRecord{Pos: core.Pt(30, 100), At: testEpoch.Add(2 * time.Second)})
	if !ok {
		t.Fatal("third click should produce a movement")
	}
	if m.From != core.Pt(30, 40) || m.To != core.Pt(30, 100) {
		t.Errorf("Movement from %v to %v, expected (30,40) to (30,100)", m.From, m.To)
	}
	if m.Elapsed != 1.5 {
		t.Errorf("Elapsed = %v, expected 1.5", m.Elapsed)
	}
	if h.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", h.Len())
	}
}
