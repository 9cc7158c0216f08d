package bubblepop

import (
	"testing"
	"time"
)

func TestPowerupLifecycle(t *testing.T) {
	p := NewPowerup(5 * time.Second)

	if p.Active() || p.End() {
		t.Fatal("new powerup should be inactive")
	}
	if !p.Trigger(testEpoch) {
		t.Fatal("Trigger() on inactive powerup = false, expected true")
	}
	if !p.Active() {
		t.Fatal("Active() = false after Trigger")
	}

	// Extending restarts the clock without reporting a start.
	if p.Trigger(testEpoch.Add(3 * time.Second)) {
		t.Error("Trigger() on active powerup = true, expected false")
	}
	if p.Expired(testEpoch.Add(6 * time.Second)) {
		t.Error("extended powerup expired early")
	}
	if got := p.Remaining(testEpoch.Add(6 * time.Second)); got != 2*time.Second {
		t.Errorf("Remaining() = %v, expected 2s", got)
	}
	if p.Expired(testEpoch.Add(8 * time.Second)) {
		t.Error("Expired() at exactly the duration, expected false")
	}
	if !p.Expired(testEpoch.Add(8*time.Second + time.Millisecond)) {
		t.Error("Expired() = false past the duration")
	}

	if !p.End() {
		t.Error("End() on active powerup = false")
	}
	if p.Active() || p.Remaining(testEpoch) != 0 {
		t.Error("powerup still active after End")
	}
}
