package bubblepop

import (
	"testing"
	"time"

	"github.com/vovakirdan/bubblepop/internal/config"
)

func newTestBonus() *Bonus {
	return NewBonus(config.DefaultBubblePopConfig().Bonus, testEpoch)
}

func TestBonusTriggersAtThreshold(t *testing.T) {
	b := newTestBonus()
	for i := 1; i < 50; i++ {
		if b.Add() {
			t.Fatalf("Add() #%d triggered at bonus %v, below threshold", i, b.Value())
		}
	}
	if !b.Add() {
		t.Fatalf("Add() #50 did not trigger at bonus %v", b.Value())
	}
	if b.Value() != 5.0 {
		t.Errorf("Value() = %v, expected 5.0", b.Value())
	}
	// Still at or above the threshold and increasing: triggers again.
	if !b.Add() {
		t.Error("Add() above threshold should trigger again")
	}
}

func TestBonusSetRules(t *testing.T) {
	tests := []struct {
		name      string
		from, to  float64
		triggered bool
		expected  float64
	}{
		{"below threshold", 1.0, 2.0, false, 2.0},
		{"reaching threshold", 4.9, 5.0, true, 5.0},
		{"decrease above threshold", 6.0, 5.5, false, 5.5},
		{"unchanged at threshold", 5.0, 5.0, false, 5.0},
		{"clamped at zero", 0.2, -3, false, 0},
		{"rounded to one decimal", 0, 0.1 + 0.2, false, 0.3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBonus()
			b.Set(tc.from)
			if got := b.Set(tc.to); got != tc.triggered {
				t.Errorf("Set(%v) = %v, expected %v", tc.to, got, tc.triggered)
			}
			if b.Value() != tc.expected {
				t.Errorf("Value() = %v, expected %v", b.Value(), tc.expected)
			}
		})
	}
}

func TestBonusAttrition(t *testing.T) {
	b := newTestBonus()
	b.Set(0.3)

	if b.Attrition(testEpoch.Add(time.Second)) {
		t.Error("Attrition() decayed exactly one second after the last hit")
	}

	now := testEpoch.Add(1001 * time.Millisecond)
	expected := []float64{0.2, 0.1, 0.0, 0.0}
	for i, want := range expected {
		b.Attrition(now)
		if b.Value() != want {
			t.Errorf("after %d decays Value() = %v, expected %v", i+1, b.Value(), want)
		}
	}
}

func TestBonusHitResetsGrace(t *testing.T) {
	b := newTestBonus()
	b.Set(1.0)
	b.MarkHit(testEpoch.Add(5 * time.Second))
	if b.Attrition(testEpoch.Add(5500 * time.Millisecond)) {
		t.Error("Attrition() decayed within the grace period after a hit")
	}
	if !b.lastHit.Equal(testEpoch.Add(5 * time.Second)) {
		t.Errorf("lastHit = %v, expected 5s after epoch", b.lastHit)
	}
	b.Reset()
	if b.Value() != 0 {
		t.Errorf("Value() after Reset = %v, expected 0", b.Value())
	}
}
