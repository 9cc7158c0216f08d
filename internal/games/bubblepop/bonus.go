package bubblepop

import (
	"time"

	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/core"
)

// Bonus is the combo tracker. Hits raise it, idle seconds wear it down, and
// raising it to or past the threshold triggers the powerup.
type Bonus struct {
	value   float64
	lastHit time.Time
	cfg     config.BonusConfig
}

// NewBonus creates a tracker whose grace period starts at start.
func NewBonus(cfg config.BonusConfig, start time.Time) *Bonus {
	return &Bonus{cfg: cfg, lastHit: start}
}

// Value returns the current bonus.
func (b *Bonus) Value() float64 { return b.value }

// Set assigns a new value, clamped at zero and rounded to one decimal place.
// It reports whether the change triggers the powerup: the new value must be
// at or above the threshold and strictly above the old one.
func (b *Bonus) Set(v float64) bool {
	v = core.RoundTo(max(0, v), 1)
	triggered := v >= b.cfg.Threshold && v > b.value
	b.value = v
	return triggered
}

// Add raises the bonus by one increment.
func (b *Bonus) Add() bool {
	return b.Set(b.value + b.cfg.Increment)
}

// MarkHit records a successful click.
func (b *Bonus) MarkHit(now time.Time) {
	b.lastHit = now
}

// Attrition decays the bonus by one step if the grace period since the last
// hit has passed. Reports whether it decayed.
func (b *Bonus) Attrition(now time.Time) bool {
	if now.Sub(b.lastHit) <= b.cfg.HitGrace() {
		return false
	}
	b.Set(b.value - b.cfg.Decay)
	return true
}

// Reset zeroes the bonus.
func (b *Bonus) Reset() {
	b.value = 0
}
