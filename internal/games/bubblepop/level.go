package bubblepop

import (
	"math"

	"github.com/vovakirdan/bubblepop/internal/config"
)

// LevelFromScore computes floor((score + offset)^exponent) - 1.
// Scores that push the base to zero or below map to level 0.
func LevelFromScore(score int, cfg config.LevelConfig) int {
	base := float64(score + cfg.Offset)
	if base <= 0 {
		return 0
	}
	return int(math.Floor(math.Pow(base, cfg.Exponent))) - 1
}

// LevelTracker holds the displayed level, which never decreases even when
// misses pull the score down.
type LevelTracker struct {
	current int
	cfg     config.LevelConfig
}

// NewLevelTracker starts at cfg.Initial.
func NewLevelTracker(cfg config.LevelConfig) *LevelTracker {
	return &LevelTracker{current: cfg.Initial, cfg: cfg}
}

// Current returns the displayed level.
func (l *LevelTracker) Current() int { return l.current }

// Update recomputes the level from score and reports whether it went up.
func (l *LevelTracker) Update(score int) (int, bool) {
	next := max(l.current, LevelFromScore(score, l.cfg))
	if next > l.current {
		l.current = next
		return next, true
	}
	return l.current, false
}
