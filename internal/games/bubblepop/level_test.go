package bubblepop

import (
	"testing"

	"github.com/vovakirdan/bubblepop/internal/config"
)

func TestLevelFromScore(t *testing.T) {
	cfg := config.DefaultBubblePopConfig().Level
	tests := []struct {
		score    int
		expected int
	}{
		{-100, 0},
		{-20, 0},
		{0, 1}, // 20^0.24 is about 2.05
		{77, 1},
		{78, 2},
		{302, 2},
		{303, 3},
	}
	for _, tc := range tests {
		if got := LevelFromScore(tc.score, cfg); got != tc.expected {
			t.Errorf("LevelFromScore(%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}
}

func TestLevelFromScoreMonotone(t *testing.T) {
	cfg := config.DefaultBubblePopConfig().Level
	prev := LevelFromScore(-50, cfg)
	for s := -49; s <= 20000; s++ {
		l := LevelFromScore(s, cfg)
		if l < prev {
			t.Fatalf("LevelFromScore(%d) = %d < LevelFromScore(%d) = %d", s, l, s-1, prev)
		}
		prev = l
	}
}

func TestLevelTrackerNeverDecreases(t *testing.T) {
	l := NewLevelTracker(config.DefaultBubblePopConfig().Level)
	if l.Current() != 1 {
		t.Fatalf("Current() = %d, expected 1", l.Current())
	}

	steps := []struct {
		score    int
		expected int
		up       bool
	}{
		{0, 1, false},
		{-30, 1, false},
		{100, 2, true},
		{10, 2, false},
		{-500, 2, false},
		{400, 3, true},
	}
	for _, s := range steps {
		level, up := l.Update(s.score)
		if level != s.expected || up != s.up {
			t.Errorf("Update(%d) = (%d, %v), expected (%d, %v)", s.score, level, up, s.expected, s.up)
		}
	}
}
