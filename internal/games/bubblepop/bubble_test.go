package bubblepop

import (
	"math"
	"testing"

	"github.com/vovakirdan/bubblepop/internal/core"
)

var testRules = BubbleRules{MaxSpeed: 100, FadeRate: 2.0}

var testBounds = core.NewRect(0, 0, 1024, 681)

func TestBubbleScore(t *testing.T) {
	tests := []struct {
		name     string
		speed    int
		side     int
		expected int
	}{
		{"fastest small", 100, 25, 15},
		{"slowest large clamps to one", 5, 95, 1},
		{"medium", 50, 75, 5},
		{"negative size term exact", 30, 85, 2},
		{"negative size term floors", 99, 86, 7},
		{"large fast bubble floors down", 99, 96, 6},
		{"largest fast bubble", 99, 99, 6},
		{"smallest size", 99, 20, 14},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBubble(BubbleSpec{Side: tc.side, Speed: tc.speed}, testRules)
			if got := b.Score(); got != tc.expected {
				t.Errorf("Score() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestBubbleScoreAtLeastOne(t *testing.T) {
	for speed := 5; speed < 100; speed++ {
		for side := 20; side < 100; side++ {
			b := NewBubble(BubbleSpec{Side: side, Speed: speed}, testRules)
			if s := b.Score(); s < 1 {
				t.Fatalf("Score() = %d for speed %d side %d, expected >= 1", s, speed, side)
			}
		}
	}
}

func TestBubbleTrueSpeed(t *testing.T) {
	b := NewBubble(BubbleSpec{Side: 30, Speed: 99}, testRules)
	if got := b.TrueSpeed(0.5); got != 49 {
		t.Errorf("TrueSpeed(0.5) = %d, expected 49", got)
	}
	if got := b.TrueSpeed(2); got != 198 {
		t.Errorf("TrueSpeed(2) = %d, expected 198", got)
	}
}

func TestBubbleAdvanceMoves(t *testing.T) {
	b := NewBubble(BubbleSpec{Side: 30, X: 100, Y: 100, Speed: 100, Direction: 0}, testRules)
	b.Advance(TickContext{DT: 0.1, Multiplier: 1, Bounds: testBounds})

	if r := b.Rect(); r.X != 110 || r.Y != 100 {
		t.Errorf("Rect() = %+v, expected position (110, 100)", r)
	}

	down := NewBubble(BubbleSpec{Side: 30, X: 100, Y: 100, Speed: 50, Direction: math.Pi / 2}, testRules)
	down.Advance(TickContext{DT: 0.2, Multiplier: 2, Bounds: testBounds})
	if r := down.Rect(); r.X != 100 || r.Y != 120 {
		t.Errorf("Rect() = %+v, expected position (100, 120)", r)
	}
}

func TestBubbleKeepsPrecisePosition(t *testing.T) {
	// 5 px/s at 30 fps moves a sixth of a pixel per frame.
	b := NewBubble(BubbleSpec{Side: 30, X: 100, Y: 100, Speed: 5}, testRules)
	ctx := TickContext{DT: 1.0 / 30, Multiplier: 1, Bounds: testBounds}

	b.Advance(ctx)
	if b.Rect().X != 100 {
		t.Errorf("after one frame X = %d, expected 100", b.Rect().X)
	}

	for i := 1; i < 30; i++ {
		b.Advance(ctx)
	}
	if b.Rect().X != 105 {
		t.Errorf("after one second X = %d, expected 105", b.Rect().X)
	}
}

func TestBubbleNeverStuck(t *testing.T) {
	tests := []struct {
		name string
		ctx  TickContext
	}{
		{"zero dt", TickContext{DT: 0, Multiplier: 1, Bounds: testBounds}},
		{"zero multiplier", TickContext{DT: 0.1, Multiplier: 0, Bounds: testBounds}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBubble(BubbleSpec{Side: 30, X: 100, Y: 100, Speed: 50}, testRules)
			for i := 1; i <= 3; i++ {
				before := b.Rect()
				b.Advance(tc.ctx)
				if b.Rect() == before {
					t.Fatalf("frame %d: bubble did not move from %+v", i, before)
				}
			}
			if b.Rect().X != 103 {
				t.Errorf("X = %d, expected 103", b.Rect().X)
			}
		})
	}
}

func TestBubbleLeavesPlayArea(t *testing.T) {
	b := NewBubble(BubbleSpec{Side: 20, X: 1000, Y: 100, Speed: 100}, testRules)

	b.Advance(TickContext{DT: 0.1, Multiplier: 1, Bounds: testBounds})
	if b.Destroyed() {
		t.Fatal("bubble still overlapping the play area was destroyed")
	}

	b.Advance(TickContext{DT: 0.2, Multiplier: 1, Bounds: testBounds})
	if !b.Destroyed() {
		t.Errorf("bubble at %+v outside %+v should be destroyed", b.Rect(), testBounds)
	}
}

func TestBubbleHitAndFade(t *testing.T) {
	b := NewBubble(BubbleSpec{Side: 25, X: 100, Y: 100, Speed: 100}, testRules)

	if !b.Hit() {
		t.Fatal("Hit() = false on a live bubble, expected true")
	}
	if b.Hit() {
		t.Error("Hit() = true on a popped bubble, expected false")
	}

	s := b.Sprite()
	if !s.Popped || s.Text != "15" {
		t.Errorf("Sprite() = %+v, expected popped with text 15", s)
	}

	ctx := TickContext{DT: 0.25, Multiplier: 1, Bounds: testBounds}
	b.Advance(ctx)
	if b.Rect().X != 100 {
		t.Errorf("popped bubble moved to X = %d", b.Rect().X)
	}
	if b.Alpha() != 127.5 {
		t.Errorf("Alpha() = %v, expected 127.5", b.Alpha())
	}
	if b.Destroyed() {
		t.Fatal("half-faded bubble was destroyed")
	}

	b.Advance(ctx)
	if !b.Destroyed() {
		t.Error("fully faded bubble should be destroyed")
	}
}

func TestPoppedBubbleOutsideAreaKeepsFading(t *testing.T) {
	b := NewBubble(BubbleSpec{Side: 25, X: 2000, Y: 100, Speed: 100}, testRules)
	b.Hit()
	b.Advance(TickContext{DT: 0.1, Multiplier: 1, Bounds: testBounds})
	if b.Destroyed() {
		t.Error("popped bubble should only be removed by its fade")
	}
}

func TestBubbleContains(t *testing.T) {
	b := NewBubble(BubbleSpec{Side: 25, X: 100, Y: 100}, testRules)
	tests := []struct {
		p        core.Point
		expected bool
	}{
		{core.Pt(100, 100), true},
		{core.Pt(124, 124), true},
		{core.Pt(125, 110), false},
		{core.Pt(99, 110), false},
	}
	for _, tc := range tests {
		if got := b.Contains(tc.p); got != tc.expected {
			t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
		}
	}
}

func TestBannerFades(t *testing.T) {
	b := NewBanner("Paused", core.Pt(512, 340), 0.5)
	b.Advance(TickContext{DT: 0.25})
	if b.Destroyed() {
		t.Fatal("banner destroyed halfway through its lifespan")
	}
	if s := b.Sprite(); s.Alpha != 0.5 || s.Bounds.Center() != core.Pt(512, 340) {
		t.Errorf("Sprite() = %+v, expected alpha 0.5 at (512, 340)", s)
	}
	b.Advance(TickContext{DT: 0.25})
	if !b.Destroyed() {
		t.Error("banner should be destroyed after its lifespan")
	}
}
