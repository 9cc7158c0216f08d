package bubblepop

import (
	"math"
	"strconv"

	"github.com/vovakirdan/bubblepop/internal/core"
)

const maxAlpha = 255.0

// BubbleSpec holds the randomized attributes a bubble is created with.
type BubbleSpec struct {
	Side      int     // Side length of the bounding square, pixels
	X, Y      int     // Top-left corner, pixels
	Speed     int     // Base speed, pixels per second
	Direction float64 // Radians
	Color     core.Color
}

// BubbleRules are the config values every bubble shares.
type BubbleRules struct {
	MaxSpeed int     // Score normalizer
	FadeRate float64 // Full alpha units per second once popped
}

// Bubble is a drifting, poppable target.
// Direction and speed never change after creation; a hit only flips the
// popped flag and starts the fade.
type Bubble struct {
	side      int
	speed     int
	direction float64
	color     core.Color
	rules     BubbleRules

	// Precise position; rect holds the rounded one used for hit-testing.
	trueX, trueY float64
	rect         core.Rect

	popped    bool
	alpha     float64
	value     int
	destroyed bool
}

// NewBubble creates an unpopped, fully opaque bubble.
func NewBubble(spec BubbleSpec, rules BubbleRules) *Bubble {
	return &Bubble{
		side:      spec.Side,
		speed:     spec.Speed,
		direction: spec.Direction,
		color:     spec.Color,
		rules:     rules,
		trueX:     float64(spec.X),
		trueY:     float64(spec.Y),
		rect:      core.NewRect(spec.X, spec.Y, spec.Side, spec.Side),
		alpha:     maxAlpha,
	}
}

// Side returns the side length in pixels.
func (b *Bubble) Side() int { return b.side }

// Speed returns the base speed.
func (b *Bubble) Speed() int { return b.speed }

// Direction returns the heading in radians.
func (b *Bubble) Direction() float64 { return b.direction }

// Rect returns the rounded bounding box.
func (b *Bubble) Rect() core.Rect { return b.rect }

// Popped reports whether the bubble has been hit.
func (b *Bubble) Popped() bool { return b.popped }

// Alpha returns the fade level in [0, 255].
func (b *Bubble) Alpha() float64 { return b.alpha }

// TrueSpeed is the effective speed under the given multiplier, truncated to
// whole pixels per second.
func (b *Bubble) TrueSpeed(multiplier float64) int {
	return int(multiplier * float64(b.speed))
}

// Advance moves an unpopped bubble or fades a popped one.
func (b *Bubble) Advance(ctx TickContext) {
	if !b.popped {
		ts := float64(b.TrueSpeed(ctx.Multiplier))
		dx := ts * ctx.DT * math.Cos(b.direction)
		dy := ts * ctx.DT * math.Sin(b.direction)

		// Zero net motion would leave a live bubble parked forever.
		if dx+dy == 0 {
			dx = 1
		}

		b.trueX += dx
		b.trueY += dy
		b.rect.X = core.RoundHalfEven(b.trueX)
		b.rect.Y = core.RoundHalfEven(b.trueY)
	} else {
		b.alpha -= maxAlpha * ctx.DT * b.rules.FadeRate
		if b.alpha <= 0 {
			b.alpha = 0
			b.destroyed = true
		}
	}

	// A popped bubble stays in place to show its score even off screen.
	if !b.popped && !ctx.Bounds.Intersects(b.rect) {
		b.destroyed = true
	}
}

// Destroyed reports whether the bubble should be removed.
func (b *Bubble) Destroyed() bool { return b.destroyed }

// Contains hit-tests a point against the rounded bounding box.
func (b *Bubble) Contains(p core.Point) bool {
	return b.rect.Contains(p)
}

// Hit pops the bubble and captures its score for display.
// Returns false if it was already popped.
func (b *Bubble) Hit() bool {
	if b.popped {
		return false
	}
	b.popped = true
	b.value = b.Score()
	return true
}

// Score returns the bubble's value: faster and smaller bubbles are worth more.
// Both terms are floored and the result is at least 1.
func (b *Bubble) Score() int {
	speedTerm := int(math.Floor(float64(b.speed) / float64(b.rules.MaxSpeed) * 10))
	sizeTerm := int(math.Floor(float64(75-b.side) / 10))
	return max(1, speedTerm+sizeTerm)
}

// Sprite describes the bubble for rendering.
func (b *Bubble) Sprite() Sprite {
	s := Sprite{
		Kind:   SpriteBubble,
		Bounds: b.rect,
		Color:  b.color,
		Alpha:  b.alpha / maxAlpha,
		Popped: b.popped,
	}
	if b.popped {
		s.Text = strconv.Itoa(b.value)
	}
	return s
}
