package bubblepop

import "github.com/vovakirdan/bubblepop/internal/core"

// Banner is a fading text overlay. It has no interaction and is removed
// once fully transparent.
type Banner struct {
	text      string
	center    core.Point
	lifespan  float64 // Seconds from opaque to gone
	alpha     float64
	destroyed bool
}

// NewBanner creates an opaque banner centered on center.
func NewBanner(text string, center core.Point, lifespan float64) *Banner {
	return &Banner{
		text:     text,
		center:   center,
		lifespan: lifespan,
		alpha:    maxAlpha,
	}
}

// Text returns the banner text.
func (b *Banner) Text() string { return b.text }

// Advance fades the banner.
func (b *Banner) Advance(ctx TickContext) {
	b.alpha -= maxAlpha * ctx.DT / b.lifespan
	if b.alpha <= 0 {
		b.alpha = 0
		b.destroyed = true
	}
}

// Destroyed reports whether the banner has faded out.
func (b *Banner) Destroyed() bool { return b.destroyed }

// Sprite describes the banner for rendering.
func (b *Banner) Sprite() Sprite {
	return Sprite{
		Kind:   SpriteBanner,
		Bounds: core.NewRect(b.center.X, b.center.Y, 0, 0),
		Color:  core.ColorCyan,
		Alpha:  b.alpha / maxAlpha,
		Text:   b.text,
	}
}
