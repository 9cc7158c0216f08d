// Package bubblepop implements the bubble pop simulation core.
// Colored bubbles drift across the play area; clicking pops them for score,
// consecutive hits build a bonus that triggers a slow-motion powerup, and the
// level derived from the score speeds bubbles back up.
package bubblepop

import "github.com/vovakirdan/bubblepop/internal/core"

// TickContext carries the per-frame values every entity needs to advance.
// The speed multiplier lives here rather than in shared state so the
// powerup/level interaction stays explicit.
type TickContext struct {
	DT         float64   // Seconds since the previous frame
	Multiplier float64   // Speed multiplier shared by all bubbles this frame
	Bounds     core.Rect // Visible play area
}

// Entity is anything the game updates, draws and eventually removes.
type Entity interface {
	Advance(ctx TickContext)
	Destroyed() bool
	Sprite() Sprite
}

// SpriteKind distinguishes the drawable variants.
type SpriteKind int

const (
	SpriteBubble SpriteKind = iota
	SpriteBanner
)

// Sprite is a render-agnostic description of an entity for one frame.
// Frontends decide how to draw it.
type Sprite struct {
	Kind   SpriteKind
	Bounds core.Rect  // Bubble box; banners have an empty rect anchored at their center
	Color  core.Color // Bubble fill or banner text color
	Alpha  float64    // Opacity in [0, 1]
	Text   string     // Banner text, or the score shown by a popped bubble
	Popped bool
}
