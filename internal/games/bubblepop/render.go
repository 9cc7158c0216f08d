package bubblepop

import (
	"fmt"

	"github.com/vovakirdan/bubblepop/internal/core"
)

// Visual characters for terminal rendering
const (
	BubbleChar = '●'
	FadingChar = '◯'
)

// Render draws the game into a terminal cell buffer. Pixel coordinates are
// divided by the configured cell size.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, s := range g.Sprites() {
		switch s.Kind {
		case SpriteBubble:
			g.drawBubble(dst, s)
		case SpriteBanner:
			c := g.toCell(s.Bounds.Center())
			dst.DrawTextCentered(c.X, c.Y, s.Text, fadeColor(s.Color, s.Alpha))
		}
	}

	g.drawHUD(dst)
}

func (g *Game) drawBubble(dst *core.Screen, s Sprite) {
	cells := g.toCellRect(s.Bounds)
	if !s.Popped {
		dst.DrawEllipse(cells, BubbleChar, s.Color)
		return
	}
	if s.Alpha >= 0.5 {
		dst.DrawEllipse(cells, FadingChar, core.ColorGray)
	}
	c := cells.Center()
	dst.DrawTextCentered(c.X, c.Y, s.Text, fadeColor(core.ColorBlue, s.Alpha))
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Level: %d", g.level.Current()), core.ColorGreen)
	dst.DrawText(1, 1, fmt.Sprintf("Score: %d", g.score), core.ColorGreen)
	dst.DrawTextRight(0, 1, fmt.Sprintf("Bonus: %.1f", g.bonus.Value()), core.ColorGreen)
	if g.powerup.Active() {
		left := g.PowerupRemaining().Seconds()
		dst.DrawTextRight(1, 1, fmt.Sprintf("Slow-mo %.1fs", left), core.ColorYellow)
	}
}

func (g *Game) toCell(p core.Point) core.Point {
	cw, ch := g.cfg.Terminal.CellWidth, g.cfg.Terminal.CellHeight
	return core.Pt(floorDiv(p.X, cw), floorDiv(p.Y, ch))
}

// toCellRect maps a pixel box to the cells it covers, at least one cell.
func (g *Game) toCellRect(r core.Rect) core.Rect {
	cw, ch := g.cfg.Terminal.CellWidth, g.cfg.Terminal.CellHeight
	x0, y0 := floorDiv(r.X, cw), floorDiv(r.Y, ch)
	x1, y1 := ceilDiv(r.Right(), cw), ceilDiv(r.Bottom(), ch)
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// fadeColor dims a color once it is more than half transparent.
func fadeColor(c core.Color, alpha float64) core.Color {
	if alpha < 0.5 {
		return core.ColorGray
	}
	return c
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
