// Package window runs the game in a desktop window through Ebitengine.
// Bubbles are drawn as antialiased circles at their pixel positions, so the
// play area is the window itself.
package window

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/bubblepop/internal/core"
	"github.com/vovakirdan/bubblepop/internal/event"
	"github.com/vovakirdan/bubblepop/internal/games/bubblepop"
)

const (
	maxFrameDelta = 0.25
	hudMargin     = 5
	hudFontSize   = 24
	bannerSize    = 48
	scoreFontSize = 24
)

var (
	backgroundColor = color.RGBA{0x1d, 0x1f, 0x2b, 0xff}
	hudColor        = color.RGBA{0x00, 0xff, 0x00, 0xff}
	scoreColor      = color.RGBA{0x5c, 0x96, 0xff, 0xff}
	slowColor       = color.RGBA{0xf4, 0xd3, 0x5e, 0xff}
)

// Options configures the window.
type Options struct {
	Title    string
	TickRate int

	// Width and Height are the windowed-mode size.
	Width, Height int
	Fullscreen    bool

	Logger *log.Logger

	// OnDone runs once when the game reports it is done.
	OnDone func()
}

// Window adapts a game to ebiten.Game.
type Window struct {
	game   *bubblepop.Game
	opts   Options
	logger *log.Logger

	hudFace    text.Face
	bannerFace text.Face
	scoreFace  text.Face

	lastUpdate time.Time
	outside    core.Rect
	finished   bool
}

// New prepares a window for g and subscribes it to fullscreen toggles.
func New(g *bubblepop.Game, opts Options) (*Window, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: cannot load font: %w", err)
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 30
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	w := &Window{
		game:       g,
		opts:       opts,
		logger:     logger,
		hudFace:    &text.GoTextFace{Source: src, Size: hudFontSize},
		bannerFace: &text.GoTextFace{Source: src, Size: bannerSize},
		scoreFace:  &text.GoTextFace{Source: src, Size: scoreFontSize},
	}

	event.On(g, func(e event.FullscreenToggled) {
		ebiten.SetFullscreen(e.Fullscreen)
		if e.Fullscreen {
			mw, mh := ebiten.Monitor().Size()
			w.logger.Debug("fullscreen", "width", mw, "height", mh)
		}
	})

	return w, nil
}

// Update collects the released buttons and keys of this frame and steps
// the game with the real time since the previous update.
func (w *Window) Update() error {
	now := time.Now()
	dt := 0.0
	if !w.lastUpdate.IsZero() {
		dt = core.ClampF(now.Sub(w.lastUpdate).Seconds(), 0, maxFrameDelta)
	}
	w.lastUpdate = now

	w.game.Step(w.collectInput(), dt)

	if w.game.Done() {
		w.finish()
		return ebiten.Termination
	}
	return nil
}

func (w *Window) collectInput() core.InputFrame {
	frame := core.NewInputFrame()

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		frame.Click(x, y)
	}
	for _, k := range []struct {
		from ebiten.Key
		to   core.Key
	}{
		{ebiten.KeySpace, core.KeySpace},
		{ebiten.KeyEscape, core.KeyEscape},
		{ebiten.KeyF11, core.KeyF11},
	} {
		if inpututil.IsKeyJustReleased(k.from) {
			frame.Release(k.to)
		}
	}
	if ebiten.IsWindowBeingClosed() {
		frame.Push(core.Quit{})
	}

	return frame
}

func (w *Window) finish() {
	if w.finished {
		return
	}
	w.finished = true
	if w.opts.OnDone != nil {
		w.opts.OnDone()
	}
}

// Draw renders sprites in draw order, then the HUD.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, s := range w.game.Sprites() {
		switch s.Kind {
		case bubblepop.SpriteBubble:
			w.drawBubble(screen, s)
		case bubblepop.SpriteBanner:
			c := s.Bounds.Center()
			w.drawText(screen, s.Text, w.bannerFace, c.X, c.Y, withAlpha(s.Color, s.Alpha), text.AlignCenter)
		}
	}

	w.drawHUD(screen)
}

func (w *Window) drawBubble(screen *ebiten.Image, s bubblepop.Sprite) {
	c := s.Bounds.Center()
	if !s.Popped {
		r := float32(s.Bounds.W) / 2
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), r, withAlpha(s.Color, 1), true)
		return
	}
	sc := color.NRGBA{scoreColor.R, scoreColor.G, scoreColor.B, uint8(s.Alpha * 255)}
	w.drawText(screen, s.Text, w.scoreFace, c.X, c.Y, sc, text.AlignCenter)
}

func (w *Window) drawHUD(screen *ebiten.Image) {
	st := w.game.State()
	lineH := hudFontSize + hudMargin
	width := screen.Bounds().Dx()

	w.drawText(screen, fmt.Sprintf("Level: %d", st.Level), w.hudFace, hudMargin, lineH/2, hudColor, text.AlignStart)
	w.drawText(screen, fmt.Sprintf("Score: %d", st.Score), w.hudFace, hudMargin, lineH+lineH/2, hudColor, text.AlignStart)
	w.drawText(screen, fmt.Sprintf("Bonus: %.1f", st.Bonus), w.hudFace, width-hudMargin, lineH/2, hudColor, text.AlignEnd)
	if st.PowerupActive {
		left := w.game.PowerupRemaining().Seconds()
		w.drawText(screen, fmt.Sprintf("Slow-mo %.1fs", left), w.hudFace, width-hudMargin, lineH+lineH/2, slowColor, text.AlignEnd)
	}
}

// drawText draws s with its vertical center at y.
func (w *Window) drawText(screen *ebiten.Image, s string, face text.Face, x, y int, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}

// Layout uses the window size as the play area and forwards changes to
// the game, which keeps its state across resizes.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	r := core.NewRect(0, 0, outsideWidth, outsideHeight)
	if r != w.outside {
		w.outside = r
		w.game.Resize(r)
	}
	return outsideWidth, outsideHeight
}

func withAlpha(c core.Color, alpha float64) color.NRGBA {
	r, g, b := c.RGB()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(core.ClampF(alpha, 0, 1) * 255)}
}

// Run opens the window and blocks until the game ends or the window is
// closed.
func Run(w *Window) error {
	ebiten.SetWindowSize(w.opts.Width, w.opts.Height)
	ebiten.SetWindowTitle(w.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(w.opts.TickRate)
	ebiten.SetFullscreen(w.opts.Fullscreen)

	err := ebiten.RunGame(w)
	w.finish()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
