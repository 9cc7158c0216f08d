package bubblepop

import (
	"testing"
	"time"

	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/core"
	"github.com/vovakirdan/bubblepop/internal/event"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

var testEpoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// newTestGame builds a game with no initial population and a spawn rate so
// low that nothing spawns while at least one bubble is alive.
func newTestGame(t *testing.T) (*Game, *fakeClock) {
	t.Helper()
	cfg := config.DefaultBubblePopConfig()
	cfg.Bubbles.InitialCount = 0
	cfg.Spawn.Rate = 1e-12

	clock := &fakeClock{now: testEpoch}
	g, err := New(cfg, core.RuntimeConfig{ScreenW: 1024, ScreenH: 681, TickRate: 30, Seed: 1}, WithClock(clock))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return g, clock
}

// placeBubble adds a bubble heading right (direction 0).
func placeBubble(g *Game, x, y, side, speed int) *Bubble {
	b := NewBubble(BubbleSpec{Side: side, X: x, Y: y, Speed: speed, Color: core.ColorBlue}, g.spawner.rules)
	g.addBubble(b)
	return b
}

// recorder collects every event published on a game.
type recorder struct {
	events []event.Event
}

func record(g *Game) *recorder {
	r := &recorder{}
	for t := event.TypePopped; t <= event.TypeQuit; t++ {
		g.Subscribe(t, func(e event.Event) { r.events = append(r.events, e) })
	}
	return r
}

func (r *recorder) count(t event.Type) int {
	n := 0
	for _, e := range r.events {
		if e.Type() == t {
			n++
		}
	}
	return n
}

func (r *recorder) last(t event.Type) event.Event {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type() == t {
			return r.events[i]
		}
	}
	return nil
}

func click(x, y int) core.InputFrame {
	f := core.NewInputFrame()
	f.Click(x, y)
	return f
}

func key(k core.Key) core.InputFrame {
	f := core.NewInputFrame()
	f.Release(k)
	return f
}

func bannerTexts(g *Game) []string {
	var texts []string
	for _, s := range g.Sprites() {
		if s.Kind == SpriteBanner {
			texts = append(texts, s.Text)
		}
	}
	return texts
}
