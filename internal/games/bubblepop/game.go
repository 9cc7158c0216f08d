package bubblepop

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/core"
	"github.com/vovakirdan/bubblepop/internal/event"
)

// Option configures a Game.
type Option func(*Game)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c core.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithBus publishes events on an existing bus instead of a private one.
func WithBus(b *event.Bus) Option {
	return func(g *Game) { g.bus = b }
}

// Game owns every entity and state machine and advances them once per frame.
// It is single-threaded: Step, Render and the accessors must be called from
// the same goroutine.
type Game struct {
	cfg   config.BubblePopConfig
	clock core.Clock
	bus   *event.Bus
	rng   *rand.Rand

	spawner *Spawner
	bonus   *Bonus
	powerup *Powerup
	level   *LevelTracker
	history *History
	timer   intervalTimer

	entities []Entity  // Draw order
	bubbles  []*Bubble // Hit-test order

	bounds     core.Rect
	score      int
	hits       int
	misses     int
	paused     bool
	fullscreen bool
	done       bool
	start      time.Time
}

// New validates cfg and creates a game with its initial population and
// level banner. A zero seed uses the current time.
func New(cfg config.BubblePopConfig, rc core.RuntimeConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("bubblepop: %w", err)
	}

	g := &Game{
		cfg:        cfg,
		clock:      core.SystemClock{},
		fullscreen: cfg.Window.Fullscreen,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.bus == nil {
		g.bus = event.NewBus()
	}

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.bounds = rc.Bounds()
	if g.bounds.Empty() {
		g.bounds = core.NewRect(0, 0, cfg.Window.Width, cfg.Window.Height)
	}

	g.start = g.clock.Now()
	g.spawner = NewSpawner(g.rng, cfg.Bubbles, cfg.Spawn.Rate)
	g.bonus = NewBonus(cfg.Bonus, g.start)
	g.powerup = NewPowerup(cfg.Powerup.Duration())
	g.level = NewLevelTracker(cfg.Level)
	g.history = NewHistory(cfg.History.Size)
	g.timer = newIntervalTimer(cfg.Bonus.AttritionInterval(), g.start)

	// The initial population arrives silently.
	for i := 0; i < cfg.Bubbles.InitialCount; i++ {
		g.addBubble(g.spawner.Spawn(g.bounds))
	}
	g.addBanner(fmt.Sprintf("Level %d", g.level.Current()), cfg.Banner.LevelLifespan)

	return g, nil
}

// Subscribe registers a handler for game events.
func (g *Game) Subscribe(t event.Type, h event.Handler) {
	g.bus.Subscribe(t, h)
}

// Step processes one frame of input and, unless paused, advances the
// simulation by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.done {
		return core.StepResult{State: g.State()}
	}
	if dt < 0 {
		dt = 0
	}

	now := g.clock.Now()
	advanceOnce := false

	for _, ev := range in.Events {
		switch e := ev.(type) {
		case core.MouseRelease:
			if !g.paused {
				g.click(e.Pos, now)
			}
		case core.KeyRelease:
			switch e.Key {
			case core.KeySpace:
				g.togglePause()
				// Let the pause banner draw once before freezing.
				if g.paused {
					advanceOnce = true
				}
			case core.KeyEscape:
				g.quit()
			case core.KeyF11:
				g.ToggleFullscreen()
			}
		case core.Quit:
			g.quit()
		}
	}

	if !g.paused || advanceOnce {
		g.simulate(now, dt)
	} else {
		g.timer.Skip(now)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) simulate(now time.Time, dt float64) {
	g.maybeSpawn()

	ctx := TickContext{DT: dt, Multiplier: g.Multiplier(), Bounds: g.bounds}
	for _, e := range g.entities {
		e.Advance(ctx)
	}

	for n := g.timer.Poll(now); n > 0; n-- {
		g.bonus.Attrition(now)
		if g.powerup.Expired(now) {
			g.endPowerup(now, event.EndExpired)
		}
	}

	g.updateLevel()
	g.sweep()
}

func (g *Game) maybeSpawn() {
	if !g.spawner.ShouldSpawn(len(g.bubbles)) {
		return
	}
	b := g.spawner.Spawn(g.bounds)
	g.addBubble(b)
	g.bus.Publish(event.Spawned{Bounds: b.Rect()})
}

// click scores every live bubble under pos. A bubble still fading out
// counts as a hit again but pops, and publishes Popped, only once.
func (g *Game) click(pos core.Point, now time.Time) {
	var last *Bubble
	for _, b := range g.bubbles {
		if !b.Contains(pos) {
			continue
		}
		value := b.Score()
		g.score += value
		if b.Hit() {
			g.bus.Publish(event.Popped{Pos: pos, Score: value, At: now})
		}
		if g.bonus.Add() {
			g.triggerPowerup(now)
		}
		last = b
	}

	if last == nil {
		g.score--
		g.misses++
		g.endPowerup(now, event.EndMiss)
		g.bus.Publish(event.Missed{Pos: pos, Score: g.score})
		return
	}

	g.hits++
	m, ok := g.history.Add(ClickRecord{
		Pos:       pos,
		Side:      last.Side(),
		Speed:     last.Speed(),
		Direction: last.Direction(),
		At:        now,
	})
	if ok {
		g.bus.Publish(m)
	}
	g.bonus.MarkHit(now)
}

func (g *Game) triggerPowerup(now time.Time) {
	if g.powerup.Trigger(now) {
		g.bus.Publish(event.PowerupStarted{At: now, Multiplier: g.Multiplier()})
		return
	}
	g.bus.Publish(event.PowerupExtended{At: now})
}

// endPowerup stops a running powerup and clears the bonus. It does nothing
// when the powerup is inactive.
func (g *Game) endPowerup(now time.Time, reason event.EndReason) {
	if !g.powerup.End() {
		return
	}
	g.bonus.Reset()
	g.bus.Publish(event.PowerupEnded{At: now, Reason: reason, Multiplier: g.Multiplier()})
}

func (g *Game) updateLevel() {
	level, up := g.level.Update(g.score)
	if !up {
		return
	}
	g.bus.Publish(event.LevelUp{Level: level, Multiplier: g.Multiplier()})
	g.addBanner(fmt.Sprintf("Level %d", level), g.cfg.Banner.LevelLifespan)
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	if g.paused {
		g.addBanner("Paused", g.cfg.Banner.PauseLifespan)
	}
	g.bus.Publish(event.PauseToggled{Paused: g.paused})
}

func (g *Game) quit() {
	if g.done {
		return
	}
	g.done = true
	g.bus.Publish(event.Quit{})
}

// ToggleFullscreen flips the requested display mode. Frontends apply it by
// subscribing to FullscreenToggled and reporting the new size via Resize.
func (g *Game) ToggleFullscreen() {
	g.fullscreen = !g.fullscreen
	g.bus.Publish(event.FullscreenToggled{Fullscreen: g.fullscreen})
}

// Resize updates the visible play area. Bubbles left outside it are
// removed on their next advance.
func (g *Game) Resize(bounds core.Rect) {
	g.bounds = bounds
}

func (g *Game) addBubble(b *Bubble) {
	g.bubbles = append(g.bubbles, b)
	g.entities = append(g.entities, b)
}

func (g *Game) addBanner(text string, lifespan float64) {
	g.entities = append(g.entities, NewBanner(text, g.bounds.Center(), lifespan))
}

// sweep removes entities that asked to be destroyed this frame.
func (g *Game) sweep() {
	live := g.entities[:0]
	for _, e := range g.entities {
		if !e.Destroyed() {
			live = append(live, e)
		}
	}
	clear(g.entities[len(live):])
	g.entities = live

	bubbles := g.bubbles[:0]
	for _, b := range g.bubbles {
		if !b.Destroyed() {
			bubbles = append(bubbles, b)
		}
	}
	clear(g.bubbles[len(bubbles):])
	g.bubbles = bubbles
}

// Multiplier is the speed multiplier shared by all bubbles. It is always
// derived from the level and the powerup state.
func (g *Game) Multiplier() float64 {
	m := float64(g.level.Current())
	if g.powerup.Active() {
		m *= g.cfg.Powerup.SlowFactor
	}
	return m
}

// Score returns the cumulative score.
func (g *Game) Score() int { return g.score }

// Level returns the displayed level.
func (g *Game) Level() int { return g.level.Current() }

// Bonus returns the combo bonus.
func (g *Game) Bonus() float64 { return g.bonus.Value() }

// PowerupActive reports whether the slowdown is running.
func (g *Game) PowerupActive() bool { return g.powerup.Active() }

// PowerupRemaining returns how long the slowdown has left.
func (g *Game) PowerupRemaining() time.Duration {
	return g.powerup.Remaining(g.clock.Now())
}

// Paused reports whether the simulation is frozen.
func (g *Game) Paused() bool { return g.paused }

// Done reports whether quit was requested.
func (g *Game) Done() bool { return g.done }

// Bounds returns the visible play area.
func (g *Game) Bounds() core.Rect { return g.bounds }

// Bubbles returns the live bubbles, including ones still fading.
func (g *Game) Bubbles() []*Bubble { return g.bubbles }

// Sprites returns a drawable description of every entity in draw order.
func (g *Game) Sprites() []Sprite {
	sprites := make([]Sprite, 0, len(g.entities))
	for _, e := range g.entities {
		sprites = append(sprites, e.Sprite())
	}
	return sprites
}

// State returns a snapshot of the game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:         g.score,
		Level:         g.level.Current(),
		Bonus:         g.bonus.Value(),
		Multiplier:    g.Multiplier(),
		PowerupActive: g.powerup.Active(),
		Paused:        g.paused,
		Fullscreen:    g.fullscreen,
		Done:          g.done,
		Hits:          g.hits,
		Misses:        g.misses,
		Bubbles:       len(g.bubbles),
		Elapsed:       g.clock.Now().Sub(g.start),
	}
}
