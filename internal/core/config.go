package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// Sizes are in play-area pixels; terminal frontends scale cells to pixels.
type RuntimeConfig struct {
	ScreenW  int   // Play area width in pixels
	ScreenH  int   // Play area height in pixels
	TickRate int   // Target frames per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  1024,
		ScreenH:  681,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Bounds returns the play area as a rectangle anchored at the origin.
func (c RuntimeConfig) Bounds() Rect {
	return NewRect(0, 0, c.ScreenW, c.ScreenH)
}

// GameState is a snapshot of the orchestrator's state.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score         int     // Cumulative score, may go negative
	Level         int     // Displayed level, never decreases
	Bonus         float64 // Combo bonus, rounded to one decimal
	Multiplier    float64 // Speed multiplier applied to every bubble
	PowerupActive bool    // Whether the slow-motion powerup is running
	Paused        bool    // Whether the simulation is frozen
	Fullscreen    bool    // Requested display mode
	Done          bool    // Quit was requested
	Hits          int     // Clicks that popped at least one bubble
	Misses        int     // Clicks that popped nothing
	Bubbles       int     // Live bubbles, including fading ones
	Elapsed       time.Duration
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}

// Clock supplies the current time to time-based state machines.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}
