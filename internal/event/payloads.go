package event

import (
	"time"

	"github.com/vovakirdan/bubblepop/internal/core"
)

// Popped is published when a click pops a live bubble.
type Popped struct {
	Pos   core.Point // Click position
	Score int        // Value of the popped bubble
	At    time.Time
}

// Spawned is published when the spawner adds a bubble during play.
// Bubbles in the initial population are spawned silently.
type Spawned struct {
	Bounds core.Rect
}

// Missed is published when a click pops nothing.
type Missed struct {
	Pos   core.Point
	Score int // Cumulative score after the penalty
}

// PowerupStarted is published when the bonus crosses the threshold while
// the powerup is inactive.
type PowerupStarted struct {
	At         time.Time
	Multiplier float64
}

// PowerupExtended is published when the bonus crosses the threshold again
// while the powerup is running.
type PowerupExtended struct {
	At time.Time
}

// EndReason tells why a powerup stopped.
type EndReason int

const (
	EndExpired EndReason = iota
	EndMiss
)

func (r EndReason) String() string {
	if r == EndMiss {
		return "miss"
	}
	return "expired"
}

// PowerupEnded is published when the powerup expires or a miss cancels it.
type PowerupEnded struct {
	At         time.Time
	Reason     EndReason
	Multiplier float64
}

// LevelUp is published when the displayed level increases.
type LevelUp struct {
	Level      int
	Multiplier float64
}

// Movement summarizes the gap between two consecutive successful clicks.
type Movement struct {
	From      core.Point
	To        core.Point
	Side      int     // Side length of the most recently hit bubble
	Speed     int     // Base speed of the most recently hit bubble
	Direction float64 // Direction of the most recently hit bubble, radians
	Elapsed   float64 // Seconds between the two clicks
}

// Distance returns the Euclidean distance between the two click positions.
func (m Movement) Distance() float64 {
	return m.From.Dist(m.To)
}

// PauseToggled is published when Space flips the pause flag.
type PauseToggled struct {
	Paused bool
}

// FullscreenToggled is published when the display mode is flipped.
// Frontends subscribe to it to apply the change.
type FullscreenToggled struct {
	Fullscreen bool
}

// Quit is published once when the game is asked to stop.
type Quit struct{}

func (Popped) Type() Type            { return TypePopped }
func (Spawned) Type() Type           { return TypeSpawned }
func (Missed) Type() Type            { return TypeMissed }
func (PowerupStarted) Type() Type    { return TypePowerupStarted }
func (PowerupExtended) Type() Type   { return TypePowerupExtended }
func (PowerupEnded) Type() Type      { return TypePowerupEnded }
func (LevelUp) Type() Type           { return TypeLevelUp }
func (Movement) Type() Type          { return TypeMovement }
func (PauseToggled) Type() Type      { return TypePauseToggled }
func (FullscreenToggled) Type() Type { return TypeFullscreenToggled }
func (Quit) Type() Type              { return TypeQuit }
