// Package event implements the typed publish/subscribe channel the game uses
// to notify collaborators (audio, telemetry, logging) about state transitions.
package event

// Type identifies the kind of an event.
type Type int

const (
	TypePopped Type = iota
	TypeSpawned
	TypeMissed
	TypePowerupStarted
	TypePowerupExtended
	TypePowerupEnded
	TypeLevelUp
	TypeMovement
	TypePauseToggled
	TypeFullscreenToggled
	TypeQuit

	typeCount
)

var typeNames = [typeCount]string{
	TypePopped:            "popped",
	TypeSpawned:           "spawned",
	TypeMissed:            "missed",
	TypePowerupStarted:    "powerup_started",
	TypePowerupExtended:   "powerup_extended",
	TypePowerupEnded:      "powerup_ended",
	TypeLevelUp:           "level_up",
	TypeMovement:          "movement",
	TypePauseToggled:      "pause_toggled",
	TypeFullscreenToggled: "fullscreen_toggled",
	TypeQuit:              "quit",
}

// String returns the snake_case name of the event type.
func (t Type) String() string {
	if t < 0 || t >= typeCount {
		return "unknown"
	}
	return typeNames[t]
}

// Event is implemented by every payload published on a Bus.
type Event interface {
	Type() Type
}
