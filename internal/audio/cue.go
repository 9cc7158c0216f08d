// Package audio plays the game's sound cues. Cues are synthesized rather
// than loaded from files, and every call is fire-and-forget: a missing audio
// device silences the game instead of stopping it.
package audio

// Cue names a sound effect.
type Cue int

const (
	CuePop     Cue = iota // Bubble popped
	CueSpawn              // Bubble spawned during play
	CueThud               // Click hit nothing
	CueSlow               // Powerup started
	CueSpeed              // Powerup ended
	CueLevelUp            // Level increased
)

func (c Cue) String() string {
	switch c {
	case CuePop:
		return "pop"
	case CueSpawn:
		return "spawn"
	case CueThud:
		return "thud"
	case CueSlow:
		return "slow"
	case CueSpeed:
		return "speed"
	case CueLevelUp:
		return "levelup"
	default:
		return "unknown"
	}
}

// Player plays cues without blocking the caller.
type Player interface {
	Play(c Cue)
}

// Silent discards every cue. Used with --mute and for SSH sessions, which
// have no audio channel.
type Silent struct{}

// Play does nothing.
func (Silent) Play(Cue) {}
