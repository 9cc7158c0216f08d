package audio

import "github.com/vovakirdan/bubblepop/internal/event"

// cueFor maps game events to the cue they sound.
var cueFor = map[event.Type]Cue{
	event.TypePopped:         CuePop,
	event.TypeSpawned:        CueSpawn,
	event.TypeMissed:         CueThud,
	event.TypePowerupStarted: CueSlow,
	event.TypePowerupEnded:   CueSpeed,
	event.TypeLevelUp:        CueLevelUp,
}

// Attach subscribes p to the events that have a cue. Extending a running
// powerup is silent.
func Attach(sub event.Subscriber, p Player) {
	for t, c := range cueFor {
		sub.Subscribe(t, func(event.Event) { p.Play(c) })
	}
}
