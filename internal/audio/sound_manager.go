package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager mixes cues into a single speaker stream.
// Until Initialize succeeds every Play is a no-op.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		volume: &beep.Ctrl{Streamer: mixer},
	}
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// 100ms buffer keeps latency low enough for click feedback
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// Play queues a cue on the mixer.
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := cueStreamer(sampleRate, c)
	if s == nil {
		return
	}
	// The mixer runs on the speaker goroutine.
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// SetPaused silences output without dropping queued cues.
func (sm *SoundManager) SetPaused(paused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.volume.Paused = paused
	speaker.Unlock()
}

// Active returns the number of cues still playing.
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return sm.mixer.Len()
	}
	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no way to close the speaker; clearing the mixer leaves it idle.
	sm.initialized = false
}
