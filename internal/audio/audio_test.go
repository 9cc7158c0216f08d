package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/bubblepop/internal/event"
)

var allCues = []Cue{CuePop, CueSpawn, CueThud, CueSlow, CueSpeed, CueLevelUp}

// TestSoundManagerGracefulDegradation verifies playback is safe without a device
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	for _, c := range allCues {
		sm.Play(c)
	}
	sm.SetPaused(true)
	if n := sm.Active(); n != 0 {
		t.Errorf("Active() = %d without initialization, expected 0", n)
	}
	sm.Cleanup()
}

// TestSoundManagerInitialization tolerates machines without audio devices
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}
	sm.Play(CuePop)
	sm.Cleanup()
}

func TestCueStreamersAreFinite(t *testing.T) {
	for _, c := range allCues {
		t.Run(c.String(), func(t *testing.T) {
			s := cueStreamer(sampleRate, c)
			if s == nil {
				t.Fatal("cueStreamer() = nil")
			}
			buf := make([][2]float64, 512)
			total := 0
			for i := 0; ; i++ {
				n, ok := s.Stream(buf)
				total += n
				if !ok {
					break
				}
				if i > 1000 {
					t.Fatal("streamer did not finish within ~11s of audio")
				}
				for _, smp := range buf[:n] {
					if smp[0] > 1 || smp[0] < -1 {
						t.Fatalf("sample %v out of range", smp[0])
					}
				}
			}
			if total == 0 {
				t.Error("streamer produced no samples")
			}
		})
	}
}

func TestSweepGeneratorLength(t *testing.T) {
	g := NewSweepGenerator(beep.SampleRate(1000), 100, 200, 250*time.Millisecond, 0, 0.5)
	buf := make([][2]float64, 100)
	total := 0
	for {
		n, ok := g.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != 250 {
		t.Errorf("streamed %d samples, expected 250", total)
	}
}

type recordingPlayer struct {
	cues []Cue
}

func (r *recordingPlayer) Play(c Cue) { r.cues = append(r.cues, c) }

func TestAttachMapsEvents(t *testing.T) {
	bus := event.NewBus()
	p := &recordingPlayer{}
	Attach(bus, p)

	bus.Publish(event.Popped{})
	bus.Publish(event.Spawned{})
	bus.Publish(event.Missed{})
	bus.Publish(event.PowerupStarted{})
	bus.Publish(event.PowerupExtended{})
	bus.Publish(event.PowerupEnded{})
	bus.Publish(event.LevelUp{Level: 2})
	bus.Publish(event.Movement{})

	expected := []Cue{CuePop, CueSpawn, CueThud, CueSlow, CueSpeed, CueLevelUp}
	if len(p.cues) != len(expected) {
		t.Fatalf("played %v, expected %v", p.cues, expected)
	}
	for i := range expected {
		if p.cues[i] != expected[i] {
			t.Errorf("cue %d = %v, expected %v", i, p.cues[i], expected[i])
		}
	}
}

func TestCueString(t *testing.T) {
	if CueLevelUp.String() != "levelup" || Cue(42).String() != "unknown" {
		t.Errorf("Cue strings = %q/%q", CueLevelUp, Cue(42))
	}
}
