package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SweepGenerator is a finite sine tone gliding from one frequency to another
// with an exponential decay envelope.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64 // Hz
	decay    float64 // Envelope rate per second
	gain     float64
	total    int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a tone lasting d.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration, decay, gain float64) *SweepGenerator {
	return &SweepGenerator{
		sr:    sr,
		from:  from,
		to:    to,
		decay: decay,
		gain:  gain,
		total: sr.N(d),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		progress := float64(g.pos) / float64(g.total)
		t := float64(g.pos) / float64(g.sr)

		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// Short linear attack avoids a click at the start
		attack := math.Min(t/0.005, 1.0)
		sample := g.gain * attack * math.Exp(-t*g.decay) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// BubbleGenerator is a warbling tone, like air escaping through water.
type BubbleGenerator struct {
	sr    beep.SampleRate
	total int
	pos   int
	phase float64
}

// NewBubbleGenerator creates a warble lasting d.
func NewBubbleGenerator(sr beep.SampleRate, d time.Duration) *BubbleGenerator {
	return &BubbleGenerator{sr: sr, total: sr.N(d)}
}

func (g *BubbleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)

		// Rising pitch wobbling at 30 Hz
		freq := 300 + 500*t/0.15 + 80*math.Sin(2*math.Pi*30*t)
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		envelope := math.Sin(math.Pi * float64(g.pos) / float64(g.total))
		sample := 0.12 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BubbleGenerator) Err() error {
	return nil
}

// cueStreamer builds a fresh finite streamer for a cue.
func cueStreamer(sr beep.SampleRate, c Cue) beep.Streamer {
	switch c {
	case CuePop:
		return NewSweepGenerator(sr, 900, 1400, 80*time.Millisecond, 30, 0.3)
	case CueSpawn:
		return NewBubbleGenerator(sr, 150*time.Millisecond)
	case CueThud:
		return NewSweepGenerator(sr, 110, 50, 200*time.Millisecond, 15, 0.5)
	case CueSlow:
		return NewSweepGenerator(sr, 600, 120, 700*time.Millisecond, 2, 0.25)
	case CueSpeed:
		return NewSweepGenerator(sr, 120, 600, 700*time.Millisecond, 2, 0.25)
	case CueLevelUp:
		note := 120 * time.Millisecond
		return beep.Seq(
			NewSweepGenerator(sr, 523.25, 523.25, note, 6, 0.25),
			NewSweepGenerator(sr, 659.25, 659.25, note, 6, 0.25),
			NewSweepGenerator(sr, 783.99, 783.99, 2*note, 4, 0.25),
		)
	default:
		return nil
	}
}
