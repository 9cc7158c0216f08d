package bubblepop

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/core"
)

// Spawner decides when a new bubble appears and rolls its attributes.
// Spawning gets rarer as the population grows.
type Spawner struct {
	rng     *rand.Rand
	bubbles config.BubblesConfig
	rate    float64
	rules   BubbleRules
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, bubbles config.BubblesConfig, rate float64) *Spawner {
	return &Spawner{
		rng:     rng,
		bubbles: bubbles,
		rate:    rate,
		rules: BubbleRules{
			MaxSpeed: bubbles.MaxSpeed,
			FadeRate: bubbles.FadeRate,
		},
	}
}

// Probability returns the chance of a spawn at the given population.
func (s *Spawner) Probability(count int) float64 {
	if count <= 0 {
		return 1
	}
	return math.Min(1, s.rate/float64(count))
}

// ShouldSpawn rolls the spawn check. An empty play area always spawns.
func (s *Spawner) ShouldSpawn(count int) bool {
	if count <= 0 {
		return true
	}
	return s.rng.Float64() < s.Probability(count)
}

// Spawn creates a bubble with uniform size, position, speed and direction.
func (s *Spawner) Spawn(bounds core.Rect) *Bubble {
	spec := BubbleSpec{
		Side:      s.bubbles.MinSize + s.rng.Intn(s.bubbles.MaxSize-s.bubbles.MinSize),
		X:         bounds.X + s.intn(bounds.W),
		Y:         bounds.Y + s.intn(bounds.H),
		Speed:     s.bubbles.MinSpeed + s.rng.Intn(s.bubbles.MaxSpeed-s.bubbles.MinSpeed),
		Direction: s.rng.Float64() * 2 * math.Pi,
		Color:     core.BubblePalette[s.rng.Intn(len(core.BubblePalette))],
	}
	return NewBubble(spec, s.rules)
}

// intn tolerates a collapsed play area, which a terminal can briefly report
// while resizing.
func (s *Spawner) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}
