package config

import (
	_ "embed"
)

//go:embed defaults/bubblepop.yaml
var defaultBubblePopYAML []byte

// DefaultBubblePopConfig returns the default bubble pop configuration.
func DefaultBubblePopConfig() BubblePopConfig {
	return BubblePopConfig{
		Bubbles: BubblesConfig{
			MinSize:      20,
			MaxSize:      100,
			MinSpeed:     5,
			MaxSpeed:     100,
			InitialCount: 50,
			FadeRate:     2.0,
		},
		Spawn: SpawnConfig{
			Rate: 0.2,
		},
		Bonus: BonusConfig{
			Increment:           0.1,
			Decay:               0.1,
			Threshold:           5.0,
			AttritionIntervalMs: 1000,
			HitGraceMs:          1000,
		},
		Powerup: PowerupConfig{
			DurationMs: 5000,
			SlowFactor: 0.5,
		},
		Level: LevelConfig{
			Exponent: 0.24,
			Offset:   20,
			Initial:  1,
		},
		Banner: BannerConfig{
			LevelLifespan: 1.0,
			PauseLifespan: 0.5,
		},
		Window: WindowConfig{
			Width:  1024,
			Height: 681,
		},
		Terminal: TerminalConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
		History: HistoryConfig{
			Size: 2,
		},
	}
}

// DefaultYAML returns the embedded default YAML, printed by `bubblepop config`
// as a starting point for a user config file.
func DefaultYAML() []byte {
	return defaultBubblePopYAML
}
