package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Presets only change the bubble size range and the initial population;
// scoring, level and powerup rules are the same for every preset.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal or hard): %w", s, ErrInvalidConfig)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Easy bubbles are larger and more numerous; hard bubbles are smaller and
// scarcer. Normal leaves the loaded values alone.
func ApplyPreset(cfg *BubblePopConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Bubbles.MinSize = 40
		cfg.Bubbles.MaxSize = 120
		cfg.Bubbles.InitialCount = 60
	case DifficultyHard:
		cfg.Bubbles.MinSize = 15
		cfg.Bubbles.MaxSize = 60
		cfg.Bubbles.InitialCount = 35
	}
}

// LoadPreset loads the config from the search path, applies the named
// difficulty and validates the result.
func LoadPreset(customPath, difficulty string) (BubblePopConfig, error) {
	preset, err := ParsePreset(difficulty)
	if err != nil {
		return BubblePopConfig{}, err
	}
	cfg, err := Load(customPath)
	if err != nil {
		return BubblePopConfig{}, err
	}
	ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return BubblePopConfig{}, err
	}
	return cfg, nil
}
