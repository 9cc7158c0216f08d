// Package config provides YAML-based game configuration loading,
// validation and difficulty presets for bubble pop.
package config

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidSizeRange is returned when the minimum bubble size is not
	// strictly below the maximum.
	ErrInvalidSizeRange = errors.New("invalid bubble size range")
	// ErrInvalidConfig is returned for any other out-of-range value.
	ErrInvalidConfig = errors.New("invalid config")
)

// BubblePopConfig contains all configuration for the bubble pop game.
type BubblePopConfig struct {
	Bubbles  BubblesConfig  `yaml:"bubbles"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	Bonus    BonusConfig    `yaml:"bonus"`
	Powerup  PowerupConfig  `yaml:"powerup"`
	Level    LevelConfig    `yaml:"level"`
	Banner   BannerConfig   `yaml:"banner"`
	Window   WindowConfig   `yaml:"window"`
	Terminal TerminalConfig `yaml:"terminal"`
	History  HistoryConfig  `yaml:"history"`
}

// BubblesConfig defines bubble size and speed ranges.
// Sizes and speeds are in pixels and pixels per second.
type BubblesConfig struct {
	MinSize      int     `yaml:"min_size"`      // Inclusive
	MaxSize      int     `yaml:"max_size"`      // Exclusive
	MinSpeed     int     `yaml:"min_speed"`     // Inclusive
	MaxSpeed     int     `yaml:"max_speed"`     // Exclusive, also the score normalizer
	InitialCount int     `yaml:"initial_count"` // Bubbles spawned silently at start
	FadeRate     float64 `yaml:"fade_rate"`     // Full alpha units per second once popped
}

// SpawnConfig controls the population-scaled spawn probability.
type SpawnConfig struct {
	Rate float64 `yaml:"rate"` // Numerator of min(1, rate/count)
}

// BonusConfig defines the combo tracker.
type BonusConfig struct {
	Increment           float64 `yaml:"increment"`
	Decay               float64 `yaml:"decay"`
	Threshold           float64 `yaml:"threshold"`
	AttritionIntervalMs int     `yaml:"attrition_interval_ms"`
	HitGraceMs          int     `yaml:"hit_grace_ms"`
}

// PowerupConfig defines the slow-motion powerup.
type PowerupConfig struct {
	DurationMs int     `yaml:"duration_ms"`
	SlowFactor float64 `yaml:"slow_factor"`
}

// LevelConfig defines level_from_score = floor((score + offset)^exponent) - 1.
type LevelConfig struct {
	Exponent float64 `yaml:"exponent"`
	Offset   int     `yaml:"offset"`
	Initial  int     `yaml:"initial"`
}

// BannerConfig defines banner lifespans in seconds.
type BannerConfig struct {
	LevelLifespan float64 `yaml:"level_lifespan"`
	PauseLifespan float64 `yaml:"pause_lifespan"`
}

// WindowConfig defines the windowed play area.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
}

// TerminalConfig maps terminal cells to play-area pixels.
type TerminalConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// HistoryConfig defines the click history used for movement telemetry.
type HistoryConfig struct {
	Size int `yaml:"size"`
}

// AttritionInterval returns the bonus timer period.
func (c BonusConfig) AttritionInterval() time.Duration {
	return time.Duration(c.AttritionIntervalMs) * time.Millisecond
}

// HitGrace returns how long after a hit the bonus is left alone.
func (c BonusConfig) HitGrace() time.Duration {
	return time.Duration(c.HitGraceMs) * time.Millisecond
}

// Duration returns the powerup length.
func (c PowerupConfig) Duration() time.Duration {
	return time.Duration(c.DurationMs) * time.Millisecond
}

// Validate checks the configuration before the game loop starts.
func (c BubblePopConfig) Validate() error {
	b := c.Bubbles
	if b.MinSize >= b.MaxSize {
		return fmt.Errorf("config: bubbles.min_size %d >= bubbles.max_size %d: %w", b.MinSize, b.MaxSize, ErrInvalidSizeRange)
	}
	if b.MinSize <= 0 {
		return fmt.Errorf("config: bubbles.min_size must be positive, got %d: %w", b.MinSize, ErrInvalidSizeRange)
	}

	checks := []struct {
		ok   bool
		what string
	}{
		{b.MinSpeed > 0 && b.MinSpeed < b.MaxSpeed, "bubbles speed range must be positive and non-empty"},
		{b.InitialCount >= 0, "bubbles.initial_count must not be negative"},
		{b.FadeRate > 0, "bubbles.fade_rate must be positive"},
		{c.Spawn.Rate > 0, "spawn.rate must be positive"},
		{c.Bonus.Increment > 0, "bonus.increment must be positive"},
		{c.Bonus.Decay >= 0, "bonus.decay must not be negative"},
		{c.Bonus.Threshold > 0, "bonus.threshold must be positive"},
		{c.Bonus.AttritionIntervalMs > 0, "bonus.attrition_interval_ms must be positive"},
		{c.Bonus.HitGraceMs >= 0, "bonus.hit_grace_ms must not be negative"},
		{c.Powerup.DurationMs > 0, "powerup.duration_ms must be positive"},
		{c.Powerup.SlowFactor > 0 && c.Powerup.SlowFactor <= 1, "powerup.slow_factor must be in (0, 1]"},
		{c.Level.Exponent > 0, "level.exponent must be positive"},
		{c.Level.Initial >= 0, "level.initial must not be negative"},
		{c.Banner.LevelLifespan > 0 && c.Banner.PauseLifespan > 0, "banner lifespans must be positive"},
		{c.Window.Width > 0 && c.Window.Height > 0, "window size must be positive"},
		{c.Terminal.CellWidth > 0 && c.Terminal.CellHeight > 0, "terminal cell size must be positive"},
		{c.History.Size >= 2, "history.size must be at least 2"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("config: %s: %w", chk.what, ErrInvalidConfig)
		}
	}
	return nil
}
