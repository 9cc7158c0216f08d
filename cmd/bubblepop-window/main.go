// bubblepop-window plays BubblePop in a desktop window.
//
// It lives in its own binary so the terminal build does not need a
// graphics toolchain.
package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubblepop/internal/audio"
	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/core"
	"github.com/vovakirdan/bubblepop/internal/platform/window"
	"github.com/vovakirdan/bubblepop/internal/session"
	"github.com/vovakirdan/bubblepop/internal/storage"
	"github.com/vovakirdan/bubblepop/internal/telemetry"
)

var (
	flagFPS           int
	flagSeed          int64
	flagDBPath        string
	flagConfig        string
	flagDifficulty    string
	flagTelemetry     string
	flagTelemetryPath string
	flagMute          bool
	flagFullscreen    bool
	flagLogLevel      string
	flagLogFile       string
)

var rootCmd = &cobra.Command{
	Use:   "bubblepop-window",
	Short: "Play BubblePop in a window",
	Long: `Open a 1024x681 window full of drifting bubbles.

Controls:
  Click   - Pop a bubble (missing costs a point)
  Space   - Pause / resume
  F11     - Toggle fullscreen
  Esc     - End the game`,
	Args: cobra.NoArgs,
	Run:  run,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.Flags().StringVar(&flagTelemetry, "telemetry", "none", "Movement telemetry sink: none, csv, log, sqlite, stdout")
	rootCmd.Flags().StringVar(&flagTelemetryPath, "telemetry-path", ".", "Directory for file-based telemetry sinks")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "-", "Log file (- for stderr)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) {
	if err := telemetry.Validate(flagTelemetry, false); err != nil {
		fail(err)
	}

	cfg, err := config.LoadPreset(flagConfig, flagDifficulty)
	if err != nil {
		fail(err)
	}
	if flagFullscreen {
		cfg.Window.Fullscreen = true
	}

	logger, closeLog, err := session.NewLogger(flagLogFile, flagLogLevel, "bubblepop-window")
	if err != nil {
		fail(err)
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var player audio.Player = audio.Silent{}
	if !flagMute {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio disabled", "error", err)
		} else {
			defer sm.Cleanup()
			player = sm
		}
	}

	sess, err := session.New(session.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  cfg.Window.Width,
			ScreenH:  cfg.Window.Height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Player:  "window",
		Store:   store,
		Sink:    flagTelemetry,
		SinkDir: flagTelemetryPath,
		Audio:   player,
		Logger:  logger,
	})
	if err != nil {
		fail(err)
	}

	var once sync.Once
	finish := func() {
		once.Do(func() {
			if err := sess.Finish(); err != nil {
				logger.Warn("cannot save session", "error", err)
			}
		})
	}

	w, err := window.New(sess.Game, window.Options{
		Title:      "BubblePop",
		TickRate:   flagFPS,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		Logger:     logger,
		OnDone:     finish,
	})
	if err != nil {
		fail(err)
	}

	if err := window.Run(w); err != nil {
		fail(err)
	}

	sum := sess.Summary()
	fmt.Printf("Final score: %d (level %d)\n", sum.Score, sum.Level)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
