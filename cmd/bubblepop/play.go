package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bubblepop/internal/audio"
	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/core"
	"github.com/vovakirdan/bubblepop/internal/platform/tui"
	"github.com/vovakirdan/bubblepop/internal/session"
	"github.com/vovakirdan/bubblepop/internal/storage"
	"github.com/vovakirdan/bubblepop/internal/telemetry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal. The terminal needs mouse support.

Controls:
  Click      - Pop a bubble (missing costs a point)
  Space      - Pause / resume
  F11/F      - Toggle fullscreen
  Esc        - End the game
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Larger bubbles, more of them
  normal - The configured sizes
  hard   - Smaller bubbles, fewer of them

Examples:
  bubblepop play
  bubblepop play --difficulty hard
  bubblepop play --telemetry csv --telemetry-path ./runs

The stdout telemetry sink is not available here because the game draws on
stdout; use log, csv or sqlite.
  bubblepop play --config ./my-bubblepop.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	// Check before the terminal switches to the alternate screen.
	if err := telemetry.Validate(flagTelemetry, true); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'bubblepop sinks' to see available sinks.")
		os.Exit(1)
	}

	cfg, err := config.LoadPreset(flagConfig, flagDifficulty)
	if err != nil {
		fail("%v", err)
	}

	logPath := flagLogFile
	if logPath == "" {
		logPath = session.DefaultLogFile
	}
	logger, closeLog, err := session.NewLogger(logPath, flagLogLevel, "bubblepop")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Continue without storage; the game still works.
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

	cellW, cellH := cfg.Terminal.CellWidth, cfg.Terminal.CellHeight
	sess, err := session.New(session.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width * cellW,
			ScreenH:  max(1, height-1) * cellH,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Player:  "local",
		Store:   store,
		Sink:    flagTelemetry,
		SinkDir: flagTelemetryPath,
		Audio:   player,
		Logger:  logger,
	})
	if err != nil {
		fail("%v", err)
	}

	var once sync.Once
	finish := func() {
		once.Do(func() {
			if err := sess.Finish(); err != nil {
				logger.Warn("cannot save session", "error", err)
			}
		})
	}

	runErr := tui.Run(sess.Game, width, height, tui.Options{
		TickRate: flagFPS,
		CellW:    cellW,
		CellH:    cellH,
		OnDone:   finish,
	})
	finish()

	if runErr != nil {
		fail("running game: %v", runErr)
	}

	sum := sess.Summary()
	fmt.Printf("Final score: %d (level %d, %d hits, %d misses)\n", sum.Score, sum.Level, sum.Hits, sum.Misses)
}
