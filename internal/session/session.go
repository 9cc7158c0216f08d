// Package session wires one game run to its collaborators: audio cues,
// movement telemetry, debug logging and the scoreboard summary saved on
// quit. Every frontend creates its games through it.
package session

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubblepop/internal/audio"
	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/core"
	"github.com/vovakirdan/bubblepop/internal/event"
	"github.com/vovakirdan/bubblepop/internal/games/bubblepop"
	"github.com/vovakirdan/bubblepop/internal/storage"
	"github.com/vovakirdan/bubblepop/internal/telemetry"
)

// Options describes one run.
type Options struct {
	Config  config.BubblePopConfig
	Runtime core.RuntimeConfig

	// Player names the session in the scoreboard ("local", "ssh:<user>").
	Player string

	// Store receives the summary on Finish. Nil disables the scoreboard.
	Store *storage.Store

	// Sink names a registered telemetry sink. Empty means "none".
	Sink    string
	SinkDir string

	// Audio plays cues. Nil means silent.
	Audio audio.Player

	Logger *log.Logger
	Clock  core.Clock
}

// Session is a running game and the collaborators attached to it.
type Session struct {
	Key  string
	Game *bubblepop.Game

	player  string
	store   *storage.Store
	sink    telemetry.Sink
	logger  *log.Logger
	started time.Time
	clock   core.Clock
	saved   bool
}

// pauser is implemented by players that can silence queued cues.
type pauser interface {
	SetPaused(paused bool)
}

// New creates the game and attaches audio, telemetry and logging to its
// event bus. Audio handlers are subscribed before telemetry, so a movement
// and its pop sound keep their order for any listener.
func New(opts Options) (*Session, error) {
	clock := opts.Clock
	if clock == nil {
		clock = core.SystemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Player
	if player == "" {
		player = "local"
	}

	game, err := bubblepop.New(opts.Config, opts.Runtime, bubblepop.WithClock(clock))
	if err != nil {
		return nil, err
	}

	started := clock.Now()
	s := &Session{
		Key:     fmt.Sprintf("%s-%d", player, started.UnixNano()),
		Game:    game,
		player:  player,
		store:   opts.Store,
		logger:  logger,
		started: started,
		clock:   clock,
	}

	var sound audio.Player = audio.Silent{}
	if opts.Audio != nil {
		sound = opts.Audio
	}
	audio.Attach(game, sound)
	if p, ok := sound.(pauser); ok {
		event.On(game, func(e event.PauseToggled) { p.SetPaused(e.Paused) })
	}

	sinkName := opts.Sink
	if sinkName == "" {
		sinkName = "none"
	}
	sink, err := telemetry.Create(sinkName, telemetry.Options{
		Dir:        opts.SinkDir,
		SessionKey: s.Key,
		Store:      opts.Store,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s.sink = sink
	telemetry.Attach(game, sink, logger)

	s.attachLogging()
	logger.Info("session started", "key", s.Key, "sink", sinkName)
	return s, nil
}

func (s *Session) attachLogging() {
	event.On(s.Game, func(e event.LevelUp) {
		s.logger.Debug("level up", "level", e.Level, "multiplier", e.Multiplier)
	})
	event.On(s.Game, func(e event.PowerupStarted) {
		s.logger.Debug("powerup started", "multiplier", e.Multiplier)
	})
	event.On(s.Game, func(e event.PowerupEnded) {
		s.logger.Debug("powerup ended", "reason", e.Reason, "multiplier", e.Multiplier)
	})
}

// Summary returns the scoreboard record for the run so far.
func (s *Session) Summary() storage.Session {
	st := s.Game.State()
	return storage.Session{
		Key:      s.Key,
		Player:   s.player,
		Score:    st.Score,
		Level:    st.Level,
		Hits:     st.Hits,
		Misses:   st.Misses,
		Duration: s.clock.Now().Sub(s.started),
	}
}

// Finish saves the summary once and closes the sink. It is safe to call
// more than once.
func (s *Session) Finish() error {
	if s.saved {
		return nil
	}
	s.saved = true

	sum := s.Summary()
	var errs []error
	if s.store != nil {
		if _, err := s.store.SaveSession(sum); err != nil {
			errs = append(errs, err)
		}
	}
	if err := s.sink.Close(); err != nil {
		errs = append(errs, fmt.Errorf("session: cannot close sink: %w", err))
	}

	s.logger.Info("session ended",
		"key", s.Key,
		"score", sum.Score,
		"level", sum.Level,
		"hits", sum.Hits,
		"misses", sum.Misses,
		"duration", sum.Duration.Round(time.Second),
	)
	return errors.Join(errs...)
}
