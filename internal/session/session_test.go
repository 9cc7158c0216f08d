package session

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubblepop/internal/audio"
	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/core"
	"github.com/vovakirdan/bubblepop/internal/storage"
	"github.com/vovakirdan/bubblepop/internal/telemetry"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type recordingPlayer struct {
	cues   []audio.Cue
	paused []bool
}

func (p *recordingPlayer) Play(c audio.Cue)      { p.cues = append(p.cues, c) }
func (p *recordingPlayer) SetPaused(paused bool) { p.paused = append(p.paused, paused) }

func testOptions(t *testing.T) (Options, *fakeClock) {
	t.Helper()
	cfg := config.DefaultBubblePopConfig()
	cfg.Bubbles.InitialCount = 0

	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	return Options{
		Config:  cfg,
		Runtime: core.RuntimeConfig{ScreenW: 1024, ScreenH: 681, TickRate: 30, Seed: 7},
		Player:  "tester",
		Clock:   clock,
	}, clock
}

func press(k core.Key) core.InputFrame {
	f := core.NewInputFrame()
	f.Release(k)
	return f
}

func TestSessionFinishSavesSummary(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	opts, clock := testOptions(t)
	opts.Store = store

	s, err := New(opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if !strings.HasPrefix(s.Key, "tester-") {
		t.Errorf("Key = %q, expected tester- prefix", s.Key)
	}

	// Nothing is on screen yet, so the click misses.
	in := core.NewInputFrame()
	in.Click(10, 10)
	s.Game.Step(in, 0.03)
	clock.now = clock.now.Add(90 * time.Second)

	if err := s.Finish(); err != nil {
		t.Fatalf("Finish() failed: %v", err)
	}
	if err := s.Finish(); err != nil {
		t.Fatalf("second Finish() failed: %v", err)
	}

	top, _ := store.TopSessions(10)
	if len(top) != 1 {
		t.Fatalf("Expected exactly one saved session, got %d", len(top))
	}
	got := top[0]
	if got.Score != -1 || got.Misses != 1 || got.Hits != 0 || got.Level != 1 {
		t.Errorf("saved session = %+v, expected score -1 with one miss at level 1", got)
	}
	if got.Duration != 90*time.Second {
		t.Errorf("Duration = %v, expected 1m30s", got.Duration)
	}
	if got.Player != "tester" || got.Key != s.Key {
		t.Errorf("saved player/key = %q/%q", got.Player, got.Key)
	}
}

func TestSessionWiresAudio(t *testing.T) {
	opts, _ := testOptions(t)
	player := &recordingPlayer{}
	opts.Audio = player

	s, err := New(opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer s.Finish()

	in := core.NewInputFrame()
	in.Click(10, 10)
	s.Game.Step(in, 0.03)

	if len(player.cues) == 0 || player.cues[0] != audio.CueThud {
		t.Errorf("cues = %v, expected a thud first", player.cues)
	}

	s.Game.Step(press(core.KeySpace), 0.03)
	s.Game.Step(press(core.KeySpace), 0.03)
	if len(player.paused) != 2 || !player.paused[0] || player.paused[1] {
		t.Errorf("SetPaused calls = %v, expected [true false]", player.paused)
	}
}

func TestSessionUnknownSink(t *testing.T) {
	opts, _ := testOptions(t)
	opts.Sink = "carrier-pigeon"

	_, err := New(opts)
	if !errors.Is(err, telemetry.ErrUnknownSink) {
		t.Errorf("New() error = %v, expected ErrUnknownSink", err)
	}
}

func TestSessionInvalidConfig(t *testing.T) {
	opts, _ := testOptions(t)
	opts.Config.Bubbles.MinSize = 100
	opts.Config.Bubbles.MaxSize = 20

	_, err := New(opts)
	if !errors.Is(err, config.ErrInvalidSizeRange) {
		t.Errorf("New() error = %v, expected ErrInvalidSizeRange", err)
	}
}

func TestSessionLogsLifecycle(t *testing.T) {
	opts, _ := testOptions(t)
	var buf bytes.Buffer
	opts.Logger = log.New(&buf)

	s, err := New(opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	s.Finish()

	out := buf.String()
	if !strings.Contains(out, "session started") || !strings.Contains(out, "session ended") {
		t.Errorf("log output = %q, expected start and end lines", out)
	}
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bubblepop.log")

	logger, closeFn, err := NewLogger(path, "debug", "test")
	if err != nil {
		t.Fatalf("NewLogger() failed: %v", err)
	}
	logger.Debug("hello")
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, expected the debug line", data)
	}

	if _, _, err := NewLogger("-", "loud", ""); err == nil {
		t.Error("NewLogger() with an unknown level should fail")
	}
}
