package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bubblepop/internal/core"
)

// GameKeyMap defines the key bindings while playing.
type GameKeyMap struct {
	Pause      key.Binding
	Fullscreen key.Binding
	Escape     key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Fullscreen, k.Escape, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f11", "f"),
			key.WithHelp("f", "fullscreen"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "end game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// mapKey translates a key message to the input event the game understands.
// Unbound keys return nil.
func (k GameKeyMap) mapKey(msg tea.KeyMsg) core.InputEvent {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Quit{}
	case key.Matches(msg, k.Escape):
		return core.KeyRelease{Key: core.KeyEscape}
	case key.Matches(msg, k.Pause):
		return core.KeyRelease{Key: core.KeySpace}
	case key.Matches(msg, k.Fullscreen):
		return core.KeyRelease{Key: core.KeyF11}
	}
	return nil
}

// mapMouse returns a click at the pixel center of the released cell.
// Terminals in cell-motion mode often report releases without a button,
// so both left and "none" count.
func mapMouse(msg tea.MouseMsg, cellW, cellH int) (core.InputEvent, bool) {
	if msg.Action != tea.MouseActionRelease {
		return nil, false
	}
	if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonNone {
		return nil, false
	}
	return core.MouseRelease{Pos: core.Pt(msg.X*cellW+cellW/2, msg.Y*cellH+cellH/2)}, true
}
