package core

// Key identifies a keyboard key the game reacts to on release.
type Key int

const (
	KeyNone Key = iota
	KeySpace
	KeyEscape
	KeyF11
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeySpace:
		return "Space"
	case KeyEscape:
		return "Escape"
	case KeyF11:
		return "F11"
	default:
		return "None"
	}
}

// InputEvent is a discrete event produced by a frontend during one frame.
// The concrete types are MouseRelease, KeyRelease and Quit.
type InputEvent interface {
	isInputEvent()
}

// MouseRelease reports a left-button release at a play-area position.
type MouseRelease struct {
	Pos Point
}

// KeyRelease reports a key release.
type KeyRelease struct {
	Key Key
}

// Quit reports that the window or session was asked to close.
type Quit struct{}

func (MouseRelease) isInputEvent() {}
func (KeyRelease) isInputEvent()   {}
func (Quit) isInputEvent()         {}

// InputFrame holds the events collected since the previous simulation step,
// in the order they occurred.
type InputFrame struct {
	Events []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends an event to the frame.
func (f *InputFrame) Push(e InputEvent) {
	f.Events = append(f.Events, e)
}

// Click is shorthand for pushing a MouseRelease at (x, y).
func (f *InputFrame) Click(x, y int) {
	f.Push(MouseRelease{Pos: Pt(x, y)})
}

// Release is shorthand for pushing a KeyRelease.
func (f *InputFrame) Release(k Key) {
	f.Push(KeyRelease{Key: k})
}

// Len returns the number of queued events.
func (f InputFrame) Len() int {
	return len(f.Events)
}

// Clear drops all events, keeping the backing storage for the next frame.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}
