package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Click(10, 20)
	f.Release(KeySpace)
	f.Push(Quit{})

	if f.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", f.Len())
	}
	if e, ok := f.Events[0].(MouseRelease); !ok || e.Pos != Pt(10, 20) {
		t.Errorf("Events[0] = %#v, expected MouseRelease at (10, 20)", f.Events[0])
	}
	if e, ok := f.Events[1].(KeyRelease); !ok || e.Key != KeySpace {
		t.Errorf("Events[1] = %#v, expected KeyRelease(Space)", f.Events[1])
	}
	if _, ok := f.Events[2].(Quit); !ok {
		t.Errorf("Events[2] = %#v, expected Quit", f.Events[2])
	}

	f.Clear()
	if f.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", f.Len())
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key      Key
		expected string
	}{
		{KeySpace, "Space"},
		{KeyEscape, "Escape"},
		{KeyF11, "F11"},
		{KeyNone, "None"},
	}
	for _, tc := range tests {
		if got := tc.key.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}
