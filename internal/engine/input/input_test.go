package input

import "testing"

type fakeDevice struct {
	polls  int
	held   map[Key]bool
	dx, dy float64
	closed bool
}

func (f *fakeDevice) PollEvents() { f.polls++ }
func (f *fakeDevice) ShouldClose() bool { return f.closed }
func (f *fakeDevice) KeyDown(k Key) bool { return f.held[k] }
func (f *fakeDevice) CursorOffset() (float64, float64) { return f.dx, f.dy }

func TestPoll(t *testing.T) {
	dev := &fakeDevice{
		held: map[Key]bool{KeyW: true, KeyD: true},
		dx:   12,
		dy:   -3,
	}

	s := Poll(dev)

	if dev.polls != 1 {
		t.Errorf("expected one PollEvents call, got %d", dev.polls)
	}
	if !s.Down(KeyW) || !s.Down(KeyD) {
		t.Error("W and D should be down")
	}
	if s.Down(KeyA) || s.Down(KeyS) || s.Down(KeyEscape) {
		t.Error("A, S and Escape should be up")
	}
	if s.CursorDX != 12 || s.CursorDY != -3 {
		t.Errorf("cursor offset = (%v, %v), want (12, -3)", s.CursorDX, s.CursorDY)
	}
	if s.ExitRequested() {
		t.Error("no exit should be requested")
	}
}

func TestExitRequested(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want bool
	}{
		{"idle", Snapshot{}, false},
		{"escape", Snapshot{}.WithKeys(KeyEscape), true},
		{"window close", Snapshot{CloseRequested: true}, true},
		{"movement only", Snapshot{}.WithKeys(KeyW, KeyA), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.snap.ExitRequested(); got != tt.want {
				t.Errorf("ExitRequested() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDownOutOfRange(t *testing.T) {
	s := Snapshot{}.WithKeys(Key(42))
	if s.Down(Key(42)) || s.Down(Key(-1)) {
		t.Error("unknown keys should never be down")
	}
}

func TestKeyString(t *testing.T) {
	if KeyEscape.String() != "Escape" || KeyW.String() != "W" || KeyScreenshot.String() != "F12" {
		t.Errorf("unexpected key names %q %q %q", KeyEscape, KeyW, KeyScreenshot)
	}
}
