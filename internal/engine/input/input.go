// Package input turns window device state into per-frame snapshots.
package input

// Key identifies one of the keys the room walker reacts to.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyEscape
	KeyScreenshot

	keyCount
)

// Keys lists every tracked key.
var Keys = [keyCount]Key{KeyW, KeyA, KeyS, KeyD, KeyEscape, KeyScreenshot}

// String returns a printable key name.
func (k Key) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeyEscape:
		return "Escape"
	case KeyScreenshot:
		return "F12"
	default:
		return "?"
	}
}

// Device is the window-side source of input state.
type Device interface {
	// PollEvents pumps the platform event queue.
	PollEvents()
	// ShouldClose reports whether the window was asked to close.
	ShouldClose() bool
	// KeyDown reports whether a key is currently held.
	KeyDown(Key) bool
	// CursorOffset returns the cursor displacement from the window centre
	// since the last call and re-centres the cursor.
	CursorOffset() (dx, dy float64)
}

// Snapshot is the input state for one frame.
type Snapshot struct {
	keys [keyCount]bool

	// CursorDX and CursorDY are the cursor displacement in pixels, positive
	// right and down.
	CursorDX float64
	CursorDY float64

	// CloseRequested is set when the window system asked to close.
	CloseRequested bool
}

// Poll pumps events and captures the current device state.
func Poll(dev Device) Snapshot {
	dev.PollEvents()

	var s Snapshot
	for _, k := range Keys {
		s.keys[k] = dev.KeyDown(k)
	}
	s.CursorDX, s.CursorDY = dev.CursorOffset()
	s.CloseRequested = dev.ShouldClose()
	return s
}

// Down reports whether k was held when the snapshot was taken.
func (s Snapshot) Down(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.keys[k]
}

// WithKeys returns a copy of s with the given keys held.
func (s Snapshot) WithKeys(keys ...Key) Snapshot {
	for _, k := range keys {
		if k >= 0 && k < keyCount {
			s.keys[k] = true
		}
	}
	return s
}

// ExitRequested reports whether the frame should leave the running state.
func (s Snapshot) ExitRequested() bool {
	return s.CloseRequested || s.Down(KeyEscape)
}
