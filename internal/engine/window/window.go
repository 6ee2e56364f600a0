// Package window creates the OpenGL window and exposes its input state.
package window

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/Faultbox/roomwalk/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// ErrUnknownBackend is returned by New for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown window backend")

// Backend names a windowing library.
type Backend string

const (
	BackendSDL  Backend = "sdl"
	BackendGLFW Backend = "glfw"
)

// Config holds window configuration.
type Config struct {
	Title   string
	Width   int
	Height  int
	VSync   bool
	Samples int
	Backend Backend
}

// Window is a fixed-size window with a current OpenGL 4.1 core context.
type Window interface {
	input.Device

	// SetShouldClose requests (or cancels) closing the window.
	SetShouldClose(bool)
	// SwapBuffers presents the back buffer, blocking on vsync if enabled.
	SwapBuffers()
	// Size returns the drawable size in pixels.
	Size() (int, int)
	// Close destroys the window and shuts the backend down.
	Close()
}

// New creates a window with the configured backend. An empty backend
// selects SDL.
func New(cfg Config) (Window, error) {
	switch cfg.Backend {
	case BackendSDL, "":
		return newSDLWindow(cfg)
	case BackendGLFW:
		return newGLFWWindow(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// ParseBackend validates a backend name.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(s); b {
	case BackendSDL, BackendGLFW:
		return b, nil
	case "":
		return BackendSDL, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
}
