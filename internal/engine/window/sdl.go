package window

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/roomwalk/internal/engine/input"
	"github.com/Faultbox/roomwalk/internal/logger"
)

var sdlScancodes = [...]sdl.Scancode{
	input.KeyW:          sdl.SCANCODE_W,
	input.KeyA:          sdl.SCANCODE_A,
	input.KeyS:          sdl.SCANCODE_S,
	input.KeyD:          sdl.SCANCODE_D,
	input.KeyEscape:     sdl.SCANCODE_ESCAPE,
	input.KeyScreenshot: sdl.SCANCODE_F12,
}

// sdlWindow wraps an SDL2 window and its OpenGL context.
type sdlWindow struct {
	config    Config
	sdlWindow *sdl.Window
	glContext sdl.GLContext
	keys      []uint8
	closing   bool
}

func newSDLWindow(cfg Config) (*sdlWindow, error) {
	w := &sdlWindow{
		config: cfg,
	}

	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// Attributes must be set before the window exists.
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	if cfg.Samples > 0 {
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLEBUFFERS, 1)
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLESAMPLES, cfg.Samples)
	}

	// Not resizable: the projection aspect is fixed at startup.
	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		sdl.WINDOW_OPENGL,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.glContext, err = w.sdlWindow.GLCreateContext()
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	if cfg.VSync {
		if err := sdl.GLSetSwapInterval(1); err != nil {
			logger.Warn("failed to enable VSync", zap.Error(err))
		}
	} else {
		sdl.GLSetSwapInterval(0)
	}

	// Relative mode hides and captures the cursor; offsets then come straight
	// from SDL without manual re-centring.
	sdl.SetRelativeMouseMode(true)
	sdl.GetRelativeMouseState()

	w.keys = sdl.GetKeyboardState()

	logger.Info("window created",
		zap.String("backend", string(BackendSDL)),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

func (w *sdlWindow) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.closing = true
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_CLOSE {
				w.closing = true
			}
		}
	}
}

func (w *sdlWindow) ShouldClose() bool {
	return w.closing
}

func (w *sdlWindow) SetShouldClose(v bool) {
	w.closing = v
}

func (w *sdlWindow) KeyDown(k input.Key) bool {
	if int(k) < 0 || int(k) >= len(sdlScancodes) {
		return false
	}
	return w.keys[sdlScancodes[k]] != 0
}

func (w *sdlWindow) CursorOffset() (float64, float64) {
	dx, dy, _ := sdl.GetRelativeMouseState()
	return float64(dx), float64(dy)
}

func (w *sdlWindow) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

func (w *sdlWindow) Size() (int, int) {
	width, height := w.sdlWindow.GLGetDrawableSize()
	return int(width), int(height)
}

func (w *sdlWindow) Close() {
	logger.Info("closing window", zap.String("backend", string(BackendSDL)))

	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}
