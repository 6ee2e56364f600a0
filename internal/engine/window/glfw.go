package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/roomwalk/internal/engine/input"
	"github.com/Faultbox/roomwalk/internal/logger"
)

var glfwKeys = [...]glfw.Key{
	input.KeyW:          glfw.KeyW,
	input.KeyA:          glfw.KeyA,
	input.KeyS:          glfw.KeyS,
	input.KeyD:          glfw.KeyD,
	input.KeyEscape:     glfw.KeyEscape,
	input.KeyScreenshot: glfw.KeyF12,
}

// glfwWindow wraps a GLFW window. The cursor is disabled and re-centred
// after every read, so offsets are measured from the window centre.
type glfwWindow struct {
	config  Config
	window  *glfw.Window
	centreX float64
	centreY float64
}

func newGLFWWindow(cfg Config) (*glfwWindow, error) {
	logger.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	if cfg.Samples > 0 {
		glfw.WindowHint(glfw.Samples, cfg.Samples)
	}
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to open GLFW window: %w", err)
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &glfwWindow{
		config:  cfg,
		window:  win,
		centreX: float64(cfg.Width) / 2,
		centreY: float64(cfg.Height) / 2,
	}

	win.SetInputMode(glfw.StickyKeysMode, glfw.True)
	win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	glfw.PollEvents()
	win.SetCursorPos(w.centreX, w.centreY)

	logger.Info("window created",
		zap.String("backend", string(BackendGLFW)),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

func (w *glfwWindow) PollEvents() {
	glfw.PollEvents()
}

func (w *glfwWindow) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *glfwWindow) SetShouldClose(v bool) {
	w.window.SetShouldClose(v)
}

func (w *glfwWindow) KeyDown(k input.Key) bool {
	if int(k) < 0 || int(k) >= len(glfwKeys) {
		return false
	}
	return w.window.GetKey(glfwKeys[k]) == glfw.Press
}

func (w *glfwWindow) CursorOffset() (float64, float64) {
	x, y := w.window.GetCursorPos()
	w.window.SetCursorPos(w.centreX, w.centreY)
	return x - w.centreX, y - w.centreY
}

func (w *glfwWindow) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *glfwWindow) Size() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *glfwWindow) Close() {
	logger.Info("closing window", zap.String("backend", string(BackendGLFW)))
	w.window.Destroy()
	glfw.Terminate()
}
