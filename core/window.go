package core

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"gl-dispatch/dispatch"
)

func init() {
	// GL contexts are current per OS thread.
	runtime.LockOSThread()
}

// Window is a glfw window owning an OpenGL context.
type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string
}

type WindowConfig struct {
	Width  int
	Height int
	Title  string

	// GL context version hints. Zero Major lets the driver pick.
	Major       int
	Minor       int
	CoreProfile bool
	ES          bool

	Visible bool
	VSync   bool
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:   640,
		Height:  480,
		Title:   "gl-dispatch",
		Visible: true,
		VSync:   true,
	}
}

// NewWindow creates a window and makes its GL context current on the
// calling thread.
func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.Visible, boolToInt(config.Visible))
	if config.ES {
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	} else {
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	}
	if config.Major > 0 {
		glfw.WindowHint(glfw.ContextVersionMajor, config.Major)
		glfw.WindowHint(glfw.ContextVersionMinor, config.Minor)
	}
	if config.CoreProfile && !config.ES {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()
	if config.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	window := &Window{
		Handle: handle,
		Width:  config.Width,
		Height: config.Height,
		Title:  config.Title,
	}

	handle.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
	})

	return window, nil
}

// ProcAddress resolves GL entry points through glfwGetProcAddress. The
// window's context must be current when the table is loaded. On GLX and EGL
// this returns a stub for names the driver lacks, so resolve.Library gives
// a more honest Missing list.
func (w *Window) ProcAddress() dispatch.Resolver {
	return glfw.GetProcAddress
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func (w *Window) IsKeyPressed(key int) bool {
	return w.Handle.GetKey(glfw.Key(key)) == glfw.Press
}

func boolToInt(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

const KeyEscape = int(glfw.KeyEscape)
