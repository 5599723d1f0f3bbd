package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/learngl"
)

// Window adapts a GLFW window to learngl.Window.
type Window struct {
	window *glfw.Window
	input  *learngl.InputState
}

// WindowOption configures window creation.
type WindowOption func(*windowOptions)

type windowOptions struct {
	hidden bool
}

// Hidden creates an invisible window, for offscreen rendering.
func Hidden() WindowOption {
	return func(o *windowOptions) { o.hidden = true }
}

// NewWindow creates a window with an OpenGL 4.1 core context, makes it
// current and loads GL entry points. glfw.Init must have been called on the
// main thread.
func NewWindow(cfg learngl.WindowConfig, opts ...WindowOption) (*Window, error) {
	var o windowOptions
	for _, opt := range opts {
		opt(&o)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if o.hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.True)
	}

	width, height := cfg.Width, cfg.Height
	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		if monitor == nil {
			return nil, fmt.Errorf("fullscreen: no primary monitor")
		}
		mode := monitor.GetVideoMode()
		width, height = mode.Width, mode.Height
		glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)
	}

	window, err := glfw.CreateWindow(width, height, cfg.Title, monitor, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	learngl.Logger().Debug("window created",
		"width", width, "height", height, "fullscreen", cfg.Fullscreen,
		"gl", gl.GoStr(gl.GetString(gl.VERSION)))

	w := &Window{window: window, input: learngl.NewInputState()}
	window.SetKeyCallback(w.keyCallback)
	return w, nil
}

// GLFW returns the underlying GLFW window.
func (w *Window) GLFW() *glfw.Window {
	return w.window
}

// Destroy closes the window and its context.
func (w *Window) Destroy() {
	w.window.Destroy()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.window.SetShouldClose(v)
}

func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *Window) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *Window) Time() float64 {
	return glfw.GetTime()
}

func (w *Window) Input() *learngl.InputState {
	return w.input
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == learngl.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		w.input.SetKey(k, true)
	case glfw.Release:
		w.input.SetKey(k, false)
	}
}

// glfwKeyToKey maps GLFW keys to learngl keys.
func glfwKeyToKey(key glfw.Key) learngl.Key {
	switch key {
	case glfw.KeyEscape:
		return learngl.KeyEscape
	case glfw.KeyQ:
		return learngl.KeyQ
	default:
		return learngl.KeyNone
	}
}
