package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"terrain-demo/input"
)

func init() {
	// GLFW and the GL context must stay on the main OS thread.
	runtime.LockOSThread()
}

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string
}

type WindowConfig struct {
	Width      int
	Height     int
	Title      string
	Resizable  bool
	VSync      bool
	Fullscreen bool
}

// NewWindow opens a window with an OpenGL 4.1 core context made current.
// Every key transition GLFW reports during PollEvents is forwarded to
// receiver on the calling goroutine.
func NewWindow(config WindowConfig, receiver input.EventReceiver) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))

	monitor := (*glfw.Monitor)(nil)
	if config.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, monitor, nil)
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

	if receiver != nil {
		handle.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
			if ev, ok := TranslateKey(key, action); ok {
				receiver.OnEvent(ev)
			}
		})
	}

	return window, nil
}

// TranslateKey converts a GLFW key callback into a tracker event. Repeats
// count as held; keys GLFW cannot identify are dropped.
func TranslateKey(key glfw.Key, action glfw.Action) (input.KeyEvent, bool) {
	code := input.KeyCode(key)
	if !code.Valid() {
		return input.KeyEvent{}, false
	}
	switch action {
	case glfw.Press, glfw.Repeat:
		return input.KeyEvent{Key: code, PressedDown: true}, true
	case glfw.Release:
		return input.KeyEvent{Key: code, PressedDown: false}, true
	}
	return input.KeyEvent{}, false
}

// OnFocusLost registers fn to run when the window loses input focus. Key
// releases that happen while unfocused are never reported.
func (w *Window) OnFocusLost(fn func()) {
	w.Handle.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if !focused {
			fn()
		}
	})
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.Handle.SetShouldClose(v)
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

// GetTime returns seconds since GLFW was initialised.
func (w *Window) GetTime() float64 {
	return glfw.GetTime()
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

func (w *Window) GetCursorPos() (float64, float64) {
	return w.Handle.GetCursorPos()
}

// SetCursorVisible hides and captures the cursor for mouse look when false.
func (w *Window) SetCursorVisible(visible bool) {
	mode := glfw.CursorNormal
	if !visible {
		mode = glfw.CursorDisabled
	}
	w.Handle.SetInputMode(glfw.CursorMode, mode)
}

func boolToInt(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
