package core

import (
	"fmt"
	"image"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

// Window wraps a GLFW window with an OpenGL context. Window events are not
// delivered through callbacks; they are queued and drained once per frame by
// the frame driver via DrainEvents.
type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string

	events []Event
}

type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	VSync     bool
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     1280,
		Height:    720,
		Title:     "Scene Editor",
		Resizable: true,
		VSync:     true,
	}
}

func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	window := &Window{
		Handle: handle,
		Width:  config.Width,
		Height: config.Height,
		Title:  config.Title,
	}

	handle.MakeContextCurrent()
	if config.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	handle.SetCloseCallback(func(w *glfw.Window) {
		window.events = append(window.events, Event{Kind: EventClose})
	})
	handle.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
		window.events = append(window.events, Event{Kind: EventResize, Width: width, Height: height})
	})

	return window, nil
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// DrainEvents returns the events queued since the last call and clears the
// queue. Call once per frame, after PollEvents.
func (w *Window) DrainEvents() []Event {
	evs := w.events
	w.events = nil
	return evs
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

// Time returns seconds since GLFW initialization.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// SetIcon hands an RGBA8 pixel buffer to the windowing layer as the window
// icon. pixels must hold width*height*4 bytes, row-major, top-to-bottom.
func (w *Window) SetIcon(width, height int, pixels []byte) {
	if len(pixels) < width*height*4 {
		return
	}
	img := &image.RGBA{
		Pix:    pixels,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	w.Handle.SetIcon([]image.Image{img})
}

func (w *Window) IsKeyPressed(key int) bool {
	return w.Handle.GetKey(glfw.Key(key)) == glfw.Press
}

func (w *Window) IsMouseButtonPressed(button int) bool {
	return w.Handle.GetMouseButton(glfw.MouseButton(button)) == glfw.Press
}

func (w *Window) GetCursorPos() (float64, float64) {
	return w.Handle.GetCursorPos()
}

// SetCursorLocked hides and captures the cursor while locked (fly-camera mode).
func (w *Window) SetCursorLocked(locked bool) {
	if locked {
		w.Handle.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.Handle.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

const (
	KeySpace     = int(glfw.KeySpace)
	KeyA         = int(glfw.KeyA)
	KeyD         = int(glfw.KeyD)
	KeyS         = int(glfw.KeyS)
	KeyW         = int(glfw.KeyW)
	KeyEscape    = int(glfw.KeyEscape)
	KeyLeftShift = int(glfw.KeyLeftShift)

	MouseButtonLeft  = int(glfw.MouseButtonLeft)
	MouseButtonRight = int(glfw.MouseButtonRight)
)
