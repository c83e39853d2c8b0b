package render

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"scene-editor/core"
)

// Pipeline is the per-frame pass sequence the Driver executes. Graph is the
// production implementation.
type Pipeline interface {
	EnsureSize(width, height int) error
	ScenePass(width, height int)
	GlarePass(width, height int) mgl32.Vec2
	BlurPass(center mgl32.Vec2, width, height int)
	IconPass(dt float64) bool
	ViewportTexture() uint32
}

// UI is the editing surface around the viewport. Begin starts a UI frame,
// Present receives the composited viewport texture, Render draws the frame
// to the default framebuffer.
type UI interface {
	Begin()
	ViewportSize() (width, height int)
	Present(texture uint32, width, height int)
	Render()
}

// InputHandler consumes input state once per frame, before the UI frame
// starts.
type InputHandler interface {
	Update(dt float64)
}

// Driver runs the frame loop: poll input, update the camera, then viewport
// passes, icon snapshot and UI, in a fixed order. A zero-area viewport skips
// the viewport passes but the UI and icon cadence still run.
type Driver struct {
	Running bool

	win   *core.Window
	input InputHandler
	ui    UI
	pipe  Pipeline

	lastTime float64
	started  bool
}

// NewDriver wires the loop participants together.
func NewDriver(win *core.Window, input InputHandler, ui UI, pipe Pipeline) *Driver {
	return &Driver{
		Running: true,
		win:     win,
		input:   input,
		ui:      ui,
		pipe:    pipe,
	}
}

// Run drives frames until a close is requested, then returns. The caller
// owns teardown.
func (d *Driver) Run() {
	for d.Running {
		d.win.PollEvents()
		width, height := d.ui.ViewportSize()
		d.Step(d.win.Time(), d.win.DrainEvents(), width, height)
		d.win.SwapBuffers()
	}
}

// Step executes one frame at the given absolute time. It is the loop body of
// Run, split out so the ordering and gating can be tested without a window.
func (d *Driver) Step(now float64, events []core.Event, viewportW, viewportH int) {
	for _, ev := range events {
		if ev.Kind == core.EventClose {
			d.Running = false
		}
	}

	dt := 0.0
	if d.started {
		dt = now - d.lastTime
	}
	d.lastTime = now
	d.started = true

	if d.input != nil {
		d.input.Update(dt)
	}
	d.ui.Begin()

	if viewportW > 0 && viewportH > 0 {
		if err := d.pipe.EnsureSize(viewportW, viewportH); err != nil {
			// Keep presenting the previous frame's target.
			fmt.Printf("viewport resize failed: %v\n", err)
		} else {
			d.pipe.ScenePass(viewportW, viewportH)
			center := d.pipe.GlarePass(viewportW, viewportH)
			d.pipe.BlurPass(center, viewportW, viewportH)
			d.ui.Present(d.pipe.ViewportTexture(), viewportW, viewportH)
		}
	}

	d.pipe.IconPass(dt)

	d.ui.Render()
}

// Init loads OpenGL function pointers and sets the pipeline's fixed state.
// Call once after the window's context is current.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	fmt.Printf("OpenGL version: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.ClearColor(0, 0, 0, 1)
	gl.ClearDepth(1)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	return nil
}
