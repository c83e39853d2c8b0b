package editor

import (
	"github.com/go-gl/mathgl/mgl32"

	"scene-editor/core"
	"scene-editor/internal/render"
)

// Camera is the right-mouse fly camera. While the right button is held the
// cursor is captured and mouse motion rotates the view; WASD moves in the
// camera's local frame, Space and Left Shift move along world up/down.
type Camera struct {
	// MoveSpeed in world units per second.
	MoveSpeed float32
	// Sensitivity in radians per pixel of cursor motion.
	Sensitivity float32

	win    *core.Window
	params *render.Params

	flying bool
	lastX  float64
	lastY  float64
}

func NewCamera(win *core.Window, params *render.Params) *Camera {
	return &Camera{
		MoveSpeed:   5,
		Sensitivity: 0.0025,
		win:         win,
		params:      params,
	}
}

// Update advances the camera one frame. Implements render.InputHandler.
func (c *Camera) Update(dt float64) {
	flying := c.win.IsMouseButtonPressed(core.MouseButtonRight)
	if flying != c.flying {
		c.win.SetCursorLocked(flying)
		c.flying = flying
		// Swallow the first delta after capture.
		c.lastX, c.lastY = c.win.GetCursorPos()
	}
	if !c.flying {
		return
	}

	x, y := c.win.GetCursorPos()
	dx := float32(x-c.lastX) * c.Sensitivity
	dy := float32(y-c.lastY) * c.Sensitivity
	c.lastX, c.lastY = x, y
	c.rotate(dx, dy)

	move := moveVector(
		c.win.IsKeyPressed(core.KeyW),
		c.win.IsKeyPressed(core.KeyS),
		c.win.IsKeyPressed(core.KeyA),
		c.win.IsKeyPressed(core.KeyD),
	).Mul(c.MoveSpeed * float32(dt))
	c.params.Camera.TranslateLocal(move)

	vertical := verticalVector(
		c.win.IsKeyPressed(core.KeySpace),
		c.win.IsKeyPressed(core.KeyLeftShift),
	).Mul(c.MoveSpeed * float32(dt))
	c.params.Camera.Translation = c.params.Camera.Translation.Add(vertical)
}

// rotate yaws about world up and pitches about the camera's local X axis, so
// the horizon stays level.
func (c *Camera) rotate(dx, dy float32) {
	cam := &c.params.Camera
	worldUp := cam.Orientation.Inverse().Rotate(mgl32.Vec3{0, 1, 0})
	cam.Rotate(-dx, worldUp)
	cam.Rotate(-dy, mgl32.Vec3{1, 0, 0})
}

// moveVector maps WASD state to a unit direction in the camera's local frame
// (forward is -Z). Opposite keys cancel; diagonals are normalized so they are
// no faster than a single key.
func moveVector(forward, back, left, right bool) mgl32.Vec3 {
	var v mgl32.Vec3
	if forward {
		v[2]--
	}
	if back {
		v[2]++
	}
	if left {
		v[0]--
	}
	if right {
		v[0]++
	}
	if v.LenSqr() == 0 {
		return v
	}
	return v.Normalize()
}

func verticalVector(up, down bool) mgl32.Vec3 {
	var v mgl32.Vec3
	if up {
		v[1]++
	}
	if down {
		v[1]--
	}
	return v
}
