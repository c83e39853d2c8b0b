package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"scene-editor/transform"
)

// SunDirection returns the unit direction toward the sun for a time-of-day
// parameter in [0,1). The path loops once per unit of time.
func SunDirection(time float32) mgl32.Vec3 {
	t := float64(time) * 2 * math.Pi
	d := mgl32.Vec3{
		float32(math.Sin(t)),
		float32(math.Sin(t)) * 2,
		float32(math.Cos(t)),
	}
	return d.Normalize()
}

// SunScreenCenter projects the sun direction through the camera and returns
// its position in normalized device coordinates ([-1,1] per axis). The view
// translation is zeroed first: the sun sits at infinity, so only the camera
// orientation matters.
func SunScreenCenter(camera transform.Transform, projection mgl32.Mat4, time float32) mgl32.Vec2 {
	view := camera.InverseMatrix()
	view.SetCol(3, mgl32.Vec4{0, 0, 0, 1})

	clip := projection.Mul4(view).Mul4x1(SunDirection(time).Mul(2).Vec4(1))
	if w := clip.W(); w != 0 {
		clip = clip.Mul(1 / w)
	}
	return mgl32.Vec2{clip.X(), clip.Y()}
}

// billboardMatrix builds a model matrix positioned at pos whose rotation
// block is the transpose of the view rotation, so the quad always faces the
// camera head-on.
func billboardMatrix(view mgl32.Mat4, pos mgl32.Vec3) mgl32.Mat4 {
	m := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z())
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m.Set(r, c, view.At(c, r))
		}
	}
	return m
}
