// Package transform provides the translation/orientation/scale triple used by
// entities and the camera. Matrices compose as T·R·S.
package transform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a decomposed rigid transform with non-uniform scale.
// The zero value is not valid; use New.
type Transform struct {
	Translation mgl32.Vec3
	Orientation mgl32.Quat
	Scale       mgl32.Vec3
}

// New returns the identity transform.
func New() Transform {
	return Transform{
		Orientation: mgl32.QuatIdent(),
		Scale:       mgl32.Vec3{1, 1, 1},
	}
}

// Matrix composes translation, orientation and scale into a model matrix.
func (t Transform) Matrix() mgl32.Mat4 {
	m := mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z())
	m = m.Mul4(t.Orientation.Mat4())
	m = m.Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
	return m
}

// InverseMatrix returns the inverse of Matrix. For a camera transform this is
// the view matrix.
func (t Transform) InverseMatrix() mgl32.Mat4 {
	return t.Matrix().Inv()
}

// SetMatrix decomposes a matrix back into translation, orientation and scale.
// Skew and perspective cannot be represented and are discarded, so this is
// best-effort: only matrices built from T·R·S round-trip exactly.
func (t *Transform) SetMatrix(m mgl32.Mat4) {
	t.Translation = m.Col(3).Vec3()

	c0 := m.Col(0).Vec3()
	c1 := m.Col(1).Vec3()
	c2 := m.Col(2).Vec3()

	sx, sy, sz := c0.Len(), c1.Len(), c2.Len()
	if m.Det() < 0 {
		sx = -sx
	}
	t.Scale = mgl32.Vec3{sx, sy, sz}

	if sx != 0 {
		c0 = c0.Mul(1 / sx)
	}
	if sy != 0 {
		c1 = c1.Mul(1 / sy)
	}
	if sz != 0 {
		c2 = c2.Mul(1 / sz)
	}

	rot := mgl32.Mat4FromCols(c0.Vec4(0), c1.Vec4(0), c2.Vec4(0), mgl32.Vec4{0, 0, 0, 1})
	t.Orientation = mgl32.Mat4ToQuat(rot).Normalize()
}

// Rotate post-multiplies an axis-angle rotation onto the orientation.
// angle is in radians; axis need not be normalized.
func (t *Transform) Rotate(angle float32, axis mgl32.Vec3) {
	t.Orientation = t.Orientation.Mul(mgl32.QuatRotate(angle, axis.Normalize())).Normalize()
}

// TranslateLocal moves the transform along its own axes, as if multiplying the
// current matrix by a translation and decomposing the result.
func (t *Transform) TranslateLocal(delta mgl32.Vec3) {
	m := t.Matrix().Mul4(mgl32.Translate3D(delta.X(), delta.Y(), delta.Z()))
	t.SetMatrix(m)
}
