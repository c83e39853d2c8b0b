package transform

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewIsIdentity(t *testing.T) {
	tr := New()
	assert.True(t, tr.Matrix().ApproxEqual(mgl32.Ident4()))
}

func TestMatrixComposesTRS(t *testing.T) {
	tr := New()
	tr.Translation = mgl32.Vec3{1, 2, 3}
	tr.Scale = mgl32.Vec3{2, 2, 2}

	// Scale applies before translation: local point (1,0,0) lands at (3,2,3).
	p := tr.Matrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 3, p.X(), 1e-5)
	assert.InDelta(t, 2, p.Y(), 1e-5)
	assert.InDelta(t, 3, p.Z(), 1e-5)
}

func TestInverseMatrix(t *testing.T) {
	tr := New()
	tr.Translation = mgl32.Vec3{4, -1, 2}
	tr.Rotate(float32(math.Pi/3), mgl32.Vec3{0, 1, 0})

	m := tr.Matrix().Mul4(tr.InverseMatrix())
	assert.True(t, m.ApproxEqualThreshold(mgl32.Ident4(), 1e-5))
}

func TestSetMatrixRoundTrip(t *testing.T) {
	orig := New()
	orig.Translation = mgl32.Vec3{-2, 5, 0.5}
	orig.Rotate(0.7, mgl32.Vec3{1, 2, 0})
	orig.Scale = mgl32.Vec3{1.5, 0.5, 3}

	var got Transform
	got.SetMatrix(orig.Matrix())

	assert.InDelta(t, orig.Translation.X(), got.Translation.X(), 1e-4)
	assert.InDelta(t, orig.Translation.Y(), got.Translation.Y(), 1e-4)
	assert.InDelta(t, orig.Translation.Z(), got.Translation.Z(), 1e-4)
	assert.InDelta(t, orig.Scale.X(), got.Scale.X(), 1e-4)
	assert.InDelta(t, orig.Scale.Y(), got.Scale.Y(), 1e-4)
	assert.InDelta(t, orig.Scale.Z(), got.Scale.Z(), 1e-4)

	// Quaternions are equal up to sign.
	dot := orig.Orientation.Dot(got.Orientation)
	assert.InDelta(t, 1, math.Abs(float64(dot)), 1e-4)
}

func TestSetMatrixZeroScale(t *testing.T) {
	var tr Transform
	tr.SetMatrix(mgl32.Scale3D(0, 1, 1))
	// Must not produce NaNs.
	assert.False(t, math.IsNaN(float64(tr.Orientation.W)))
	assert.Equal(t, float32(0), tr.Scale.X())
}

func TestRotateAccumulates(t *testing.T) {
	tr := New()
	tr.Rotate(float32(math.Pi/2), mgl32.Vec3{0, 1, 0})
	tr.Rotate(float32(math.Pi/2), mgl32.Vec3{0, 1, 0})

	// Two quarter turns about Y send +X to -X.
	p := tr.Orientation.Rotate(mgl32.Vec3{1, 0, 0})
	assert.InDelta(t, -1, p.X(), 1e-5)
	assert.InDelta(t, 0, p.Z(), 1e-5)
}

func TestTranslateLocalRespectsOrientation(t *testing.T) {
	tr := New()
	tr.Rotate(float32(math.Pi/2), mgl32.Vec3{0, 1, 0})

	// Local -Z is world -X after a +90° yaw.
	tr.TranslateLocal(mgl32.Vec3{0, 0, -1})
	assert.InDelta(t, -1, tr.Translation.X(), 1e-5)
	assert.InDelta(t, 0, tr.Translation.Z(), 1e-5)
}
