package render

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"scene-editor/assets"
	"scene-editor/transform"
)

// GlarePass draws a camera-facing sun billboard into the glare attachment
// (color attachment 1) of the bound target. The fragment shader writes zero
// to attachment 0, so under additive blending the lit scene is untouched.
type GlarePass struct {
	// Distance from the camera at which the billboard is placed.
	Distance float32

	shader *assets.Shader
	quad   *assets.Mesh
}

// NewGlarePass compiles the built-in sun shader. Requires a current GL context.
func NewGlarePass() (*GlarePass, error) {
	shader, err := assets.NewShader("sun", sunShaderSource)
	if err != nil {
		return nil, fmt.Errorf("sun shader: %w", err)
	}
	return &GlarePass{
		Distance: 5,
		shader:   shader,
		quad:     assets.NewScreenQuad(),
	}, nil
}

// Draw renders the sun billboard and returns the sun's position in normalized
// device coordinates, which the blur pass uses as its focus. Depth testing is
// off for the billboard; depth writes stay disabled so the scene's depth
// buffer is preserved.
func (p *GlarePass) Draw(camera transform.Transform, projection mgl32.Mat4, time float32) mgl32.Vec2 {
	center := SunScreenCenter(camera, projection, time)

	view := camera.InverseMatrix()
	pos := camera.Translation.Add(SunDirection(time).Mul(p.Distance))
	model := billboardMatrix(view, pos)

	gl.Disable(gl.DEPTH_TEST)
	gl.DepthMask(false)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.Disable(gl.CULL_FACE)

	p.shader.Bind()
	p.shader.UniformMat4("uProjection", projection)
	p.shader.UniformMat4("uView", view)
	p.shader.UniformMat4("uModel", model)
	p.quad.Draw()

	gl.Enable(gl.CULL_FACE)
	gl.Disable(gl.BLEND)
	gl.DepthMask(true)
	gl.Enable(gl.DEPTH_TEST)

	return center
}

// Destroy frees the pass's GPU resources.
func (p *GlarePass) Destroy() {
	p.shader.Destroy()
	p.quad.Destroy()
}
