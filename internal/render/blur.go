package render

import (
	"fmt"
	"math"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"scene-editor/assets"
)

// Iteration bounds for the radial blur sample loop.
const (
	MinBlurIterations = 0
	MaxBlurIterations = 128
)

// BlurPass streaks the glare attachment toward the sun's screen position and
// adds the result onto the composited scene (color attachment 0).
type BlurPass struct {
	// Iterations is the per-pixel sample count, clamped to
	// [MinBlurIterations, MaxBlurIterations]. Zero disables the pass.
	Iterations int
	// Strength scales the blurred contribution.
	Strength float32

	shader *assets.Shader
	quad   *assets.Mesh
}

// NewBlurPass compiles the built-in radial blur shader. Requires a current
// GL context.
func NewBlurPass() (*BlurPass, error) {
	shader, err := assets.NewShader("radial blur", radialBlurShaderSource)
	if err != nil {
		return nil, fmt.Errorf("radial blur shader: %w", err)
	}
	return &BlurPass{
		Iterations: 20,
		Strength:   1,
		shader:     shader,
		quad:       assets.NewScreenQuad(),
	}, nil
}

// Draw samples glareTexture along the line toward center (in NDC) and blends
// the weighted sum additively into attachment 0. The target's draw buffer
// list is narrowed to attachment 0 for the duration of the pass so the glare
// attachment is never fed back into itself, then restored.
func (p *BlurPass) Draw(glareTexture uint32, center mgl32.Vec2, width, height int, time float32) {
	n := clampIterations(p.Iterations)
	if n == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.DepthMask(false)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)

	primary := []uint32{gl.COLOR_ATTACHMENT0}
	gl.DrawBuffers(1, &primary[0])

	p.shader.Bind()
	p.shader.Uniform2f("uResolution", float32(width), float32(height))
	// NDC → texture space.
	p.shader.Uniform2f("uCenter", center.X()*0.5+0.5, center.Y()*0.5+0.5)
	p.shader.Uniform1f("uStrength", p.Strength)
	p.shader.Uniform1f("uTime", time)
	p.shader.Uniform1f("uIterations", float32(n))
	p.shader.Uniform1i("uGlare", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, glareTexture)
	p.quad.Draw()

	both := []uint32{gl.COLOR_ATTACHMENT0, gl.COLOR_ATTACHMENT1}
	gl.DrawBuffers(2, &both[0])

	gl.Disable(gl.BLEND)
	gl.DepthMask(true)
	gl.Enable(gl.DEPTH_TEST)
}

// Destroy frees the pass's GPU resources.
func (p *BlurPass) Destroy() {
	p.shader.Destroy()
	p.quad.Destroy()
}

func clampIterations(n int) int {
	if n < MinBlurIterations {
		return MinBlurIterations
	}
	if n > MaxBlurIterations {
		return MaxBlurIterations
	}
	return n
}

// Jitter is the Go mirror of the shader's per-pixel hash. It is deterministic
// in its inputs and returns a value in [0,1).
func Jitter(x, y float32) float32 {
	s := math.Sin(float64(x)*12.9898 + float64(y)*78.233)
	v := s * 43758.5453
	return float32(v - math.Floor(v))
}

// blurWeights returns the normalized parabolic sample weights the shader
// computes for n samples with the given jitter offset. Sample t gets weight
// 4p(1-p) with p = (t+jitter)/n, so samples near the middle of the streak
// dominate and the endpoints fade out.
func blurWeights(n int, jitter float32) []float32 {
	if n <= 0 {
		return nil
	}
	weights := make([]float32, n)
	var total float32
	for t := 0; t < n; t++ {
		p := (float32(t) + jitter) / float32(n)
		w := 4 * p * (1 - p)
		weights[t] = w
		total += w
	}
	if total < 1e-4 {
		total = 1e-4
	}
	for t := range weights {
		weights[t] /= total
	}
	return weights
}
