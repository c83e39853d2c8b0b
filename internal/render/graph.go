package render

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"scene-editor/entity"
	"scene-editor/transform"
)

// Params is the shared knob set between the editor UI and the render graph.
// The editor mutates it; the graph reads it once per frame.
type Params struct {
	Camera transform.Transform
	// FOV is the vertical field of view in radians.
	FOV  float32
	Near float32
	Far  float32

	// SunTime is the time-of-day parameter in [0,1).
	SunTime     float32
	SunDistance float32

	BlurIterations int
	BlurStrength   float32
}

// DefaultParams returns the startup camera and sun configuration.
func DefaultParams() *Params {
	return &Params{
		Camera:         transform.New(),
		FOV:            mgl32.DegToRad(60),
		Near:           0.01,
		Far:            1000,
		SunTime:        0.1,
		SunDistance:    5,
		BlurIterations: 20,
		BlurStrength:   1,
	}
}

// Graph owns the viewport target and the pass chain, and executes them in
// order against the entity store. It implements Pipeline for the Driver.
type Graph struct {
	params *Params
	store  *entity.Store

	target  *Target
	scene   ScenePass
	glare   *GlarePass
	blur    *BlurPass
	icon    *IconPass
	setIcon func(width, height int, pixels []byte)

	time float32
}

// NewGraph builds the pass chain. Requires a current GL context; setIcon
// receives the icon snapshot pixels each time the icon pass fires.
func NewGraph(params *Params, store *entity.Store, setIcon func(width, height int, pixels []byte)) (*Graph, error) {
	glare, err := NewGlarePass()
	if err != nil {
		return nil, fmt.Errorf("glare pass: %w", err)
	}
	blur, err := NewBlurPass()
	if err != nil {
		glare.Destroy()
		return nil, fmt.Errorf("blur pass: %w", err)
	}
	return &Graph{
		params:  params,
		store:   store,
		target:  NewTarget(2),
		glare:   glare,
		blur:    blur,
		icon:    NewIconPass(),
		setIcon: setIcon,
	}, nil
}

func (g *Graph) projection(width, height int) mgl32.Mat4 {
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(g.params.FOV, aspect, g.params.Near, g.params.Far)
}

// EnsureSize resizes the viewport target.
func (g *Graph) EnsureSize(width, height int) error {
	return g.target.EnsureSize(width, height)
}

// ScenePass clears the target and draws all renderable entities into it.
func (g *Graph) ScenePass(width, height int) {
	g.target.Bind()
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	g.scene.Draw(g.store, g.projection(width, height), g.params.Camera.InverseMatrix())
}

// GlarePass draws the sun billboard and returns its screen-space center.
func (g *Graph) GlarePass(width, height int) mgl32.Vec2 {
	g.glare.Distance = g.params.SunDistance
	return g.glare.Draw(g.params.Camera, g.projection(width, height), g.params.SunTime)
}

// BlurPass composites the streaked glare over the scene and unbinds the
// target, leaving attachment 0 ready for presentation.
func (g *Graph) BlurPass(center mgl32.Vec2, width, height int) {
	g.blur.Iterations = g.params.BlurIterations
	g.blur.Strength = g.params.BlurStrength
	g.blur.Draw(g.target.ColorTexture(1), center, width, height, g.time)
	g.target.Unbind()
}

// IconPass advances the snapshot cadence and, when due, renders and delivers
// the window icon. It reports whether a snapshot fired.
func (g *Graph) IconPass(dt float64) bool {
	g.time += float32(dt)
	if !g.icon.Tick(dt) {
		return false
	}
	if err := g.icon.Draw(g.store, g.setIcon); err != nil {
		fmt.Printf("icon snapshot failed: %v\n", err)
		return false
	}
	return true
}

// ViewportTexture returns the composited color attachment for presentation.
func (g *Graph) ViewportTexture() uint32 {
	return g.target.ColorTexture(0)
}

// Destroy frees all passes and the viewport target.
func (g *Graph) Destroy() {
	g.icon.Destroy()
	g.blur.Destroy()
	g.glare.Destroy()
	g.target.Destroy()
}
