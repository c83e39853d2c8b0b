package render

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"scene-editor/entity"
)

const (
	// IconSize is the square snapshot resolution in pixels.
	IconSize = 64
	// IconInterval is the snapshot cadence in seconds.
	IconInterval = 0.125
)

// IconPass renders the icon-tagged entities into a dedicated 64x64 target on
// a fixed cadence, reads the pixels back and hands them to the window layer.
// The icon entities spin slowly, one 45-degrees-per-second step per snapshot.
type IconPass struct {
	target *Target
	accum  float64
	spin   float64
	pixels []byte
}

// NewIconPass creates the pass. The target is allocated lazily on first Draw.
func NewIconPass() *IconPass {
	return &IconPass{
		target: NewTarget(1),
		pixels: make([]byte, IconSize*IconSize*4),
	}
}

// Tick advances the cadence timer by dt seconds and reports whether a
// snapshot is due. The remainder over the interval carries into the next
// period, so over any stretch of wall time the pass fires
// floor(elapsed/interval) times regardless of how elapsed is sliced into
// frames. At most one snapshot fires per call.
func (p *IconPass) Tick(dt float64) bool {
	p.accum += dt
	p.spin += dt
	if p.accum < IconInterval {
		return false
	}
	p.accum -= IconInterval
	return true
}

// Draw renders the snapshot and delivers the pixels through setIcon. The
// icon camera is fixed at the origin looking down -Z; icon entities are
// authored in that frame. Readback is synchronous by design: the result
// must be handed to the windowing layer on the same frame.
func (p *IconPass) Draw(store *entity.Store, setIcon func(width, height int, pixels []byte)) error {
	if err := p.target.EnsureSize(IconSize, IconSize); err != nil {
		return err
	}

	projection := mgl32.Perspective(mgl32.DegToRad(60), 1, 0.01, 10)
	view := mgl32.Ident4()

	angle := mgl32.DegToRad(45 * float32(p.spin))
	p.spin = 0

	p.target.Bind()
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	store.EachRenderable(func(_ entity.ID, info *entity.Info, mf *entity.MeshFilter, mr *entity.MeshRenderer) {
		if info.Tag != entity.IconTag {
			return
		}
		if mf.Mesh == nil || mr.Shader == nil || mr.Texture == nil {
			return
		}
		info.Transform.Rotate(angle, mgl32.Vec3{0, 1, 0})
		drawEntity(info, mf, mr, projection, view)
	})

	gl.BindTexture(gl.TEXTURE_2D, p.target.ColorTexture(0))
	gl.GetTexImage(gl.TEXTURE_2D, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(p.pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	p.target.Unbind()

	setIcon(IconSize, IconSize, p.pixels)
	return nil
}

// Destroy frees the snapshot target.
func (p *IconPass) Destroy() {
	p.target.Destroy()
}
