package render

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"scene-editor/entity"
)

// ScenePass draws every renderable entity into the bound target with the
// lit opaque path. Entities are skipped, not errored, when an asset failed
// to load; the icon-tagged set is reserved for the snapshot pass.
type ScenePass struct{}

// Draw renders all drawable entities with the given camera matrices.
func (ScenePass) Draw(store *entity.Store, projection, view mgl32.Mat4) {
	store.EachRenderable(func(_ entity.ID, info *entity.Info, mf *entity.MeshFilter, mr *entity.MeshRenderer) {
		if !drawable(info, mf, mr) {
			return
		}
		drawEntity(info, mf, mr, projection, view)
	})
}

// drawable reports whether the scene pass should render the entity: all three
// assets resolved and not claimed by the icon snapshot.
func drawable(info *entity.Info, mf *entity.MeshFilter, mr *entity.MeshRenderer) bool {
	if info.Tag == entity.IconTag {
		return false
	}
	return mf.Mesh != nil && mr.Shader != nil && mr.Texture != nil
}

func drawEntity(info *entity.Info, mf *entity.MeshFilter, mr *entity.MeshRenderer, projection, view mgl32.Mat4) {
	culls := mr.Shader.CullsBackFaces()
	if !culls {
		gl.Disable(gl.CULL_FACE)
	}

	mr.Shader.Bind()
	mr.Shader.UniformMat4("uProjection", projection)
	mr.Shader.UniformMat4("uView", view)
	mr.Shader.UniformMat4("uModel", info.Transform.Matrix())
	mr.Shader.Uniform1i("uAlbedo", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	mr.Texture.Bind()
	mf.Mesh.Draw()

	if !culls {
		gl.Enable(gl.CULL_FACE)
	}
}
