package assets

import (
	"fmt"
	"path/filepath"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the interleaved vertex layout shared by every mesh:
// position (location 0), normal (location 1), UV (location 2).
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

const vertexStride = int32(unsafe.Sizeof(Vertex{}))

// Mesh holds CPU-side vertex/index data plus the GL buffer objects once
// uploaded. Meshes are shared read-only between entities during rendering.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	uploaded   bool
}

// NewMesh builds a CPU-side mesh. Upload happens lazily on first Draw.
func NewMesh(name string, vertices []Vertex, indices []uint32) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
	}
}

// LoadMesh loads a mesh from disk, dispatching on the file extension.
// Wavefront OBJ and glTF (.gltf/.glb) are supported.
func LoadMesh(path string) (*Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return LoadOBJ(path)
	case ".gltf", ".glb":
		return LoadGLTF(path)
	default:
		return nil, fmt.Errorf("unsupported mesh format %q", filepath.Ext(path))
	}
}

// Upload creates the VAO/VBO/EBO for this mesh. Requires a current GL context.
func (m *Mesh) Upload() {
	if m.uploaded || len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(vertexStride),
		gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4,
		gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride,
		uintptr(unsafe.Offsetof(Vertex{}.Normal)))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexStride,
		uintptr(unsafe.Offsetof(Vertex{}.UV)))

	gl.BindVertexArray(0)

	m.indexCount = int32(len(m.Indices))
	m.uploaded = true
}

// Draw issues the indexed draw call, uploading on first use.
func (m *Mesh) Draw() {
	if !m.uploaded {
		m.Upload()
		if !m.uploaded {
			return
		}
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy frees the GPU buffers. CPU data is garbage-collected.
func (m *Mesh) Destroy() {
	if !m.uploaded {
		return
	}
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteVertexArrays(1, &m.vao)
	m.vbo, m.ebo, m.vao = 0, 0, 0
	m.uploaded = false
}

// NewScreenQuad returns the [-1,1]² quad used by the glare billboard and the
// post-effect passes.
func NewScreenQuad() *Mesh {
	vertices := []Vertex{
		{Position: mgl32.Vec3{-1, 1, 0}, Normal: mgl32.Vec3{0, 0, -1}, UV: mgl32.Vec2{0, 1}},
		{Position: mgl32.Vec3{-1, -1, 0}, Normal: mgl32.Vec3{0, 0, -1}, UV: mgl32.Vec2{0, 0}},
		{Position: mgl32.Vec3{1, 1, 0}, Normal: mgl32.Vec3{0, 0, -1}, UV: mgl32.Vec2{1, 1}},
		{Position: mgl32.Vec3{1, -1, 0}, Normal: mgl32.Vec3{0, 0, -1}, UV: mgl32.Vec2{1, 0}},
	}
	indices := []uint32{0, 1, 2, 2, 1, 3}
	return NewMesh("screen_quad", vertices, indices)
}
