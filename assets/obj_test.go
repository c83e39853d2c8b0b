package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangleOBJ = `# simple triangle
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1
`

const quadNoNormalsOBJ = `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`

func writeOBJ(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mesh.obj")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOBJTriangle(t *testing.T) {
	m, err := LoadOBJ(writeOBJ(t, triangleOBJ))
	require.NoError(t, err)

	assert.Len(t, m.Vertices, 3)
	assert.Equal(t, []uint32{0, 1, 2}, m.Indices)
	assert.Equal(t, float32(1), m.Vertices[1].Position.X())
	assert.Equal(t, float32(1), m.Vertices[0].Normal.Z())
	assert.Equal(t, float32(1), m.Vertices[2].UV.Y())
}

func TestLoadOBJFanTriangulatesAndGeneratesNormals(t *testing.T) {
	m, err := LoadOBJ(writeOBJ(t, quadNoNormalsOBJ))
	require.NoError(t, err)

	// One quad → two triangles.
	assert.Len(t, m.Indices, 6)
	// Flat CCW quad in the XY plane gets +Z normals.
	for _, v := range m.Vertices {
		assert.InDelta(t, 1, v.Normal.Z(), 1e-5)
	}
}

func TestLoadOBJEmpty(t *testing.T) {
	_, err := LoadOBJ(writeOBJ(t, "# nothing here\n"))
	assert.Error(t, err)
}

func TestLoadMeshUnknownExtension(t *testing.T) {
	_, err := LoadMesh("model.fbx")
	assert.Error(t, err)
}

func TestMeshCacheSharesLiveInstances(t *testing.T) {
	path := writeOBJ(t, triangleOBJ)
	c := NewCache()

	m1, err := c.Mesh(path)
	require.NoError(t, err)
	m2, err := c.Mesh(path)
	require.NoError(t, err)
	assert.Same(t, m1, m2)

	other := writeOBJ(t, quadNoNormalsOBJ)
	m3, err := c.Mesh(other)
	require.NoError(t, err)
	assert.NotSame(t, m1, m3)
}

func TestMeshCachePropagatesErrors(t *testing.T) {
	c := NewCache()
	_, err := c.Mesh(filepath.Join(t.TempDir(), "missing.obj"))
	assert.Error(t, err)
}
