package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGivesInfo(t *testing.T) {
	s := NewStore()
	id := s.Create()

	require.True(t, s.Valid(id))
	info := s.Info(id)
	require.NotNil(t, info)
	assert.Equal(t, "unnamed", info.Name)
	assert.Equal(t, "default", info.Tag)
	assert.Nil(t, s.MeshFilter(id))
	assert.Nil(t, s.MeshRenderer(id))
}

func TestAddComponents(t *testing.T) {
	s := NewStore()
	id := s.Create()

	mf := s.AddMeshFilter(id)
	require.NotNil(t, mf)
	mf.Resource = "dragon.obj"

	mr := s.AddMeshRenderer(id)
	require.NotNil(t, mr)
	mr.ShaderResource = "opaque.glsl"

	assert.Equal(t, "dragon.obj", s.MeshFilter(id).Resource)
	assert.Equal(t, "opaque.glsl", s.MeshRenderer(id).ShaderResource)

	// Add is idempotent: same storage comes back.
	again := s.AddMeshFilter(id)
	assert.Equal(t, "dragon.obj", again.Resource)
}

func TestDestroyInvalidatesStaleIDs(t *testing.T) {
	s := NewStore()
	id := s.Create()
	s.Destroy(id)

	assert.False(t, s.Valid(id))
	assert.Nil(t, s.Info(id))
	assert.Nil(t, s.AddMeshFilter(id))

	// The slot is recycled with a bumped generation; the old id stays dead.
	id2 := s.Create()
	assert.True(t, s.Valid(id2))
	assert.False(t, s.Valid(id))
	assert.Equal(t, 1, s.Count())
}

func TestDestroyClearsComponents(t *testing.T) {
	s := NewStore()
	id := s.Create()
	s.AddMeshFilter(id).Resource = "fox.obj"
	s.Destroy(id)

	id2 := s.Create()
	// Recycled slot must not leak the previous entity's components.
	assert.Nil(t, s.MeshFilter(id2))
}

func TestEachRenderableRequiresAllComponents(t *testing.T) {
	s := NewStore()

	full := s.Create()
	s.AddMeshFilter(full)
	s.AddMeshRenderer(full)

	partial := s.Create()
	s.AddMeshFilter(partial)

	bare := s.Create()
	_ = bare

	var seen []ID
	s.EachRenderable(func(id ID, _ *Info, _ *MeshFilter, _ *MeshRenderer) {
		seen = append(seen, id)
	})
	require.Len(t, seen, 1)
	assert.Equal(t, full, seen[0])
}

func TestEachSkipsDestroyed(t *testing.T) {
	s := NewStore()
	a := s.Create()
	b := s.Create()
	s.Destroy(a)

	n := 0
	s.Each(func(id ID) {
		assert.Equal(t, b, id)
		n++
	})
	assert.Equal(t, 1, n)
}
