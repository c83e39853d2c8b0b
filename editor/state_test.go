package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-editor/assets"
	"scene-editor/entity"
	"scene-editor/internal/render"
)

func newEditor() *Editor {
	return New(entity.NewStore(), assets.NewCache(), render.DefaultParams())
}

func TestEditorSelection(t *testing.T) {
	e := newEditor()
	assert.Nil(t, e.Selection())

	id := e.Store.Create()
	e.Select(id)
	require.NotNil(t, e.Selection())

	e.Rename("dragon")
	e.SetTag("props")
	assert.Equal(t, "dragon", e.Selection().Name)
	assert.Equal(t, "props", e.Selection().Tag)
}

func TestEditorSelectInvalidClears(t *testing.T) {
	e := newEditor()
	id := e.Store.Create()
	e.Select(id)

	e.Select(entity.Nil)
	assert.Nil(t, e.Selection())
}

func TestEditorStaleSelectionReadsEmpty(t *testing.T) {
	e := newEditor()
	id := e.Store.Create()
	e.Select(id)

	// Destroyed behind the editor's back.
	e.Store.Destroy(id)
	assert.Nil(t, e.Selection())

	// Mutations against the stale selection are no-ops.
	e.Rename("ghost")
	e.SetTag("ghost")
}

func TestEditorDeleteSelected(t *testing.T) {
	e := newEditor()
	id := e.Store.Create()
	e.Select(id)

	e.DeleteSelected()
	assert.False(t, e.Store.Valid(id))
	assert.Nil(t, e.Selection())

	// Deleting with nothing selected is harmless.
	e.DeleteSelected()
}

func TestEditorSpawnWithMissingAssets(t *testing.T) {
	e := newEditor()
	id := e.Spawn("broken", "default", "missing.obj", "missing.glsl", "missing.png")

	// The entity exists but its references are nil, so the scene pass
	// will skip it.
	require.True(t, e.Store.Valid(id))
	mf := e.Store.MeshFilter(id)
	mr := e.Store.MeshRenderer(id)
	require.NotNil(t, mf)
	require.NotNil(t, mr)
	assert.Nil(t, mf.Mesh)
	assert.Nil(t, mr.Shader)
	assert.Nil(t, mr.Texture)
	assert.Equal(t, "missing.obj", mf.Resource)
	assert.NotEmpty(t, e.Status)
}

func TestCameraMoveVector(t *testing.T) {
	assert.Equal(t, float32(0), moveVector(false, false, false, false).Len())

	f := moveVector(true, false, false, false)
	assert.InDelta(t, -1, f.Z(), 1e-6)

	// Opposite keys cancel.
	assert.Equal(t, float32(0), moveVector(true, true, false, false).Len())

	// Diagonals are unit length.
	d := moveVector(true, false, true, false)
	assert.InDelta(t, 1, d.Len(), 1e-6)
	assert.Less(t, d.Z(), float32(0))
	assert.Less(t, d.X(), float32(0))
}

func TestCameraVerticalVector(t *testing.T) {
	assert.Equal(t, float32(1), verticalVector(true, false).Y())
	assert.Equal(t, float32(-1), verticalVector(false, true).Y())
	assert.Equal(t, float32(0), verticalVector(true, true).Y())
}
