// Package editor holds the interactive editing layer: selection state, the
// fly camera and the viewport presenter the frame driver renders through.
package editor

import (
	"fmt"

	"scene-editor/assets"
	"scene-editor/entity"
	"scene-editor/internal/render"
)

// Editor is the mutable editing state shared across panels: the scene being
// edited, the current selection and the render parameters the inspector
// exposes.
type Editor struct {
	Store  *entity.Store
	Cache  *assets.Cache
	Params *render.Params

	Selected entity.ID
	Status   string
}

func New(store *entity.Store, cache *assets.Cache, params *render.Params) *Editor {
	return &Editor{
		Store:    store,
		Cache:    cache,
		Params:   params,
		Selected: entity.Nil,
	}
}

// Select makes id the current selection. Selecting an invalid id clears the
// selection instead.
func (e *Editor) Select(id entity.ID) {
	if !e.Store.Valid(id) {
		e.Selected = entity.Nil
		return
	}
	e.Selected = id
}

// Selection returns the selected entity's Info, or nil when nothing valid is
// selected. A selection whose entity has been destroyed reads as empty.
func (e *Editor) Selection() *entity.Info {
	if !e.Store.Valid(e.Selected) {
		return nil
	}
	return e.Store.Info(e.Selected)
}

// Rename sets the selected entity's display name. No-op without a selection.
func (e *Editor) Rename(name string) {
	if info := e.Selection(); info != nil {
		info.Name = name
	}
}

// SetTag changes the selected entity's tag. Tagging an entity for the icon
// snapshot removes it from the scene pass on the next frame.
func (e *Editor) SetTag(tag string) {
	if info := e.Selection(); info != nil {
		info.Tag = tag
	}
}

// DeleteSelected destroys the selected entity and clears the selection.
func (e *Editor) DeleteSelected() {
	if e.Store.Valid(e.Selected) {
		e.Store.Destroy(e.Selected)
	}
	e.Selected = entity.Nil
}

// Spawn creates an entity with mesh, shader and texture resolved through the
// asset cache. A failed asset load logs and leaves that reference nil; the
// entity still exists and the scene pass skips it until the asset resolves.
func (e *Editor) Spawn(name, tag, meshPath, shaderPath, texturePath string) entity.ID {
	id := e.Store.Create()
	info := e.Store.Info(id)
	info.Name = name
	info.Tag = tag

	mesh, err := e.Cache.Mesh(meshPath)
	if err != nil {
		fmt.Printf("spawn %q: %v\n", name, err)
		e.Status = fmt.Sprintf("failed to load %s", meshPath)
	}
	mf := e.Store.AddMeshFilter(id)
	mf.Mesh = mesh
	mf.Resource = meshPath

	shader, err := e.Cache.Shader(shaderPath)
	if err != nil {
		fmt.Printf("spawn %q: %v\n", name, err)
		e.Status = fmt.Sprintf("failed to load %s", shaderPath)
	}
	texture, err := e.Cache.Texture(texturePath)
	if err != nil {
		fmt.Printf("spawn %q: %v\n", name, err)
		e.Status = fmt.Sprintf("failed to load %s", texturePath)
	}
	mr := e.Store.AddMeshRenderer(id)
	mr.Shader = shader
	mr.ShaderResource = shaderPath
	mr.Texture = texture
	mr.TextureResource = texturePath
	return id
}
