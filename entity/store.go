// Package entity implements a flat attribute store for scene entities: an
// arena of slots addressed by generational ids, with typed component tables
// stored as parallel arrays. There is no hierarchy; a free-form tag string on
// the Info component routes entities between render passes.
package entity

import (
	"scene-editor/assets"
	"scene-editor/transform"
)

// ID is an opaque entity handle. The zero ID is never valid.
type ID struct {
	index uint32
	gen   uint32
}

// Nil is the invalid entity id.
var Nil = ID{}

// IconTag routes an entity out of the default scene pass and into the icon
// snapshot pass.
const IconTag = "__icon"

// Info is the base component every entity carries: its transform plus the
// editable name and routing tag.
type Info struct {
	Transform transform.Transform
	Name      string
	Tag       string
}

// MeshFilter references shared mesh geometry by resource path.
type MeshFilter struct {
	Mesh     *assets.Mesh
	Resource string
}

// MeshRenderer references the shader and texture used to draw the entity's
// mesh. All references are non-owning; assets live in the cache.
type MeshRenderer struct {
	Shader         *assets.Shader
	ShaderResource string

	Texture         *assets.Texture
	TextureResource string
}

type slot struct {
	gen   uint32
	alive bool

	hasInfo     bool
	hasFilter   bool
	hasRenderer bool
}

// Store owns all entities and their components.
//
// Component pointers returned by the accessors stay valid until the next
// Create call (the arena may grow); do not hold them across frames.
type Store struct {
	slots []slot
	free  []uint32

	info      []Info
	filters   []MeshFilter
	renderers []MeshRenderer
}

func NewStore() *Store {
	return &Store{}
}

// Create allocates a new entity with an Info component (name "unnamed",
// default tag) and returns its id.
func (s *Store) Create() ID {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
		s.slots[idx].alive = true
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, slot{alive: true})
		s.info = append(s.info, Info{})
		s.filters = append(s.filters, MeshFilter{})
		s.renderers = append(s.renderers, MeshRenderer{})
	}

	sl := &s.slots[idx]
	sl.hasInfo = true
	sl.hasFilter = false
	sl.hasRenderer = false
	s.info[idx] = Info{
		Transform: transform.New(),
		Name:      "unnamed",
		Tag:       "default",
	}
	return ID{index: idx, gen: sl.gen}
}

// Destroy releases the entity and recycles its slot. The generation is bumped
// so stale ids held elsewhere go invalid.
func (s *Store) Destroy(id ID) {
	if !s.Valid(id) {
		return
	}
	sl := &s.slots[id.index]
	sl.alive = false
	sl.gen++
	sl.hasInfo = false
	sl.hasFilter = false
	sl.hasRenderer = false
	s.info[id.index] = Info{}
	s.filters[id.index] = MeshFilter{}
	s.renderers[id.index] = MeshRenderer{}
	s.free = append(s.free, id.index)
}

// Valid reports whether id refers to a live entity.
func (s *Store) Valid(id ID) bool {
	return int(id.index) < len(s.slots) &&
		s.slots[id.index].alive &&
		s.slots[id.index].gen == id.gen
}

// Count returns the number of live entities.
func (s *Store) Count() int {
	n := 0
	for i := range s.slots {
		if s.slots[i].alive {
			n++
		}
	}
	return n
}

// Info returns the entity's Info component, or nil if the id is invalid.
func (s *Store) Info(id ID) *Info {
	if !s.Valid(id) || !s.slots[id.index].hasInfo {
		return nil
	}
	return &s.info[id.index]
}

// MeshFilter returns the entity's MeshFilter, or nil if absent.
func (s *Store) MeshFilter(id ID) *MeshFilter {
	if !s.Valid(id) || !s.slots[id.index].hasFilter {
		return nil
	}
	return &s.filters[id.index]
}

// AddMeshFilter creates (or returns the existing) MeshFilter for the entity.
func (s *Store) AddMeshFilter(id ID) *MeshFilter {
	if !s.Valid(id) {
		return nil
	}
	s.slots[id.index].hasFilter = true
	return &s.filters[id.index]
}

// MeshRenderer returns the entity's MeshRenderer, or nil if absent.
func (s *Store) MeshRenderer(id ID) *MeshRenderer {
	if !s.Valid(id) || !s.slots[id.index].hasRenderer {
		return nil
	}
	return &s.renderers[id.index]
}

// AddMeshRenderer creates (or returns the existing) MeshRenderer.
func (s *Store) AddMeshRenderer(id ID) *MeshRenderer {
	if !s.Valid(id) {
		return nil
	}
	s.slots[id.index].hasRenderer = true
	return &s.renderers[id.index]
}

// Each calls fn for every live entity.
func (s *Store) Each(fn func(ID)) {
	for i := range s.slots {
		if s.slots[i].alive {
			fn(ID{index: uint32(i), gen: s.slots[i].gen})
		}
	}
}

// EachRenderable iterates entities carrying all three of Info, MeshFilter and
// MeshRenderer. Asset references may still be nil; render passes decide
// whether such entities are drawable.
func (s *Store) EachRenderable(fn func(ID, *Info, *MeshFilter, *MeshRenderer)) {
	for i := range s.slots {
		sl := &s.slots[i]
		if !sl.alive || !sl.hasInfo || !sl.hasFilter || !sl.hasRenderer {
			continue
		}
		fn(ID{index: uint32(i), gen: sl.gen}, &s.info[i], &s.filters[i], &s.renderers[i])
	}
}
