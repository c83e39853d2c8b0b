package assets

import (
	"fmt"
	"weak"
)

// Cache deduplicates asset loads by resource path. Entries are weak: the
// cache never keeps an asset alive on its own, so assets with no remaining
// entity references become collectable and are reloaded on next request.
type Cache struct {
	meshes   map[string]weak.Pointer[Mesh]
	shaders  map[string]weak.Pointer[Shader]
	textures map[string]weak.Pointer[Texture]
}

func NewCache() *Cache {
	return &Cache{
		meshes:   make(map[string]weak.Pointer[Mesh]),
		shaders:  make(map[string]weak.Pointer[Shader]),
		textures: make(map[string]weak.Pointer[Texture]),
	}
}

// Mesh returns the shared mesh for a resource path, loading it on a miss.
func (c *Cache) Mesh(resource string) (*Mesh, error) {
	if wp, ok := c.meshes[resource]; ok {
		if m := wp.Value(); m != nil {
			return m, nil
		}
	}

	fmt.Printf("Loading mesh: %s\n", resource)
	m, err := LoadMesh(resource)
	if err != nil {
		return nil, err
	}
	c.meshes[resource] = weak.Make(m)
	return m, nil
}

// Shader returns the shared shader for a resource path, loading on a miss.
func (c *Cache) Shader(resource string) (*Shader, error) {
	if wp, ok := c.shaders[resource]; ok {
		if s := wp.Value(); s != nil {
			return s, nil
		}
	}

	fmt.Printf("Loading shader: %s\n", resource)
	s, err := LoadShader(resource)
	if err != nil {
		return nil, err
	}
	c.shaders[resource] = weak.Make(s)
	return s, nil
}

// Texture returns the shared texture for a resource path, loading on a miss.
func (c *Cache) Texture(resource string) (*Texture, error) {
	if wp, ok := c.textures[resource]; ok {
		if t := wp.Value(); t != nil {
			return t, nil
		}
	}

	fmt.Printf("Loading texture: %s\n", resource)
	t, err := LoadTexture(resource)
	if err != nil {
		return nil, err
	}
	c.textures[resource] = weak.Make(t)
	return t, nil
}
