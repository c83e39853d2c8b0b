// Package render implements the per-frame compositing pipeline: offscreen
// render targets, the scene/glare/blur pass chain, the icon snapshot
// sub-render and the frame driver that sequences them.
package render

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// Allocator abstracts the GL object lifecycle behind a render target so the
// commit/rollback logic of EnsureSize can be exercised without a GPU.
// Production code uses the GL-backed allocator.
type Allocator interface {
	CreateColorTexture(width, height int) (uint32, error)
	CreateDepthRenderbuffer(width, height int) (uint32, error)
	// CreateFramebuffer binds the attachments to a new framebuffer object,
	// declares all color attachments writable, and verifies completeness.
	CreateFramebuffer(colors []uint32, depth uint32) (uint32, error)
	DeleteTexture(id uint32)
	DeleteRenderbuffer(id uint32)
	DeleteFramebuffer(id uint32)
	BindFramebuffer(id uint32)
	SetViewport(width, height int)
}

// Target owns a framebuffer and its attachments, sized to a viewport.
// Attachment dimensions always match Width/Height; replacement on resize is
// atomic, so after a failed EnsureSize the previous target is still valid.
type Target struct {
	alloc      Allocator
	colorCount int

	colors []uint32
	depth  uint32
	fbo    uint32
	width  int
	height int
}

// NewTarget creates an empty render target with the given number of color
// attachments. Nothing is allocated until the first EnsureSize.
func NewTarget(colorCount int) *Target {
	return newTarget(glAllocator{}, colorCount)
}

func newTarget(alloc Allocator, colorCount int) *Target {
	return &Target{alloc: alloc, colorCount: colorCount}
}

// EnsureSize makes the target match the requested viewport dimensions.
// Zero-area requests are a no-op and retain the previous target. When the
// size changes, new attachments and a new framebuffer are allocated first;
// the old set is deleted only after the new one is complete. On failure the
// partial new set is released and the previous target stays in place.
func (t *Target) EnsureSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	if width == t.width && height == t.height && t.fbo != 0 {
		return nil
	}

	colors := make([]uint32, 0, t.colorCount)
	for i := 0; i < t.colorCount; i++ {
		id, err := t.alloc.CreateColorTexture(width, height)
		if err != nil {
			for _, c := range colors {
				t.alloc.DeleteTexture(c)
			}
			return fmt.Errorf("color attachment %d: %w", i, err)
		}
		colors = append(colors, id)
	}

	depth, err := t.alloc.CreateDepthRenderbuffer(width, height)
	if err != nil {
		for _, c := range colors {
			t.alloc.DeleteTexture(c)
		}
		return fmt.Errorf("depth attachment: %w", err)
	}

	fbo, err := t.alloc.CreateFramebuffer(colors, depth)
	if err != nil {
		for _, c := range colors {
			t.alloc.DeleteTexture(c)
		}
		t.alloc.DeleteRenderbuffer(depth)
		return fmt.Errorf("framebuffer: %w", err)
	}

	// New target is complete; now it is safe to drop the old one.
	t.release()
	t.colors = colors
	t.depth = depth
	t.fbo = fbo
	t.width = width
	t.height = height
	return nil
}

// Bind makes the target the current framebuffer and sets the viewport.
func (t *Target) Bind() {
	t.alloc.BindFramebuffer(t.fbo)
	t.alloc.SetViewport(t.width, t.height)
}

// Unbind restores the default framebuffer.
func (t *Target) Unbind() {
	t.alloc.BindFramebuffer(0)
}

// ColorTexture returns the texture handle of color attachment i.
func (t *Target) ColorTexture(i int) uint32 {
	if i < 0 || i >= len(t.colors) {
		return 0
	}
	return t.colors[i]
}

// Size returns the current attachment dimensions (0,0 before first allocation).
func (t *Target) Size() (int, int) {
	return t.width, t.height
}

// Valid reports whether the target has a complete framebuffer.
func (t *Target) Valid() bool {
	return t.fbo != 0
}

// Destroy frees all GPU objects owned by the target.
func (t *Target) Destroy() {
	t.release()
	t.width, t.height = 0, 0
}

func (t *Target) release() {
	if t.fbo != 0 {
		t.alloc.DeleteFramebuffer(t.fbo)
		t.fbo = 0
	}
	for _, c := range t.colors {
		t.alloc.DeleteTexture(c)
	}
	t.colors = nil
	if t.depth != 0 {
		t.alloc.DeleteRenderbuffer(t.depth)
		t.depth = 0
	}
}

// ── GL-backed allocator ───────────────────────────────────────────────────────

type glAllocator struct{}

func (glAllocator) CreateColorTexture(width, height int) (uint32, error) {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id, nil
}

func (glAllocator) CreateDepthRenderbuffer(width, height int) (uint32, error) {
	var id uint32
	gl.GenRenderbuffers(1, &id)
	gl.BindRenderbuffer(gl.RENDERBUFFER, id)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24,
		int32(width), int32(height))
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	return id, nil
}

func (glAllocator) CreateFramebuffer(colors []uint32, depth uint32) (uint32, error) {
	var fbo uint32
	gl.GenFramebuffers(1, &fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)

	bufs := make([]uint32, len(colors))
	for i, tex := range colors {
		att := uint32(gl.COLOR_ATTACHMENT0 + i)
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, att, gl.TEXTURE_2D, tex, 0)
		bufs[i] = att
	}
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, depth)
	if len(bufs) > 0 {
		gl.DrawBuffers(int32(len(bufs)), &bufs[0])
	}

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		gl.DeleteFramebuffers(1, &fbo)
		return 0, fmt.Errorf("framebuffer incomplete (0x%X)", status)
	}
	return fbo, nil
}

func (glAllocator) DeleteTexture(id uint32)      { gl.DeleteTextures(1, &id) }
func (glAllocator) DeleteRenderbuffer(id uint32) { gl.DeleteRenderbuffers(1, &id) }
func (glAllocator) DeleteFramebuffer(id uint32)  { gl.DeleteFramebuffers(1, &id) }
func (glAllocator) BindFramebuffer(id uint32)    { gl.BindFramebuffer(gl.FRAMEBUFFER, id) }
func (glAllocator) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}
