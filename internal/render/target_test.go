package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAllocator tracks live GL objects so tests can assert on leaks and on
// the atomic-replacement behavior of EnsureSize.
type fakeAllocator struct {
	next uint32

	liveTextures      map[uint32]sizeOf
	liveRenderbuffers map[uint32]sizeOf
	liveFramebuffers  map[uint32]bool

	bound uint32

	failTextureAfter int // fail the Nth texture creation (1-based), 0 = never
	failFramebuffer  bool
	texturesCreated  int
}

type sizeOf struct{ w, h int }

func newFakeAllocator() *fakeAllocator {
	return &fakeAllocator{
		liveTextures:      make(map[uint32]sizeOf),
		liveRenderbuffers: make(map[uint32]sizeOf),
		liveFramebuffers:  make(map[uint32]bool),
	}
}

func (f *fakeAllocator) CreateColorTexture(w, h int) (uint32, error) {
	f.texturesCreated++
	if f.failTextureAfter != 0 && f.texturesCreated >= f.failTextureAfter {
		return 0, errors.New("out of memory")
	}
	f.next++
	f.liveTextures[f.next] = sizeOf{w, h}
	return f.next, nil
}

func (f *fakeAllocator) CreateDepthRenderbuffer(w, h int) (uint32, error) {
	f.next++
	f.liveRenderbuffers[f.next] = sizeOf{w, h}
	return f.next, nil
}

func (f *fakeAllocator) CreateFramebuffer(colors []uint32, depth uint32) (uint32, error) {
	if f.failFramebuffer {
		return 0, errors.New("framebuffer incomplete")
	}
	f.next++
	f.liveFramebuffers[f.next] = true
	return f.next, nil
}

func (f *fakeAllocator) DeleteTexture(id uint32)      { delete(f.liveTextures, id) }
func (f *fakeAllocator) DeleteRenderbuffer(id uint32) { delete(f.liveRenderbuffers, id) }
func (f *fakeAllocator) DeleteFramebuffer(id uint32)  { delete(f.liveFramebuffers, id) }
func (f *fakeAllocator) BindFramebuffer(id uint32)    { f.bound = id }
func (f *fakeAllocator) SetViewport(w, h int)         {}

func TestTargetEnsureSizeAllocatesExactDimensions(t *testing.T) {
	alloc := newFakeAllocator()
	tgt := newTarget(alloc, 2)

	require.NoError(t, tgt.EnsureSize(800, 600))

	w, h := tgt.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.True(t, tgt.Valid())
	assert.Len(t, alloc.liveTextures, 2)
	assert.Len(t, alloc.liveRenderbuffers, 1)
	assert.Len(t, alloc.liveFramebuffers, 1)
	for _, s := range alloc.liveTextures {
		assert.Equal(t, sizeOf{800, 600}, s)
	}
}

func TestTargetEnsureSizeSameSizeIsNoop(t *testing.T) {
	alloc := newFakeAllocator()
	tgt := newTarget(alloc, 2)

	require.NoError(t, tgt.EnsureSize(800, 600))
	fbo := tgt.fbo
	tex := tgt.ColorTexture(0)

	require.NoError(t, tgt.EnsureSize(800, 600))
	assert.Equal(t, fbo, tgt.fbo)
	assert.Equal(t, tex, tgt.ColorTexture(0))
}

func TestTargetEnsureSizeZeroAreaKeepsPrevious(t *testing.T) {
	alloc := newFakeAllocator()
	tgt := newTarget(alloc, 2)

	require.NoError(t, tgt.EnsureSize(800, 600))
	fbo := tgt.fbo

	require.NoError(t, tgt.EnsureSize(0, 0))
	require.NoError(t, tgt.EnsureSize(-5, 300))

	w, h := tgt.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Equal(t, fbo, tgt.fbo)
}

func TestTargetResizeSequenceNeverLeaks(t *testing.T) {
	alloc := newFakeAllocator()
	tgt := newTarget(alloc, 2)

	// Startup at zero, first real size, minimized, then a different size.
	require.NoError(t, tgt.EnsureSize(0, 0))
	require.NoError(t, tgt.EnsureSize(800, 600))
	require.NoError(t, tgt.EnsureSize(0, 0))
	require.NoError(t, tgt.EnsureSize(1024, 768))

	w, h := tgt.Size()
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)

	// Exactly one generation of objects alive.
	assert.Len(t, alloc.liveTextures, 2)
	assert.Len(t, alloc.liveRenderbuffers, 1)
	assert.Len(t, alloc.liveFramebuffers, 1)
	for _, s := range alloc.liveTextures {
		assert.Equal(t, sizeOf{1024, 768}, s)
	}

	tgt.Destroy()
	assert.Empty(t, alloc.liveTextures)
	assert.Empty(t, alloc.liveRenderbuffers)
	assert.Empty(t, alloc.liveFramebuffers)
	assert.False(t, tgt.Valid())
}

func TestTargetResizeFailureKeepsOldTarget(t *testing.T) {
	alloc := newFakeAllocator()
	tgt := newTarget(alloc, 2)

	require.NoError(t, tgt.EnsureSize(800, 600))
	oldFBO := tgt.fbo
	oldTex := tgt.ColorTexture(0)

	// Second texture of the next generation fails.
	alloc.failTextureAfter = 4
	err := tgt.EnsureSize(1920, 1080)
	require.Error(t, err)

	w, h := tgt.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Equal(t, oldFBO, tgt.fbo)
	assert.Equal(t, oldTex, tgt.ColorTexture(0))

	// The partial new generation was rolled back.
	assert.Len(t, alloc.liveTextures, 2)
	assert.Len(t, alloc.liveRenderbuffers, 1)
	assert.Len(t, alloc.liveFramebuffers, 1)
}

func TestTargetFramebufferFailureRollsBackAttachments(t *testing.T) {
	alloc := newFakeAllocator()
	tgt := newTarget(alloc, 2)

	alloc.failFramebuffer = true
	err := tgt.EnsureSize(640, 480)
	require.Error(t, err)

	assert.False(t, tgt.Valid())
	assert.Empty(t, alloc.liveTextures)
	assert.Empty(t, alloc.liveRenderbuffers)
	assert.Empty(t, alloc.liveFramebuffers)
}

func TestTargetBindUnbind(t *testing.T) {
	alloc := newFakeAllocator()
	tgt := newTarget(alloc, 1)
	require.NoError(t, tgt.EnsureSize(64, 64))

	tgt.Bind()
	assert.Equal(t, tgt.fbo, alloc.bound)
	tgt.Unbind()
	assert.Equal(t, uint32(0), alloc.bound)
}

func TestTargetColorTextureOutOfRange(t *testing.T) {
	tgt := newTarget(newFakeAllocator(), 1)
	assert.Equal(t, uint32(0), tgt.ColorTexture(0))
	require.NoError(t, tgt.EnsureSize(32, 32))
	assert.Equal(t, uint32(0), tgt.ColorTexture(5))
	assert.NotEqual(t, uint32(0), tgt.ColorTexture(0))
}
