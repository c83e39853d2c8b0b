package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// TextureWrap selects the sampling wrap mode.
type TextureWrap int32

const (
	WrapRepeat TextureWrap = gl.REPEAT
	WrapClamp  TextureWrap = gl.CLAMP_TO_EDGE
)

// TextureFilter selects the min/mag filter.
type TextureFilter int32

const (
	FilterNearest TextureFilter = gl.NEAREST
	FilterLinear  TextureFilter = gl.LINEAR
)

// TextureOptions control GPU sampling state at upload time.
type TextureOptions struct {
	Wrap    TextureWrap
	Min     TextureFilter
	Mag     TextureFilter
	Mipmaps bool
}

// DefaultTextureOptions returns repeat wrapping with linear filtering and
// mipmaps, the right choice for mesh albedo textures.
func DefaultTextureOptions() TextureOptions {
	return TextureOptions{
		Wrap:    WrapRepeat,
		Min:     FilterLinear,
		Mag:     FilterLinear,
		Mipmaps: true,
	}
}

// Texture holds CPU-side RGBA8 pixel data and, once uploaded, the GL texture
// object. Entities hold non-owning references; the cache owns the asset.
type Texture struct {
	Name   string
	Width  int
	Height int
	// Pixels in RGBA8 (4 bytes per pixel, row-major, top-to-bottom).
	Pixels []byte

	handle uint32
}

// LoadTexture reads a PNG or JPEG file from disk and returns a CPU-side
// texture. Upload happens lazily on first Bind.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}
	return fromImage(path, img), nil
}

func fromImage(name string, img image.Image) *Texture {
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x, y, img.At(x, y))
		}
	}
	return &Texture{
		Name:   name,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pixels: rgba.Pix,
	}
}

// NewSolidTexture creates a 1x1 texture with the given RGBA color (0–255).
func NewSolidTexture(name string, r, g, b, a uint8) *Texture {
	return &Texture{
		Name:   name,
		Width:  1,
		Height: 1,
		Pixels: []byte{r, g, b, a},
	}
}

// Upload pushes the pixel data to the GPU. Requires a current GL context.
func (t *Texture) Upload(opts TextureOptions) error {
	if t.handle != 0 {
		return nil
	}
	if len(t.Pixels) < t.Width*t.Height*4 {
		return fmt.Errorf("texture %q has no pixel data", t.Name)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int32(opts.Wrap))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, int32(opts.Wrap))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int32(opts.Min))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, int32(opts.Mag))

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(t.Width), int32(t.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&t.Pixels[0]))
	if opts.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)
	t.handle = id
	return nil
}

// Bind makes the texture current on the active texture unit, uploading with
// default options on first use.
func (t *Texture) Bind() {
	if t.handle == 0 {
		if err := t.Upload(DefaultTextureOptions()); err != nil {
			return
		}
	}
	gl.BindTexture(gl.TEXTURE_2D, t.handle)
}

// Handle returns the GL texture object, 0 before upload.
func (t *Texture) Handle() uint32 {
	return t.handle
}

// Target returns the GL texture target.
func (t *Texture) Target() uint32 {
	return gl.TEXTURE_2D
}

// Destroy frees the GPU texture.
func (t *Texture) Destroy() {
	if t.handle != 0 {
		gl.DeleteTextures(1, &t.handle)
		t.handle = 0
	}
}
