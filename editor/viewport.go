package editor

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"scene-editor/assets"
	"scene-editor/core"
)

const presentShaderSource = `#version 410 core

#ifdef VERTEX_SHADER
layout(location = 0) in vec3 inPosition;
layout(location = 2) in vec2 inUV;

out vec2 fragUV;

void main() {
    gl_Position = vec4(inPosition.xy, 0.0, 1.0);
    fragUV = inUV;
}
#endif

#ifdef FRAGMENT_SHADER
in vec2 fragUV;

uniform sampler2D uImage;

out vec4 outColor;

void main() {
    outColor = texture(uImage, fragUV);
}
#endif
`

// Viewport presents the composited render target to the window. It fills the
// whole framebuffer; panel chrome lives in the window title and status line.
// Implements render.UI.
type Viewport struct {
	win   *core.Window
	state *Editor

	shader *assets.Shader
	quad   *assets.Mesh

	texture uint32
	width   int
	height  int
}

// NewViewport compiles the presentation shader. Requires a current GL context.
func NewViewport(win *core.Window, state *Editor) (*Viewport, error) {
	shader, err := assets.NewShader("present", presentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("present shader: %w", err)
	}
	return &Viewport{
		win:    win,
		state:  state,
		shader: shader,
		quad:   assets.NewScreenQuad(),
	}, nil
}

// Begin starts a UI frame.
func (v *Viewport) Begin() {
	v.texture = 0
}

// ViewportSize reports the drawable area available to the 3D view.
func (v *Viewport) ViewportSize() (int, int) {
	return v.win.GetFramebufferSize()
}

// Present records the composited texture for this frame.
func (v *Viewport) Present(texture uint32, width, height int) {
	v.texture = texture
	v.width = width
	v.height = height
}

// Render blits the presented texture to the default framebuffer. With no
// texture presented (minimized window or a failed resize) it clears instead
// of showing stale attachments.
func (v *Viewport) Render() {
	w, h := v.win.GetFramebufferSize()
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if v.texture == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	v.shader.Bind()
	v.shader.Uniform1i("uImage", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, v.texture)
	v.quad.Draw()
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.Enable(gl.DEPTH_TEST)
}

// Destroy frees the presenter's GPU resources.
func (v *Viewport) Destroy() {
	v.shader.Destroy()
	v.quad.Destroy()
}
