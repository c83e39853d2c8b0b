package assets

import (
	"fmt"
	"os"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Pass-selection defines injected when compiling the shared GLSL source as
// each stage.
const (
	vertexPassDefine   = "#define VERTEX_SHADER"
	fragmentPassDefine = "#define FRAGMENT_SHADER"
)

// cullDirective in a shader source disables back-face culling for meshes
// drawn with it (per-material state, restored after each draw).
const cullDirective = "// #cull off"

// Shader wraps a linked GL program compiled from a single GLSL source file.
// The source is compiled twice, once per stage, with a stage define injected
// after the #version line:
//
//	#ifdef VERTEX_SHADER
//	    ... vertex stage ...
//	#endif
//	#ifdef FRAGMENT_SHADER
//	    ... fragment stage ...
//	#endif
type Shader struct {
	Name string

	program        uint32
	cullsBackFaces bool
	uniforms       map[string]int32
}

// LoadShader reads a single-source GLSL file and compiles it.
func LoadShader(path string) (*Shader, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open shader %q: %w", path, err)
	}
	return NewShader(path, string(src))
}

// NewShader compiles an in-memory single-source shader.
func NewShader(name, source string) (*Shader, error) {
	vertSrc, fragSrc, err := SplitSource(source)
	if err != nil {
		return nil, fmt.Errorf("shader %q: %w", name, err)
	}

	prog, err := newProgram(vertSrc+"\x00", fragSrc+"\x00")
	if err != nil {
		return nil, fmt.Errorf("shader %q: %w", name, err)
	}

	return &Shader{
		Name:           name,
		program:        prog,
		cullsBackFaces: parseCull(source),
		uniforms:       make(map[string]int32),
	}, nil
}

// parseCull reports whether a shader source leaves back-face culling on
// (the default). The cull directive turns it off.
func parseCull(source string) bool {
	return !strings.Contains(source, cullDirective)
}

// SplitSource expands a single-source shader into per-stage sources by
// injecting the stage define directly after the #version line.
func SplitSource(source string) (vert, frag string, err error) {
	idx := strings.Index(source, "#version")
	if idx < 0 {
		return "", "", fmt.Errorf("missing #version directive")
	}
	nl := strings.IndexByte(source[idx:], '\n')
	if nl < 0 {
		return "", "", fmt.Errorf("nothing after #version directive")
	}
	split := idx + nl + 1

	head, body := source[:split], source[split:]
	vert = head + vertexPassDefine + "\n" + body
	frag = head + fragmentPassDefine + "\n" + body
	return vert, frag, nil
}

func (s *Shader) Bind() {
	gl.UseProgram(s.program)
}

// CullsBackFaces reports whether meshes drawn with this shader should have
// back-face culling enabled.
func (s *Shader) CullsBackFaces() bool {
	return s.cullsBackFaces
}

func (s *Shader) Destroy() {
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}

// uniformLoc resolves and caches a uniform location. Unknown names resolve to
// -1, which GL silently ignores.
func (s *Shader) uniformLoc(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.program, gl.Str(name+"\x00"))
	s.uniforms[name] = loc
	return loc
}

func (s *Shader) Uniform1i(name string, v int32) {
	gl.Uniform1i(s.uniformLoc(name), v)
}

func (s *Shader) Uniform1f(name string, v float32) {
	gl.Uniform1f(s.uniformLoc(name), v)
}

func (s *Shader) Uniform2f(name string, x, y float32) {
	gl.Uniform2f(s.uniformLoc(name), x, y)
}

func (s *Shader) UniformMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(s.uniformLoc(name), 1, false, &m[0])
}

// ── Compile helpers ───────────────────────────────────────────────────────────

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %v", log)
	}

	return shader, nil
}
