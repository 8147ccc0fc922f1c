package opengl

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/apex/log"

	"gl-dispatch/core"
	"gl-dispatch/gl"
)

// ErrNoVertexArrays is returned when neither core nor any alias of the
// vertex array object entry points resolved.
var ErrNoVertexArrays = errors.New("opengl: vertex array objects are not supported by this context")

// Mesh is CPU-side vertex data drawn as triangles.
type Mesh struct {
	Vertices []core.Vertex
	Indices  []uint32
}

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
	HasIndices bool
}

// Renderer draws meshes through a dispatch-bound function table.
type Renderer struct {
	f         *gl.Functions
	version   gl.Version
	program   uint32
	tintLoc   int32
	gpuMeshes map[*Mesh]*GPUMesh
}

const (
	attribPosition = 0
	attribColor    = 1
)

// vertex shader: passthrough position, per-vertex colour
const vertBody = `
ATTR vec3 inPosition;
ATTR vec4 inColor;
VARYING_OUT vec4 fragColor;

void main() {
    gl_Position = vec4(inPosition, 1.0);
    fragColor   = inColor;
}
`

// fragment shader: vertex colour times tint
const fragBody = `
VARYING_IN vec4 fragColor;
uniform vec4 tint;
FRAG_DECL

void main() {
    FRAG_OUT = fragColor * tint;
}
`

// NewRenderer compiles the shaders for the context f is bound to. The
// context must be current.
func NewRenderer(f *gl.Functions) (*Renderer, error) {
	if !f.Has("GenVertexArrays") || !f.Has("BindVertexArray") || !f.Has("DeleteVertexArrays") {
		return nil, ErrNoVertexArrays
	}

	v, err := f.Version()
	if err != nil {
		return nil, fmt.Errorf("failed to query OpenGL version: %w", err)
	}
	log.WithFields(log.Fields{
		"version":  v.String(),
		"renderer": f.GetString(gl.RENDERER),
	}).Info("OpenGL context")

	vert, frag := shaderSources(v)
	prog, err := newProgram(f, vert, frag)
	if err != nil {
		return nil, fmt.Errorf("shader compile: %w", err)
	}

	r := &Renderer{
		f:         f,
		version:   v,
		program:   prog,
		tintLoc:   f.GetUniformLocation(prog, "tint"),
		gpuMeshes: make(map[*Mesh]*GPUMesh),
	}
	return r, nil
}

// Version is the GL version the renderer compiled its shaders for.
func (r *Renderer) Version() gl.Version {
	return r.version
}

// SetViewport resizes the OpenGL viewport.
func (r *Renderer) SetViewport(width, height int) {
	r.f.Viewport(0, 0, int32(width), int32(height))
}

// BeginFrame clears the framebuffer with the given colour.
func (r *Renderer) BeginFrame(clear core.Color) {
	r.f.ClearColor(clear.R, clear.G, clear.B, clear.A)
	r.f.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawMesh uploads mesh data on first use, then draws it tinted.
func (r *Renderer) DrawMesh(mesh *Mesh, tint core.Color) {
	gpu := r.ensureUploaded(mesh)
	if gpu == nil {
		return
	}

	r.f.UseProgram(r.program)
	r.f.Uniform4f(r.tintLoc, tint.R, tint.G, tint.B, tint.A)

	r.f.BindVertexArray(gpu.VAO)
	if gpu.HasIndices {
		r.f.DrawElements(gl.TRIANGLES, gpu.IndexCount, gl.UNSIGNED_INT, 0)
	} else {
		r.f.DrawArrays(gl.TRIANGLES, 0, int32(len(mesh.Vertices)))
	}
	r.f.BindVertexArray(0)
}

// ReadPixel returns the RGBA8 value of the framebuffer at x, y.
func (r *Renderer) ReadPixel(x, y int) [4]uint8 {
	var px [4]uint8
	r.f.ReadPixels(int32(x), int32(y), 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&px[0]))
	return px
}

// CheckError returns the first pending GL error, if any.
func (r *Renderer) CheckError() error {
	if code := r.f.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("opengl: error 0x%04X", code)
	}
	return nil
}

// ReleaseMesh frees GPU buffers for the given mesh.
func (r *Renderer) ReleaseMesh(mesh *Mesh) {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		r.f.DeleteVertexArray(gpu.VAO)
		r.f.DeleteBuffer(gpu.VBO)
		if gpu.HasIndices {
			r.f.DeleteBuffer(gpu.EBO)
		}
		delete(r.gpuMeshes, mesh)
	}
}

// Destroy releases all GPU resources.
func (r *Renderer) Destroy() {
	for mesh := range r.gpuMeshes {
		r.ReleaseMesh(mesh)
	}
	r.f.DeleteProgram(r.program)
}

// ensureUploaded uploads vertex/index data if not already done.
func (r *Renderer) ensureUploaded(mesh *Mesh) *GPUMesh {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		return gpu
	}
	if len(mesh.Vertices) == 0 {
		return nil
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))

	gpu := &GPUMesh{
		IndexCount: int32(len(mesh.Indices)),
		HasIndices: len(mesh.Indices) > 0,
	}

	gpu.VAO = r.f.GenVertexArray()
	gpu.VBO = r.f.GenBuffer()
	r.f.BindVertexArray(gpu.VAO)

	r.f.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	r.f.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*int(stride),
		unsafe.Pointer(&mesh.Vertices[0]),
		gl.STATIC_DRAW)

	var v core.Vertex
	r.f.EnableVertexAttribArray(attribPosition)
	r.f.VertexAttribPointer(attribPosition, 3, gl.FLOAT, false, stride, unsafe.Offsetof(v.Position))
	r.f.EnableVertexAttribArray(attribColor)
	r.f.VertexAttribPointer(attribColor, 4, gl.FLOAT, false, stride, unsafe.Offsetof(v.Color))

	if gpu.HasIndices {
		gpu.EBO = r.f.GenBuffer()
		r.f.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
		r.f.BufferData(gl.ELEMENT_ARRAY_BUFFER,
			len(mesh.Indices)*4,
			unsafe.Pointer(&mesh.Indices[0]),
			gl.STATIC_DRAW)
	}

	r.f.BindVertexArray(0)

	r.gpuMeshes[mesh] = gpu
	return gpu
}

// ── shader helpers ────────────────────────────────────────────────────────────

func newProgram(f *gl.Functions, vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(f, vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(f, fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		f.DeleteShader(vert)
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := f.CreateProgram()
	f.AttachShader(prog, vert)
	f.AttachShader(prog, frag)
	// Fixed locations so legacy GLSL without layout qualifiers matches the VAO.
	f.BindAttribLocation(prog, attribPosition, "inPosition")
	f.BindAttribLocation(prog, attribColor, "inColor")
	f.LinkProgram(prog)

	f.DeleteShader(vert)
	f.DeleteShader(frag)

	if f.GetProgrami(prog, gl.LINK_STATUS) == gl.FALSE {
		infoLog := f.GetProgramInfoLog(prog)
		f.DeleteProgram(prog)
		return 0, fmt.Errorf("link failed: %v", infoLog)
	}
	return prog, nil
}

func compileShader(f *gl.Functions, src string, shaderType uint32) (uint32, error) {
	shader := f.CreateShader(shaderType)
	f.ShaderSource(shader, src)
	f.CompileShader(shader)

	if f.GetShaderi(shader, gl.COMPILE_STATUS) == gl.FALSE {
		infoLog := f.GetShaderInfoLog(shader)
		f.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %v", infoLog)
	}
	return shader, nil
}
