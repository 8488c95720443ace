// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xrsim

import (
	"code.hybscloud.com/xr"
	"github.com/gogpu/gputypes"
)

// Graphics call names recorded by Recorder.
const (
	OpBindFramebuffer  = "BindFramebuffer"
	OpClearColor       = "ClearColor"
	OpClear            = "Clear"
	OpViewport         = "Viewport"
	OpUniformMatrix4fv = "UniformMatrix4fv"
	OpDrawArrays       = "DrawArrays"
	OpEnable           = "Enable"
	OpEnableAttrib     = "EnableVertexAttribArray"
	OpAttribPointer    = "VertexAttribPointer"
	OpBufferData       = "BufferData"
)

// Call is one recorded graphics call.
type Call struct {
	Op   string
	Args []any
}

// Recorder is a graphics context that records the state-changing and
// drawing calls it receives. Object creation and queries are not recorded.
type Recorder struct {
	// Stereo is the flag the surface was created with.
	Stereo bool
	// CompileLogs fails compilation of the stages it has a log for.
	CompileLogs map[xr.ShaderStage]string
	// LinkLog fails linking when non-empty. Linking also fails when a
	// stage failed to compile.
	LinkLog string
	// Attribs and Uniforms are the locations the linked program reports.
	Attribs  map[string]int32
	Uniforms map[string]xr.Uniform

	calls  []Call
	names  uint32
	stages map[xr.Shader]xr.ShaderStage
	linked map[xr.Program]bool
}

// NewRecorder returns a recorder whose program declares the scene's
// attributes and uniforms in declaration order.
func NewRecorder() *Recorder {
	return &Recorder{
		Attribs:  map[string]int32{"vertexPosition": 0, "vertexColor": 1},
		Uniforms: map[string]xr.Uniform{"model": 0, "view": 1, "projection": 2},
		stages:   make(map[xr.Shader]xr.ShaderStage),
		linked:   make(map[xr.Program]bool),
	}
}

// Surfaces returns a surface factory handing out r.
func Surfaces(r *Recorder) xr.SurfaceFactory {
	return func(stereo bool) (xr.GraphicsContext, error) {
		r.Stereo = stereo
		return r, nil
	}
}

// Calls returns the recorded calls, in order.
func (r *Recorder) Calls() []Call {
	return append([]Call(nil), r.calls...)
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset forgets the recorded calls.
func (r *Recorder) Reset() {
	r.calls = r.calls[:0]
}

func (r *Recorder) record(op string, args ...any) {
	r.calls = append(r.calls, Call{Op: op, Args: args})
}

func (r *Recorder) name() uint32 {
	r.names++
	return r.names
}

// CreateShader implements xr.GraphicsContext.
func (r *Recorder) CreateShader(stage xr.ShaderStage) xr.Shader {
	s := xr.Shader(r.name())
	r.stages[s] = stage
	return s
}

// ShaderSource implements xr.GraphicsContext.
func (r *Recorder) ShaderSource(xr.Shader, string) {}

// CompileShader implements xr.GraphicsContext.
func (r *Recorder) CompileShader(xr.Shader) {}

// ShaderCompiled implements xr.GraphicsContext.
func (r *Recorder) ShaderCompiled(s xr.Shader) bool {
	return r.CompileLogs[r.stages[s]] == ""
}

// ShaderInfoLog implements xr.GraphicsContext.
func (r *Recorder) ShaderInfoLog(s xr.Shader) string {
	return r.CompileLogs[r.stages[s]]
}

// CreateProgram implements xr.GraphicsContext.
func (r *Recorder) CreateProgram() xr.Program {
	return xr.Program(r.name())
}

// AttachShader implements xr.GraphicsContext.
func (r *Recorder) AttachShader(xr.Program, xr.Shader) {}

// LinkProgram implements xr.GraphicsContext.
func (r *Recorder) LinkProgram(p xr.Program) {
	ok := r.LinkLog == ""
	for _, log := range r.CompileLogs {
		if log != "" {
			ok = false
		}
	}
	r.linked[p] = ok
}

// ProgramLinked implements xr.GraphicsContext.
func (r *Recorder) ProgramLinked(p xr.Program) bool {
	return r.linked[p]
}

// ProgramInfoLog implements xr.GraphicsContext.
func (r *Recorder) ProgramInfoLog(p xr.Program) string {
	if r.linked[p] {
		return ""
	}
	if r.LinkLog != "" {
		return r.LinkLog
	}
	return "one or more attached shaders failed to compile"
}

// UseProgram implements xr.GraphicsContext.
func (r *Recorder) UseProgram(xr.Program) {}

// UniformLocation implements xr.GraphicsContext.
func (r *Recorder) UniformLocation(p xr.Program, name string) (xr.Uniform, bool) {
	if !r.linked[p] {
		return xr.NoUniform, false
	}
	u, ok := r.Uniforms[name]
	return u, ok
}

// AttribLocation implements xr.GraphicsContext.
func (r *Recorder) AttribLocation(p xr.Program, name string) int32 {
	if !r.linked[p] {
		return -1
	}
	loc, ok := r.Attribs[name]
	if !ok {
		return -1
	}
	return loc
}

// Enable implements xr.GraphicsContext.
func (r *Recorder) Enable(c xr.Capability) {
	r.record(OpEnable, c)
}

// CreateBuffer implements xr.GraphicsContext.
func (r *Recorder) CreateBuffer() xr.Buffer {
	return xr.Buffer(r.name())
}

// BindBuffer implements xr.GraphicsContext.
func (r *Recorder) BindBuffer(xr.Buffer) {}

// BufferData implements xr.GraphicsContext.
func (r *Recorder) BufferData(data []float32) {
	r.record(OpBufferData, append([]float32(nil), data...))
}

// EnableVertexAttribArray implements xr.GraphicsContext.
func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.record(OpEnableAttrib, index)
}

// VertexAttribPointer implements xr.GraphicsContext.
func (r *Recorder) VertexAttribPointer(index uint32, size, stride, offset int32) {
	r.record(OpAttribPointer, index, size, stride, offset)
}

// BindFramebuffer implements xr.GraphicsContext.
func (r *Recorder) BindFramebuffer(fb xr.Framebuffer) {
	r.record(OpBindFramebuffer, fb)
}

// ClearColor implements xr.GraphicsContext.
func (r *Recorder) ClearColor(c gputypes.Color) {
	r.record(OpClearColor, c)
}

// ClearColorBuffer implements xr.GraphicsContext.
func (r *Recorder) ClearColorBuffer() {
	r.record(OpClear)
}

// Viewport implements xr.GraphicsContext.
func (r *Recorder) Viewport(vp xr.Viewport) {
	r.record(OpViewport, vp)
}

// UniformMatrix4fv implements xr.GraphicsContext.
func (r *Recorder) UniformMatrix4fv(u xr.Uniform, m xr.Mat4) {
	r.record(OpUniformMatrix4fv, u, m)
}

// DrawArrays implements xr.GraphicsContext.
func (r *Recorder) DrawArrays(topology gputypes.PrimitiveTopology, first, count int32) {
	r.record(OpDrawArrays, topology, first, count)
}
