// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xr

import "github.com/gogpu/gputypes"

// Program, Shader and Buffer are graphics object names. Zero is invalid.
type (
	Program uint32
	Shader  uint32
	Buffer  uint32
)

// Uniform is a uniform location. NoUniform is ignored by uploads.
type Uniform int32

// NoUniform is the location of a uniform the program does not declare.
const NoUniform Uniform = -1

// ShaderStage selects the pipeline stage a shader is compiled for.
type ShaderStage uint8

const (
	StageVertex ShaderStage = iota
	StageFragment
)

// String returns the stage name used in diagnostics.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Capability is a fixed-function state toggled with Enable.
type Capability uint8

const (
	CapDepthTest Capability = iota + 1
	CapCullFace
)

// GraphicsContext is the subset of a GL-style rendering context the
// frame loop drives. Implementations are not safe for concurrent use.
type GraphicsContext interface {
	CreateShader(stage ShaderStage) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	ShaderCompiled(s Shader) bool
	ShaderInfoLog(s Shader) string

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	ProgramLinked(p Program) bool
	ProgramInfoLog(p Program) string
	UseProgram(p Program)

	// UniformLocation resolves name, or returns false if the program lacks it.
	UniformLocation(p Program, name string) (Uniform, bool)
	// AttribLocation resolves name, or returns -1 if the program lacks it.
	AttribLocation(p Program, name string) int32

	Enable(c Capability)

	CreateBuffer() Buffer
	BindBuffer(b Buffer)
	BufferData(data []float32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size, stride, offset int32)

	BindFramebuffer(fb Framebuffer)
	ClearColor(c gputypes.Color)
	ClearColorBuffer()
	Viewport(vp Viewport)
	UniformMatrix4fv(u Uniform, m Mat4)
	DrawArrays(topology gputypes.PrimitiveTopology, first, count int32)
}

// SurfaceFactory creates the drawing surface and its rendering context.
// When stereoCompatible is true the context must be usable as the target
// of a session render target.
type SurfaceFactory func(stereoCompatible bool) (GraphicsContext, error)
