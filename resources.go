// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xr

import (
	"github.com/gogpu/gputypes"
)

const vertexShaderSource = `#version 300 es
uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
in vec3 vertexPosition;
in vec3 vertexColor;
out vec3 vColor;
void main() {
    vColor = vertexColor;
    gl_Position = projection * view * model * vec4(vertexPosition, 1.0);
}`

const fragmentShaderSource = `#version 300 es
precision highp float;
in vec3 vColor;
out vec4 fragmentColor;
void main() {
    fragmentColor = vec4(vColor, 1);
}`

// triangle is the static scene: interleaved position (xyz) and color (rgb).
var triangle = []float32{
	-0.7, -0.7, 0.0, 1, 0, 0,
	0.7, -0.7, 0.0, 0, 1, 0,
	0.0, 0.7, 0.0, 0, 0, 1,
}

// triangleStride is the byte stride of one interleaved vertex.
const triangleStride = (3 + 3) * 4

// triangleLayout describes triangle. ShaderLocation is the declared order;
// the bound location is resolved by name against the linked program.
var triangleLayout = gputypes.VertexBufferLayout{
	ArrayStride: triangleStride,
	StepMode:    gputypes.VertexStepModeVertex,
	Attributes: []gputypes.VertexAttribute{
		{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
		{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1}, // color
	},
}

// attributeNames are the shader names of triangleLayout's attributes, in order.
var attributeNames = [...]string{"vertexPosition", "vertexColor"}

// scenePrimitive is the fixed-function state the scene is drawn with.
var scenePrimitive = gputypes.PrimitiveState{
	Topology: gputypes.PrimitiveTopologyTriangleList,
	CullMode: gputypes.CullModeBack,
}

// clearColor is opaque black.
var clearColor = gputypes.Color{R: 0, G: 0, B: 0, A: 1}

// modelMatrix scales the scene by 2 about the origin. It is the same on
// every tick and for every eye.
var modelMatrix = Scale(2)

// RenderResources are the GPU objects created once before the first tick.
// They are read-only afterwards.
type RenderResources struct {
	Program    Program
	Model      Uniform
	View       Uniform
	Projection Uniform
	Vertices   Buffer
	Count      int32
	Primitive  gputypes.PrimitiveState
}

// setupResources compiles and links the scene program, enables depth test
// and face culling, uploads the triangle and configures its attributes.
//
// A link failure is returned as a *ShaderError; the returned resources are
// still complete so rendering continues degraded.
func setupResources(gl GraphicsContext) (*RenderResources, error) {
	log := Logger()

	program := gl.CreateProgram()
	vs := compileStage(gl, program, StageVertex, vertexShaderSource)
	fs := compileStage(gl, program, StageFragment, fragmentShaderSource)
	gl.LinkProgram(program)

	var serr *ShaderError
	if !gl.ProgramLinked(program) {
		serr = &ShaderError{LinkLog: gl.ProgramInfoLog(program)}
		for _, s := range [...]struct {
			stage  ShaderStage
			shader Shader
		}{{StageVertex, vs}, {StageFragment, fs}} {
			if !gl.ShaderCompiled(s.shader) {
				serr.Stages = append(serr.Stages, StageLog{Stage: s.stage, Log: gl.ShaderInfoLog(s.shader)})
			}
		}
		log.Warn("xr: shader program unusable", "err", serr.Error())
	}

	gl.Enable(CapDepthTest)
	if scenePrimitive.CullMode != gputypes.CullModeNone {
		gl.Enable(CapCullFace)
	}
	gl.UseProgram(program)

	res := &RenderResources{
		Program:    program,
		Model:      uniform(gl, program, "model"),
		View:       uniform(gl, program, "view"),
		Projection: uniform(gl, program, "projection"),
		Count:      int32(len(triangle) * 4 / triangleStride),
		Primitive:  scenePrimitive,
	}

	res.Vertices = gl.CreateBuffer()
	gl.BindBuffer(res.Vertices)
	gl.BufferData(triangle)

	stride := int32(triangleLayout.ArrayStride)
	for i, attr := range triangleLayout.Attributes {
		loc := gl.AttribLocation(program, attributeNames[i])
		if loc < 0 {
			log.Warn("xr: vertex attribute not found", "name", attributeNames[i], "declared", attr.ShaderLocation)
			continue
		}
		gl.EnableVertexAttribArray(uint32(loc))
		gl.VertexAttribPointer(uint32(loc), int32(attr.Format.Size()/4), stride, int32(attr.Offset))
	}

	if serr != nil {
		return res, serr
	}
	return res, nil
}

func compileStage(gl GraphicsContext, program Program, stage ShaderStage, src string) Shader {
	s := gl.CreateShader(stage)
	gl.ShaderSource(s, src)
	gl.CompileShader(s)
	gl.AttachShader(program, s)
	return s
}

func uniform(gl GraphicsContext, program Program, name string) Uniform {
	u, ok := gl.UniformLocation(program, name)
	if !ok {
		return NoUniform
	}
	return u
}
