package learngl

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// BufferTarget selects the buffer binding point.
type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

// ClearMask selects which framebuffer planes Clear resets.
type ClearMask int

const (
	ClearColorBit ClearMask = 1 << iota
	ClearDepthBit
)

// Device is the subset of the OpenGL API used by the pipeline.
// Methods map one-to-one to GL entry points; handles are GL object names and
// uniform locations follow GL conventions (-1 means "not active").
type Device interface {
	// Shaders and programs.
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32, maxLen int) string
	DeleteShader(shader uint32)
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32, maxLen int) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// Uniforms.
	UniformLocation(program uint32, name string) int32
	UniformMatrix4(location int32, m mgl32.Mat4)
	Uniform1i(location int32, v int32)

	// Buffers and vertex arrays.
	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	GenBuffer() uint32
	BindBuffer(target BufferTarget, buffer uint32)
	BufferData(target BufferTarget, size int, data unsafe.Pointer)
	DeleteBuffer(buffer uint32)
	VertexAttribPointer(index uint32, size int32, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)

	// Textures.
	GenTexture() uint32
	ActiveTexture(unit uint32)
	BindTexture(texture uint32)
	TexParameters(params TextureParams)
	TexImageRGB(width, height int, pixels []byte)
	GenerateMipmap()
	DeleteTexture(texture uint32)

	// Frame state and drawing.
	Viewport(x, y, width, height int32)
	ClearColor(c Color)
	Clear(mask ClearMask)
	SetDepthTest(enabled bool)
	DrawArrays(first, count int32)
	DrawElements(count int32)
}
