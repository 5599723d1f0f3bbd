// Package gltest provides a software stand-in for the OpenGL device and the
// window so the pipeline can be exercised without a GPU.
//
// The device "compiles" sources with a few GLSL rules: a #version directive,
// a main entry point, balanced braces and no #error directive. Linking
// requires every fragment `in` to be written by a vertex `out` of the same
// type. Every call is recorded.
package gltest

import (
	"fmt"
	"regexp"
	"strings"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/learngl"
)

// Call is one recorded device call.
type Call struct {
	Name string
	Args []any
}

// DrawCall is one recorded draw.
type DrawCall struct {
	Indexed bool
	First   int32
	Count   int32
	VAO     uint32
	Program uint32
	Indices []uint32 // element indices referenced by an indexed draw
}

// UniformSet is one recorded uniform upload.
type UniformSet struct {
	Program  uint32
	Location int32
	Name     string
	Mat4     mgl32.Mat4
	Int      int32
	IsMat4   bool
}

// TextureState is the recorded state of a texture object.
type TextureState struct {
	Params        learngl.TextureParams
	Width, Height int
	Bytes         int
	Mipmapped     bool
}

type shaderObj struct {
	stage    learngl.Stage
	source   string
	compiled bool
	log      string
}

type programObj struct {
	shaders  []uint32
	linked   bool
	log      string
	uniforms map[string]int32
}

// Device is a recording learngl.Device.
type Device struct {
	Calls    []Call
	Draws    []DrawCall
	Uniforms []UniformSet
	Textures map[uint32]*TextureState
	Buffers  map[uint32][]byte

	// Live object names, removed on delete.
	LiveShaders  map[uint32]bool
	LivePrograms map[uint32]bool
	LiveVAOs     map[uint32]bool

	CurrentProgram uint32
	BoundVAO       uint32
	DepthTest      bool

	shaders       map[uint32]*shaderObj
	programs      map[uint32]*programObj
	vaoElements   map[uint32]uint32 // vao -> element buffer
	boundBuffers  map[learngl.BufferTarget]uint32
	boundTexture  uint32
	activeUnit    uint32
	locationNames map[int32]string
	next          uint32
}

// NewDevice returns an empty device.
func NewDevice() *Device {
	return &Device{
		Textures:      make(map[uint32]*TextureState),
		Buffers:       make(map[uint32][]byte),
		LiveShaders:   make(map[uint32]bool),
		LivePrograms:  make(map[uint32]bool),
		LiveVAOs:      make(map[uint32]bool),
		shaders:       make(map[uint32]*shaderObj),
		programs:      make(map[uint32]*programObj),
		vaoElements:   make(map[uint32]uint32),
		boundBuffers:  make(map[learngl.BufferTarget]uint32),
		locationNames: make(map[int32]string),
	}
}

var _ learngl.Device = (*Device)(nil)

func (d *Device) record(name string, args ...any) {
	d.Calls = append(d.Calls, Call{Name: name, Args: args})
}

func (d *Device) gen() uint32 {
	d.next++
	return d.next
}

// Count returns how many times the named call was made.
func (d *Device) Count(name string) int {
	n := 0
	for _, c := range d.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls, draws and uniform uploads but keeps objects.
func (d *Device) Reset() {
	d.Calls = nil
	d.Draws = nil
	d.Uniforms = nil
}

// UniformsNamed returns the uploads made to the named uniform, in order.
func (d *Device) UniformsNamed(name string) []UniformSet {
	var out []UniformSet
	for _, u := range d.Uniforms {
		if u.Name == name {
			out = append(out, u)
		}
	}
	return out
}

func (d *Device) CreateShader(stage learngl.Stage) uint32 {
	id := d.gen()
	d.shaders[id] = &shaderObj{stage: stage}
	d.LiveShaders[id] = true
	d.record("CreateShader", stage)
	return id
}

func (d *Device) ShaderSource(shader uint32, source string) {
	d.record("ShaderSource", shader)
	if s, ok := d.shaders[shader]; ok {
		s.source = source
	}
}

func (d *Device) CompileShader(shader uint32) {
	d.record("CompileShader", shader)
	s, ok := d.shaders[shader]
	if !ok {
		return
	}
	s.log = checkSource(s.source)
	s.compiled = s.log == ""
}

func (d *Device) ShaderCompiled(shader uint32) bool {
	s, ok := d.shaders[shader]
	return ok && s.compiled
}

func (d *Device) ShaderInfoLog(shader uint32, maxLen int) string {
	s, ok := d.shaders[shader]
	if !ok {
		return ""
	}
	return truncate(s.log, maxLen)
}

func (d *Device) DeleteShader(shader uint32) {
	d.record("DeleteShader", shader)
	delete(d.LiveShaders, shader)
}

func (d *Device) CreateProgram() uint32 {
	id := d.gen()
	d.programs[id] = &programObj{}
	d.LivePrograms[id] = true
	d.record("CreateProgram")
	return id
}

func (d *Device) AttachShader(program, shader uint32) {
	d.record("AttachShader", program, shader)
	if p, ok := d.programs[program]; ok {
		p.shaders = append(p.shaders, shader)
	}
}

func (d *Device) LinkProgram(program uint32) {
	d.record("LinkProgram", program)
	p, ok := d.programs[program]
	if !ok {
		return
	}
	var vs, fs *shaderObj
	for _, id := range p.shaders {
		s := d.shaders[id]
		if s == nil || !s.compiled {
			p.log = "error: program has an uncompiled shader attached"
			return
		}
		if s.stage == learngl.StageVertex {
			vs = s
		} else {
			fs = s
		}
	}
	if vs == nil || fs == nil {
		p.log = "error: program needs a vertex and a fragment shader"
		return
	}
	if msg := checkInterface(vs.source, fs.source); msg != "" {
		p.log = msg
		return
	}
	p.linked = true
	p.uniforms = make(map[string]int32)
	for _, src := range []string{vs.source, fs.source} {
		for _, m := range uniformDecl.FindAllStringSubmatch(src, -1) {
			if _, ok := p.uniforms[m[2]]; !ok {
				loc := int32(len(p.uniforms))
				p.uniforms[m[2]] = loc
			}
		}
	}
}

func (d *Device) ProgramLinked(program uint32) bool {
	p, ok := d.programs[program]
	return ok && p.linked
}

func (d *Device) ProgramInfoLog(program uint32, maxLen int) string {
	p, ok := d.programs[program]
	if !ok {
		return ""
	}
	return truncate(p.log, maxLen)
}

func (d *Device) UseProgram(program uint32) {
	d.record("UseProgram", program)
	d.CurrentProgram = program
}

func (d *Device) DeleteProgram(program uint32) {
	d.record("DeleteProgram", program)
	delete(d.LivePrograms, program)
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	d.record("UniformLocation", program, name)
	p, ok := d.programs[program]
	if !ok || !p.linked {
		return -1
	}
	loc, ok := p.uniforms[name]
	if !ok {
		return -1
	}
	d.locationNames[loc] = name
	return loc
}

func (d *Device) uniformName(program uint32, loc int32) string {
	if p, ok := d.programs[program]; ok {
		for name, l := range p.uniforms {
			if l == loc {
				return name
			}
		}
	}
	return d.locationNames[loc]
}

func (d *Device) UniformMatrix4(location int32, m mgl32.Mat4) {
	d.record("UniformMatrix4", location)
	d.Uniforms = append(d.Uniforms, UniformSet{
		Program:  d.CurrentProgram,
		Location: location,
		Name:     d.uniformName(d.CurrentProgram, location),
		Mat4:     m,
		IsMat4:   true,
	})
}

func (d *Device) Uniform1i(location int32, v int32) {
	d.record("Uniform1i", location, v)
	d.Uniforms = append(d.Uniforms, UniformSet{
		Program:  d.CurrentProgram,
		Location: location,
		Name:     d.uniformName(d.CurrentProgram, location),
		Int:      v,
	})
}

func (d *Device) GenVertexArray() uint32 {
	id := d.gen()
	d.LiveVAOs[id] = true
	d.record("GenVertexArray")
	return id
}

func (d *Device) BindVertexArray(vao uint32) {
	d.record("BindVertexArray", vao)
	d.BoundVAO = vao
}

func (d *Device) DeleteVertexArray(vao uint32) {
	d.record("DeleteVertexArray", vao)
	delete(d.LiveVAOs, vao)
}

func (d *Device) GenBuffer() uint32 {
	d.record("GenBuffer")
	return d.gen()
}

func (d *Device) BindBuffer(target learngl.BufferTarget, buffer uint32) {
	d.record("BindBuffer", target, buffer)
	d.boundBuffers[target] = buffer
	if target == learngl.ElementArrayBuffer && d.BoundVAO != 0 {
		d.vaoElements[d.BoundVAO] = buffer
	}
}

func (d *Device) BufferData(target learngl.BufferTarget, size int, data unsafe.Pointer) {
	d.record("BufferData", target, size)
	buf := d.boundBuffers[target]
	if buf == 0 {
		return
	}
	b := make([]byte, size)
	if data != nil && size > 0 {
		copy(b, unsafe.Slice((*byte)(data), size))
	}
	d.Buffers[buf] = b
}

func (d *Device) DeleteBuffer(buffer uint32) {
	d.record("DeleteBuffer", buffer)
	delete(d.Buffers, buffer)
}

func (d *Device) VertexAttribPointer(index uint32, size int32, stride int32, offset uintptr) {
	d.record("VertexAttribPointer", index, size, stride, offset)
}

func (d *Device) EnableVertexAttribArray(index uint32) {
	d.record("EnableVertexAttribArray", index)
}

func (d *Device) GenTexture() uint32 {
	id := d.gen()
	d.Textures[id] = &TextureState{}
	d.record("GenTexture")
	return id
}

func (d *Device) ActiveTexture(unit uint32) {
	d.record("ActiveTexture", unit)
	d.activeUnit = unit
}

func (d *Device) BindTexture(texture uint32) {
	d.record("BindTexture", d.activeUnit, texture)
	d.boundTexture = texture
}

func (d *Device) TexParameters(params learngl.TextureParams) {
	d.record("TexParameters", params)
	if t, ok := d.Textures[d.boundTexture]; ok {
		t.Params = params
	}
}

func (d *Device) TexImageRGB(width, height int, pixels []byte) {
	d.record("TexImageRGB", width, height, len(pixels))
	if t, ok := d.Textures[d.boundTexture]; ok {
		t.Width, t.Height, t.Bytes = width, height, len(pixels)
	}
}

func (d *Device) GenerateMipmap() {
	d.record("GenerateMipmap")
	if t, ok := d.Textures[d.boundTexture]; ok {
		t.Mipmapped = true
	}
}

func (d *Device) DeleteTexture(texture uint32) {
	d.record("DeleteTexture", texture)
	delete(d.Textures, texture)
}

func (d *Device) Viewport(x, y, width, height int32) {
	d.record("Viewport", x, y, width, height)
}

func (d *Device) ClearColor(c learngl.Color) {
	d.record("ClearColor", c)
}

func (d *Device) Clear(mask learngl.ClearMask) {
	d.record("Clear", mask)
}

func (d *Device) SetDepthTest(enabled bool) {
	d.record("SetDepthTest", enabled)
	d.DepthTest = enabled
}

func (d *Device) DrawArrays(first, count int32) {
	d.record("DrawArrays", first, count)
	d.Draws = append(d.Draws, DrawCall{First: first, Count: count, VAO: d.BoundVAO, Program: d.CurrentProgram})
}

func (d *Device) DrawElements(count int32) {
	d.record("DrawElements", count)
	dc := DrawCall{Indexed: true, Count: count, VAO: d.BoundVAO, Program: d.CurrentProgram}
	if raw := d.Buffers[d.vaoElements[d.BoundVAO]]; len(raw) >= int(count)*4 {
		dc.Indices = unsafe.Slice((*uint32)(unsafe.Pointer(&raw[0])), count)
		dc.Indices = append([]uint32(nil), dc.Indices...)
	}
	d.Draws = append(d.Draws, dc)
}

var (
	inDecl      = regexp.MustCompile(`(?m)^\s*in\s+(\w+)\s+(\w+)\s*;`)
	outDecl     = regexp.MustCompile(`(?m)^\s*out\s+(\w+)\s+(\w+)\s*;`)
	uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+(\w+)\s+(\w+)\s*;`)
	errorDecl   = regexp.MustCompile(`(?m)^\s*#error\s*(.*)$`)
	mainDecl    = regexp.MustCompile(`\bvoid\s+main\s*\(\s*\)`)
)

// checkSource returns a compile log, empty when the source is accepted.
func checkSource(src string) string {
	if !strings.HasPrefix(strings.TrimSpace(src), "#version") {
		return "0:1(1): error: #version directive required"
	}
	if m := errorDecl.FindStringSubmatch(src); m != nil {
		return fmt.Sprintf("0:1(1): error: #error %s", m[1])
	}
	if !mainDecl.MatchString(src) {
		return "0:1(1): error: entry point main not defined"
	}
	depth := 0
	for i, r := range src {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
		}
		if depth < 0 {
			return fmt.Sprintf("0:%d(1): error: syntax error, unexpected '}'", strings.Count(src[:i], "\n")+1)
		}
	}
	if depth != 0 {
		return "0:1(1): error: syntax error, unexpected end of file"
	}
	return ""
}

// checkInterface returns a link log, empty when every fragment input is
// written by the vertex stage.
func checkInterface(vertex, fragment string) string {
	outs := make(map[string]string)
	for _, m := range outDecl.FindAllStringSubmatch(vertex, -1) {
		outs[m[2]] = m[1]
	}
	for _, m := range inDecl.FindAllStringSubmatch(fragment, -1) {
		typ, ok := outs[m[2]]
		if !ok {
			return fmt.Sprintf("error: fragment shader input `%s' has no matching vertex output", m[2])
		}
		if typ != m[1] {
			return fmt.Sprintf("error: `%s' declared as %s in vertex and %s in fragment", m[2], typ, m[1])
		}
	}
	return ""
}

func truncate(s string, n int) string {
	if n >= 0 && len(s) > n {
		return s[:n]
	}
	return s
}
