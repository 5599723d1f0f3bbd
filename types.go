package learngl

import (
	"errors"
	"fmt"
)

// ErrInvalidLayout is returned when a VertexLayout or mesh buffer does not describe
// a consistent vertex format.
var ErrInvalidLayout = errors.New("invalid vertex layout")

// float32Size is the size in bytes of one vertex component.
const float32Size = 4

// ShaderSource holds the vertex and fragment stage text of one program.
type ShaderSource struct {
	Vertex   string
	Fragment string
}

// Stage identifies a shader stage.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

// String returns the lower-case stage name.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// VertexAttrib describes one shader input inside an interleaved float buffer.
type VertexAttrib struct {
	Index  uint32 // layout (location = Index)
	Size   int32  // component count, 1..4
	Offset int    // offset in floats from the start of the vertex
}

// VertexLayout is the ordered attribute list of an interleaved vertex.
// It must match the shader's `in` declarations; nothing checks that at runtime.
type VertexLayout struct {
	Attribs []VertexAttrib
}

// Layout is shorthand for building a tightly packed layout from component
// counts. Slot indices follow argument order.
//
//	Layout(3, 3, 2) // position, color, texcoord
func Layout(sizes ...int32) VertexLayout {
	l := VertexLayout{Attribs: make([]VertexAttrib, 0, len(sizes))}
	offset := 0
	for i, size := range sizes {
		l.Attribs = append(l.Attribs, VertexAttrib{Index: uint32(i), Size: size, Offset: offset})
		offset += int(size)
	}
	return l
}

// FloatsPerVertex returns the number of float32 components in one vertex.
func (l VertexLayout) FloatsPerVertex() int {
	n := 0
	for _, a := range l.Attribs {
		if end := a.Offset + int(a.Size); end > n {
			n = end
		}
	}
	return n
}

// Stride returns the size of one vertex in bytes.
func (l VertexLayout) Stride() int {
	return l.FloatsPerVertex() * float32Size
}

// Validate checks component counts, slot uniqueness and that offsets are
// ascending without overlap.
func (l VertexLayout) Validate() error {
	if len(l.Attribs) == 0 {
		return fmt.Errorf("%w: no attributes", ErrInvalidLayout)
	}
	seen := make(map[uint32]bool, len(l.Attribs))
	next := 0
	for _, a := range l.Attribs {
		if a.Size < 1 || a.Size > 4 {
			return fmt.Errorf("%w: attribute %d has %d components", ErrInvalidLayout, a.Index, a.Size)
		}
		if seen[a.Index] {
			return fmt.Errorf("%w: duplicate attribute slot %d", ErrInvalidLayout, a.Index)
		}
		seen[a.Index] = true
		if a.Offset < next {
			return fmt.Errorf("%w: attribute %d overlaps the previous one", ErrInvalidLayout, a.Index)
		}
		next = a.Offset + int(a.Size)
	}
	return nil
}

// Mesh is static vertex data plus an optional index buffer.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

// VertexCount returns the number of whole vertices in the buffer.
func (m Mesh) VertexCount() int {
	n := m.Layout.FloatsPerVertex()
	if n == 0 {
		return 0
	}
	return len(m.Vertices) / n
}

// Indexed reports whether the mesh is drawn with an index buffer.
func (m Mesh) Indexed() bool {
	return len(m.Indices) > 0
}

// Color is an RGBA color with float components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// ClearColor is the background used by the exercises.
var ClearColor = Color{R: 0.2, G: 0.3, B: 0.3, A: 1.0}
