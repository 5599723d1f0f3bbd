package learngl

import (
	"fmt"
	"unsafe"
)

// MeshBuffers are the GPU objects of an uploaded Mesh.
type MeshBuffers struct {
	VAO, VBO, EBO uint32
	VertexCount   int32
	IndexCount    int32
	Stride        int32
	VertexBytes   int // bytes uploaded to the array buffer

	dev Device
}

// UploadMesh creates a vertex array for m and uploads its buffers.
// The vertex array is left unbound on return.
func UploadMesh(dev Device, m Mesh) (*MeshBuffers, error) {
	if err := m.Layout.Validate(); err != nil {
		return nil, err
	}
	perVertex := m.Layout.FloatsPerVertex()
	if len(m.Vertices) == 0 || len(m.Vertices)%perVertex != 0 {
		return nil, fmt.Errorf("%w: %d floats is not a multiple of %d", ErrInvalidLayout, len(m.Vertices), perVertex)
	}
	vertexCount := len(m.Vertices) / perVertex
	for _, idx := range m.Indices {
		if int(idx) >= vertexCount {
			return nil, fmt.Errorf("%w: index %d out of range for %d vertices", ErrInvalidLayout, idx, vertexCount)
		}
	}

	b := &MeshBuffers{
		VertexCount: int32(vertexCount),
		IndexCount:  int32(len(m.Indices)),
		Stride:      int32(m.Layout.Stride()),
		VertexBytes: vertexCount * m.Layout.Stride(),
		dev:         dev,
	}

	b.VAO = dev.GenVertexArray()
	dev.BindVertexArray(b.VAO)

	b.VBO = dev.GenBuffer()
	dev.BindBuffer(ArrayBuffer, b.VBO)
	dev.BufferData(ArrayBuffer, b.VertexBytes, unsafe.Pointer(&m.Vertices[0]))

	if m.Indexed() {
		// The element binding is recorded in the vertex array.
		b.EBO = dev.GenBuffer()
		dev.BindBuffer(ElementArrayBuffer, b.EBO)
		dev.BufferData(ElementArrayBuffer, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]))
	}

	for _, a := range m.Layout.Attribs {
		dev.VertexAttribPointer(a.Index, a.Size, b.Stride, uintptr(a.Offset*float32Size))
		dev.EnableVertexAttribArray(a.Index)
	}

	dev.BindBuffer(ArrayBuffer, 0)
	dev.BindVertexArray(0)

	logger.Debug("mesh uploaded", "vertices", vertexCount, "indices", len(m.Indices), "bytes", b.VertexBytes)
	return b, nil
}

// Indexed reports whether the mesh draws from an element buffer.
func (b *MeshBuffers) Indexed() bool {
	return b.IndexCount > 0
}

// Draw issues the draw call for the mesh. The vertex array must be bound.
func (b *MeshBuffers) Draw() {
	if b.Indexed() {
		b.dev.DrawElements(b.IndexCount)
		return
	}
	b.dev.DrawArrays(0, b.VertexCount)
}

// Delete releases the vertex array and its buffers.
func (b *MeshBuffers) Delete() {
	if b.EBO != 0 {
		b.dev.DeleteBuffer(b.EBO)
		b.EBO = 0
	}
	if b.VBO != 0 {
		b.dev.DeleteBuffer(b.VBO)
		b.VBO = 0
	}
	if b.VAO != 0 {
		b.dev.DeleteVertexArray(b.VAO)
		b.VAO = 0
	}
}
