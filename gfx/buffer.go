package gfx

import "github.com/go-gl/gl/v4.5-core/gl"

// VertexBuffer is an immutable GL array buffer
type VertexBuffer struct {
	handle uint32
	count  int
}

// NewVertexBuffer uploads the interleaved float data to a new array buffer
func NewVertexBuffer(data []float32) *VertexBuffer {
	vb := &VertexBuffer{count: len(data)}
	gl.GenBuffers(1, &vb.handle)
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.handle)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vb
}

// Bind makes this the active array buffer
func (vb *VertexBuffer) Bind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.handle)
}

// Destroy releases the GL buffer
func (vb *VertexBuffer) Destroy() {
	gl.DeleteBuffers(1, &vb.handle)
	vb.handle = 0
}

// IndexBuffer is an immutable GL element array buffer
type IndexBuffer struct {
	handle uint32
	count  int32
}

// NewIndexBuffer uploads the indices to a new element array buffer
func NewIndexBuffer(indices []uint32) *IndexBuffer {
	ib := &IndexBuffer{count: int32(len(indices))}
	gl.GenBuffers(1, &ib.handle)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.handle)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	return ib
}

// Bind makes this the active element array buffer
func (ib *IndexBuffer) Bind() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.handle)
}

// Count returns the number of indices
func (ib *IndexBuffer) Count() int32 {
	return ib.count
}

// Destroy releases the GL buffer
func (ib *IndexBuffer) Destroy() {
	gl.DeleteBuffers(1, &ib.handle)
	ib.handle = 0
}
