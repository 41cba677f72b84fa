package renderer

import (
	"fmt"
	"unsafe"

	"Stairwell/internal/shapes"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexAttribute describes one float attribute of the interleaved vertex layout.
type VertexAttribute struct {
	Location uint32
	Size     int32
	Offset   uintptr
}

// VertexAttributes is position, normal and color at locations 0, 1 and 2.
var VertexAttributes = []VertexAttribute{
	{Location: 0, Size: 3, Offset: unsafe.Offsetof(shapes.Vertex{}.Position)},
	{Location: 1, Size: 3, Offset: unsafe.Offsetof(shapes.Vertex{}.Normal)},
	{Location: 2, Size: 3, Offset: unsafe.Offsetof(shapes.Vertex{}.Color)},
}

// Mesh holds the device buffers of an uploaded GeometryBuffer.
type Mesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
}

// UploadMesh copies buf into a new vertex array object. The buffer is not
// retained; callers may drop it after upload.
func UploadMesh(buf *shapes.GeometryBuffer) (*Mesh, error) {
	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("upload mesh: %w", err)
	}

	mesh := &Mesh{IndexCount: int32(buf.IndexCount())}
	gl.GenVertexArrays(1, &mesh.VAO)
	gl.BindVertexArray(mesh.VAO)

	gl.GenBuffers(1, &mesh.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, buf.VertexBufferSize(), gl.Ptr(buf.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &mesh.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mesh.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, buf.IndexBufferSize(), gl.Ptr(buf.Indices), gl.STATIC_DRAW)

	for _, attr := range VertexAttributes {
		gl.VertexAttribPointer(attr.Location, attr.Size, gl.FLOAT, false, shapes.VertexSize, gl.PtrOffset(int(attr.Offset)))
		gl.EnableVertexAttribArray(attr.Location)
	}

	gl.BindVertexArray(0)
	return mesh, nil
}

func (m *Mesh) Draw() {
	gl.BindVertexArray(m.VAO)
	gl.DrawElements(gl.TRIANGLES, m.IndexCount, gl.UNSIGNED_SHORT, gl.PtrOffset(0))
}

func (m *Mesh) Delete() {
	gl.DeleteVertexArrays(1, &m.VAO)
	gl.DeleteBuffers(1, &m.VBO)
	gl.DeleteBuffers(1, &m.EBO)
	*m = Mesh{}
}
