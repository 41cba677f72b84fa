package shapes

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// FloatsPerVertex is the number of float32 values in one interleaved vertex.
	FloatsPerVertex = 9
	// VertexSize is the byte size of one Vertex: position, normal, color, tightly packed.
	VertexSize = FloatsPerVertex * 4
	// IndexSize is the byte size of one index.
	IndexSize = 2
	// MaxVertices is the number of vertices addressable by 16-bit indices.
	MaxVertices = 1 << 16
)

// Vertex is a single mesh vertex. Its memory layout matches the device layout
// (attribute 0 position, 1 normal, 2 color), so a []Vertex can be uploaded as is.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Color    mgl32.Vec3
}

// GeometryBuffer is a triangle list: a vertex array and 16-bit indices into it.
// Every generator returns a fresh buffer owned by the caller.
type GeometryBuffer struct {
	Vertices []Vertex
	Indices  []uint16
}

func (g *GeometryBuffer) VertexCount() int {
	return len(g.Vertices)
}

func (g *GeometryBuffer) IndexCount() int {
	return len(g.Indices)
}

func (g *GeometryBuffer) TriangleCount() int {
	return len(g.Indices) / 3
}

// VertexBufferSize returns the vertex data size in bytes.
func (g *GeometryBuffer) VertexBufferSize() int {
	return len(g.Vertices) * VertexSize
}

// IndexBufferSize returns the index data size in bytes.
func (g *GeometryBuffer) IndexBufferSize() int {
	return len(g.Indices) * IndexSize
}

// Triangle returns the three vertex indices of triangle t.
func (g *GeometryBuffer) Triangle(t int) (a, b, c uint16) {
	return g.Indices[t*3], g.Indices[t*3+1], g.Indices[t*3+2]
}

// Validate checks the triangle-list invariants: index count is a multiple of 3,
// the vertex count fits 16-bit indices and no index is out of range.
func (g *GeometryBuffer) Validate() error {
	if len(g.Vertices) == 0 {
		return fmt.Errorf("%w: no vertices", ErrInvalidBuffer)
	}
	if len(g.Vertices) > MaxVertices {
		return fmt.Errorf("%w: %d vertices exceed the 16-bit index space", ErrInvalidBuffer, len(g.Vertices))
	}
	if len(g.Indices)%3 != 0 {
		return fmt.Errorf("%w: index count %d is not a multiple of 3", ErrInvalidBuffer, len(g.Indices))
	}
	n := len(g.Vertices)
	for i, idx := range g.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: index %d at %d out of range (%d vertices)", ErrInvalidBuffer, idx, i, n)
		}
	}
	return nil
}

// Interleaved flattens the vertices into position, normal, color float triples.
func (g *GeometryBuffer) Interleaved() []float32 {
	data := make([]float32, 0, len(g.Vertices)*FloatsPerVertex)
	for _, v := range g.Vertices {
		data = append(data, v.Position[:]...)
		data = append(data, v.Normal[:]...)
		data = append(data, v.Color[:]...)
	}
	return data
}

// Bounds returns the axis aligned bounding box of the vertex positions.
func (g *GeometryBuffer) Bounds() (min, max mgl32.Vec3) {
	if len(g.Vertices) == 0 {
		return
	}
	min = g.Vertices[0].Position
	max = min
	for _, v := range g.Vertices[1:] {
		for axis := 0; axis < 3; axis++ {
			if v.Position[axis] < min[axis] {
				min[axis] = v.Position[axis]
			}
			if v.Position[axis] > max[axis] {
				max[axis] = v.Position[axis]
			}
		}
	}
	return min, max
}
