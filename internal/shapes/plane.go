package shapes

import (
	"fmt"

	"Stairwell/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	DefaultPlaneDimensions = 10
	MinPlaneDimensions     = 2
	// MaxGridDimensions is the largest grid side whose dimensions² vertices fit 16-bit indices.
	MaxGridDimensions = 256
)

var planeNormal = mgl32.Vec3{0, 1, 0}

// ValidatePlaneDimensions reports whether a plane (or sphere grid) of the given
// side length can be generated.
func ValidatePlaneDimensions(dimensions int) error {
	return validateGrid("plane", dimensions, MinPlaneDimensions)
}

func validateGrid(kind string, dimensions, min int) error {
	if dimensions < min {
		return fmt.Errorf("%w: %s needs at least %d, got %d", ErrInvalidDimensions, kind, min, dimensions)
	}
	if dimensions > MaxGridDimensions {
		return fmt.Errorf("%w: %s of %d needs %d vertices", ErrIndexOverflow, kind, dimensions, dimensions*dimensions)
	}
	return nil
}

// MakePlaneVertices lays out dimensions² vertices row-major on the y=0 plane.
// Vertex (row, col) sits at x = col - dimensions/2, z = row - dimensions/2 with
// integer division, so even sizes span one more unit on the negative side.
func MakePlaneVertices(dimensions int, colors ColorSource) ([]Vertex, error) {
	if err := ValidatePlaneDimensions(dimensions); err != nil {
		return nil, err
	}
	if colors == nil {
		colors = defaultColors
	}

	verts, err := allocate[Vertex](dimensions * dimensions)
	if err != nil {
		return nil, err
	}
	half := dimensions / 2
	for row := 0; row < dimensions; row++ {
		for col := 0; col < dimensions; col++ {
			i := row*dimensions + col
			pos := mgl32.Vec3{float32(col - half), 0, float32(row - half)}
			verts[i] = Vertex{
				Position: pos,
				Normal:   planeNormal,
				Color:    clampColor(colors.Color(i, pos)),
			}
		}
	}
	return verts, nil
}

// MakePlaneIndices triangulates a dimensions x dimensions grid, two triangles per
// cell split along the same diagonal. It depends on nothing but dimensions.
func MakePlaneIndices(dimensions int) ([]uint16, error) {
	if err := ValidatePlaneDimensions(dimensions); err != nil {
		return nil, err
	}

	cells := dimensions - 1
	indices, err := allocate[uint16](cells * cells * 6)
	if err != nil {
		return nil, err
	}
	n := 0
	for row := 0; row < cells; row++ {
		for col := 0; col < cells; col++ {
			tl := uint16(dimensions*row + col)
			bl := tl + uint16(dimensions)
			br := bl + 1
			tr := tl + 1

			indices[n+0] = tl
			indices[n+1] = bl
			indices[n+2] = br
			indices[n+3] = tl
			indices[n+4] = br
			indices[n+5] = tr
			n += 6
		}
	}
	return indices, nil
}

// MakePlane builds a flat grid facing +y.
func MakePlane(dimensions int, opts ...Option) (*GeometryBuffer, error) {
	o := applyOptions(opts)
	verts, err := MakePlaneVertices(dimensions, o.colors)
	if err != nil {
		logRejected("plane", dimensions, err)
		return nil, err
	}
	indices, err := MakePlaneIndices(dimensions)
	if err != nil {
		logRejected("plane", dimensions, err)
		return nil, err
	}
	buf := &GeometryBuffer{Vertices: verts, Indices: indices}
	logGenerated("plane", buf)
	return buf, nil
}

func logGenerated(kind string, buf *GeometryBuffer) {
	logger.Log.Debug("Generated shape",
		zap.String("kind", kind),
		zap.Int("vertices", buf.VertexCount()),
		zap.Int("indices", buf.IndexCount()))
}

func logRejected(kind string, param int, err error) {
	logger.Log.Warn("Rejected shape parameters",
		zap.String("kind", kind),
		zap.Int("param", param),
		zap.Error(err))
}
