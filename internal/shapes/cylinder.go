package shapes

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultCylinderSegments = 10
	MinCylinderSegments     = 3
	// MaxCylinderSegments keeps 2·segments+2 vertices inside the 16-bit index space.
	MaxCylinderSegments   = (MaxVertices - 2) / 2
	DefaultCylinderRadius = 0.5
	DefaultCylinderHeight = 1.0
)

// CylinderConfig parameterises a capped cylinder centred on the origin, axis along y.
type CylinderConfig struct {
	Segments int
	Radius   float32
	Height   float32
}

func ValidateCylinderSegments(segments int) error {
	if segments < MinCylinderSegments {
		return fmt.Errorf("%w: cylinder needs at least %d segments, got %d", ErrInvalidDimensions, MinCylinderSegments, segments)
	}
	if segments > MaxCylinderSegments {
		return fmt.Errorf("%w: cylinder of %d segments needs %d vertices", ErrIndexOverflow, segments, 2*segments+2)
	}
	return nil
}

func (c CylinderConfig) Validate() error {
	if err := ValidateCylinderSegments(c.Segments); err != nil {
		return err
	}
	if !(c.Radius > 0) || !(c.Height > 0) {
		return fmt.Errorf("%w: cylinder radius and height must be positive, got %v and %v", ErrInvalidDimensions, c.Radius, c.Height)
	}
	return nil
}

// MakeCylinder builds a cylinder of radius 0.5 and height 1.
func MakeCylinder(segments int, opts ...Option) (*GeometryBuffer, error) {
	return MakeCylinderWith(CylinderConfig{
		Segments: segments,
		Radius:   DefaultCylinderRadius,
		Height:   DefaultCylinderHeight,
	}, opts...)
}

// MakeCylinderWith builds a closed cylinder. Ring vertex pairs come first
// (bottom at 2i, top at 2i+1), followed by the bottom and top cap centres.
// Indices hold the side quads in [0, 6n), the top fan in [6n, 9n) and the
// bottom fan in [9n, 12n).
func MakeCylinderWith(cfg CylinderConfig, opts ...Option) (*GeometryBuffer, error) {
	if err := cfg.Validate(); err != nil {
		logRejected("cylinder", cfg.Segments, err)
		return nil, err
	}
	o := applyOptions(opts)

	n := cfg.Segments
	verts, err := allocate[Vertex](2*n + 2)
	if err != nil {
		return nil, err
	}
	indices, err := allocate[uint16](12 * n)
	if err != nil {
		return nil, err
	}

	halfHeight := cfg.Height / 2
	angleStep := 2 * math32.Pi / float32(n)
	for i := 0; i < n; i++ {
		sin, cos := math32.Sincos(float32(i) * angleStep)
		normal := mgl32.Vec3{cos, 0, sin}
		x, z := cfg.Radius*cos, cfg.Radius*sin

		bottom := mgl32.Vec3{x, -halfHeight, z}
		top := mgl32.Vec3{x, halfHeight, z}
		verts[2*i] = Vertex{Position: bottom, Normal: normal, Color: clampColor(o.colors.Color(2*i, bottom))}
		verts[2*i+1] = Vertex{Position: top, Normal: normal, Color: clampColor(o.colors.Color(2*i+1, top))}
	}
	bottomCenter := mgl32.Vec3{0, -halfHeight, 0}
	topCenter := mgl32.Vec3{0, halfHeight, 0}
	verts[2*n] = Vertex{Position: bottomCenter, Normal: mgl32.Vec3{0, -1, 0}, Color: clampColor(o.colors.Color(2*n, bottomCenter))}
	verts[2*n+1] = Vertex{Position: topCenter, Normal: mgl32.Vec3{0, 1, 0}, Color: clampColor(o.colors.Color(2*n+1, topCenter))}

	ringBottom := func(i int) uint16 { return uint16(2 * (i % n)) }
	ringTop := func(i int) uint16 { return uint16(2*(i%n) + 1) }
	centerBottom, centerTop := uint16(2*n), uint16(2*n+1)

	for i := 0; i < n; i++ {
		side := indices[6*i : 6*i+6]
		side[0], side[1], side[2] = ringBottom(i), ringTop(i), ringTop(i+1)
		side[3], side[4], side[5] = ringBottom(i), ringTop(i+1), ringBottom(i+1)

		top := indices[6*n+3*i : 6*n+3*i+3]
		top[0], top[1], top[2] = centerTop, ringTop(i+1), ringTop(i)

		bottom := indices[9*n+3*i : 9*n+3*i+3]
		bottom[0], bottom[1], bottom[2] = centerBottom, ringBottom(i), ringBottom(i+1)
	}

	buf := &GeometryBuffer{Vertices: verts, Indices: indices}
	logGenerated("cylinder", buf)
	return buf, nil
}
