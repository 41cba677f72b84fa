package shapes

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultSphereTessellation = 20
	MinSphereTessellation     = 3
	DefaultSphereRadius       = 1.0
)

// SphereConfig parameterises a UV sphere.
type SphereConfig struct {
	Tessellation int
	Radius       float32
}

func ValidateSphereTessellation(tessellation int) error {
	return validateGrid("sphere", tessellation, MinSphereTessellation)
}

func (c SphereConfig) Validate() error {
	if err := ValidateSphereTessellation(c.Tessellation); err != nil {
		return err
	}
	if !(c.Radius > 0) {
		return fmt.Errorf("%w: sphere radius must be positive, got %v", ErrInvalidDimensions, c.Radius)
	}
	return nil
}

// MakeSphere builds a unit UV sphere with tessellation longitude slices and
// tessellation latitude steps.
func MakeSphere(tessellation int, opts ...Option) (*GeometryBuffer, error) {
	return MakeSphereWith(SphereConfig{Tessellation: tessellation, Radius: DefaultSphereRadius}, opts...)
}

// MakeSphereWith builds a UV sphere on the plane grid topology. Vertex col*n+row
// is placed at longitude -2π·col/(n-1) and polar angle -π·row/(n-1); both poles
// and the seam carry duplicate vertices.
func MakeSphereWith(cfg SphereConfig, opts ...Option) (*GeometryBuffer, error) {
	if err := cfg.Validate(); err != nil {
		logRejected("sphere", cfg.Tessellation, err)
		return nil, err
	}
	o := applyOptions(opts)

	n := cfg.Tessellation
	verts, err := allocate[Vertex](n * n)
	if err != nil {
		return nil, err
	}
	step := 1.0 / float64(n-1)
	r := float64(cfg.Radius)
	for col := 0; col < n; col++ {
		phi := -2 * math.Pi * float64(col) * step
		sinPhi, cosPhi := math.Sincos(phi)
		for row := 0; row < n; row++ {
			theta := -math.Pi * step * float64(row)
			sinTheta, cosTheta := math.Sincos(theta)

			i := col*n + row
			pos := mgl32.Vec3{
				float32(r * cosPhi * sinTheta),
				float32(r * sinPhi * sinTheta),
				float32(r * cosTheta),
			}
			verts[i] = Vertex{
				Position: pos,
				Normal:   pos.Normalize(),
				Color:    clampColor(o.colors.Color(i, pos)),
			}
		}
	}

	indices, err := MakePlaneIndices(n)
	if err != nil {
		return nil, err
	}
	buf := &GeometryBuffer{Vertices: verts, Indices: indices}
	logGenerated("sphere", buf)
	return buf, nil
}
