package renderer

import (
	"Stairwell/internal/scene"
	"Stairwell/internal/shapes"

	"github.com/go-gl/mathgl/mgl32"
)

// Options are the render state toggles.
type Options struct {
	ClearColor  mgl32.Vec3
	Wireframe   bool
	FaceCulling bool
	DepthTest   bool
	// DiffuseTexture and SpecularTexture are image paths; empty selects a plain white texture.
	DiffuseTexture  string
	SpecularTexture string
	TextureScale    float32
}

func DefaultOptions() Options {
	return Options{
		ClearColor:   mgl32.Vec3{0.1, 0.1, 0.1},
		FaceCulling:  true,
		DepthTest:    true,
		TextureScale: 1,
	}
}

type Render interface {
	Init(width, height int32) error
	AddMesh(kind scene.MeshKind, buf *shapes.GeometryBuffer) error
	Render(camera *Camera, lighting scene.Lighting, instances []scene.Instance)
	UpdateViewport(width, height int32)
	Cleanup()
}
