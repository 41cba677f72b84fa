package engine

import (
	"fmt"

	"Stairwell/internal/config"
	"Stairwell/internal/scene"
	"Stairwell/internal/shapes"
)

// BuildMeshes generates one mesh per kind from the shape settings. All meshes
// share one color source, so a fixed seed reproduces the whole scene.
func BuildMeshes(s config.Shapes) (map[scene.MeshKind]*shapes.GeometryBuffer, error) {
	colors := shapes.WithColors(s.ColorSource())
	build := map[scene.MeshKind]func() (*shapes.GeometryBuffer, error){
		scene.Cube:     func() (*shapes.GeometryBuffer, error) { return shapes.MakeCube(shapes.DefaultCubeSize, colors) },
		scene.Cylinder: func() (*shapes.GeometryBuffer, error) { return shapes.MakeCylinder(s.Cylinder, colors) },
		scene.Sphere:   func() (*shapes.GeometryBuffer, error) { return shapes.MakeSphere(s.Sphere, colors) },
		scene.Plane:    func() (*shapes.GeometryBuffer, error) { return shapes.MakePlane(s.Plane, colors) },
	}

	meshes := make(map[scene.MeshKind]*shapes.GeometryBuffer, len(build))
	for _, kind := range scene.MeshKinds {
		buf, err := build[kind]()
		if err != nil {
			return nil, fmt.Errorf("build %s: %w", kind, err)
		}
		meshes[kind] = buf
	}
	return meshes, nil
}
