// Command meshgen writes a generated shape to a .mesh or .obj file.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"Stairwell/internal/config"
	"Stairwell/internal/loader"
	"Stairwell/internal/logger"
	"Stairwell/internal/scene"
	"Stairwell/internal/shapes"

	"go.uber.org/zap"
)

type options struct {
	shape string
	n     int
	size  float64
	out   string
	color string
	seed  int64
}

func main() {
	var opts options
	flag.StringVar(&opts.shape, "shape", "sphere", "shape to generate: plane, sphere, cylinder or cube")
	flag.IntVar(&opts.n, "n", 0, "plane dimensions, sphere tessellation or cylinder segments (0 uses the default)")
	flag.Float64Var(&opts.size, "size", shapes.DefaultCubeSize, "cube edge length")
	flag.StringVar(&opts.out, "out", "", "output file, .mesh or .obj")
	flag.StringVar(&opts.color, "color", config.ColorRandom, "vertex colors: random, noise or solid")
	flag.Int64Var(&opts.seed, "seed", 0, "color seed (0 picks one from the clock)")
	flag.Parse()

	logger.Init()
	defer logger.Sync()

	buf, err := generate(opts)
	if err == nil {
		err = write(opts.out, opts.shape, buf)
	}
	if err != nil {
		logger.Log.Error("meshgen failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "meshgen:", err)
		os.Exit(1)
	}
	fmt.Printf("%s: %d vertices, %d indices, %d triangles -> %s\n",
		opts.shape, buf.VertexCount(), buf.IndexCount(), buf.TriangleCount(), opts.out)
}

func generate(opts options) (*shapes.GeometryBuffer, error) {
	kind, err := scene.ParseMeshKind(opts.shape)
	if err != nil {
		return nil, err
	}
	s := config.Default().Shapes
	s.Color = opts.color
	s.Seed = opts.seed
	switch s.Color {
	case config.ColorRandom, config.ColorNoise, config.ColorSolid:
	default:
		return nil, fmt.Errorf("unknown color mode %q", s.Color)
	}
	colors := shapes.WithColors(s.ColorSource())

	n := func(def int) int {
		if opts.n == 0 {
			return def
		}
		return opts.n
	}
	switch kind {
	case scene.Plane:
		return shapes.MakePlane(n(shapes.DefaultPlaneDimensions), colors)
	case scene.Sphere:
		return shapes.MakeSphere(n(shapes.DefaultSphereTessellation), colors)
	case scene.Cylinder:
		return shapes.MakeCylinder(n(shapes.DefaultCylinderSegments), colors)
	default:
		return shapes.MakeCube(float32(opts.size), colors)
	}
}

func write(path, name string, buf *shapes.GeometryBuffer) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mesh":
		return loader.SaveMesh(path, buf)
	case ".obj":
		return loader.SaveOBJ(path, name, buf)
	case "":
		return fmt.Errorf("-out needs a .mesh or .obj file name")
	}
	return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
}
