package engine

import (
	"testing"

	"Stairwell/internal/config"
	"Stairwell/internal/scene"
	"Stairwell/internal/shapes"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScene(t *testing.T) Scene {
	cube, err := shapes.MakeCube(1, shapes.WithColors(shapes.SolidColor(mgl32.Vec3{1, 1, 1})))
	require.NoError(t, err)
	return Scene{
		Meshes:    map[scene.MeshKind]*shapes.GeometryBuffer{scene.Cube: cube},
		Instances: []scene.Instance{{Name: "box", Mesh: scene.Cube}},
		Lighting:  scene.DefaultLighting(),
	}
}

func TestNewConfiguresCamera(t *testing.T) {
	cfg := config.Default()
	cfg.Window.Width, cfg.Window.Height = 1200, 600
	cfg.Camera.FOV = 30
	cfg.Camera.Speed = 4

	app, err := New(cfg, testScene(t))
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{0, 5, 10}, app.Camera.Position)
	assert.Equal(t, float32(2), app.Camera.AspectRatio)
	assert.Equal(t, float32(30), app.Camera.Zoom)
	assert.Equal(t, float32(4), app.Camera.Speed)
	assert.Equal(t, float32(100), app.Camera.Far)
}

func TestNewRejects(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.Near = 0
	_, err := New(cfg, testScene(t))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	s := testScene(t)
	s.Instances = append(s.Instances, scene.Instance{Name: "ball", Mesh: scene.Sphere})
	_, err = New(config.Default(), s)
	assert.ErrorIs(t, err, ErrMissingMesh)

	s = testScene(t)
	s.Meshes[scene.Cube].Indices[0] = 500
	_, err = New(config.Default(), s)
	assert.ErrorIs(t, err, shapes.ErrInvalidBuffer)

	s = testScene(t)
	s.Meshes[scene.Plane] = nil
	_, err = New(config.Default(), s)
	assert.ErrorIs(t, err, shapes.ErrInvalidBuffer)
}

func TestResizeKeepsAspectWhenMinimized(t *testing.T) {
	app, err := New(config.Default(), testScene(t))
	require.NoError(t, err)

	app.resize(1000, 500)
	assert.Equal(t, float32(2), app.Camera.AspectRatio)
	assert.Equal(t, int32(1000), app.width)

	app.resize(0, 0)
	assert.Equal(t, float32(2), app.Camera.AspectRatio)
	assert.Equal(t, int32(500), app.height)
}

func TestInputCallbacks(t *testing.T) {
	app, err := New(config.Default(), testScene(t))
	require.NoError(t, err)

	app.keyCallback(nil, glfw.KeyP, 0, glfw.Press, 0)
	assert.True(t, app.Camera.Orthographic)
	app.keyCallback(nil, glfw.KeyP, 0, glfw.Repeat, 0)
	assert.True(t, app.Camera.Orthographic)

	app.scrollCallback(nil, 0, 5)
	assert.Equal(t, float32(40), app.Camera.Zoom)

	app.cursorPosCallback(nil, 400, 300)
	app.cursorPosCallback(nil, 400, 200)
	assert.InDelta(t, 10, app.Camera.Pitch, 1e-5)
}

func TestColorRef(t *testing.T) {
	assert.Equal(t, uint32(0x00ff8000), colorRef([3]float32{0, 0.5, 1}))
	assert.Equal(t, uint32(0x000000ff), colorRef([3]float32{2, -1, 0}))
}
