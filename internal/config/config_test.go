package config

import (
	"os"
	"path/filepath"
	"testing"

	"Stairwell/internal/shapes"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.Shapes.Plane)
	assert.Equal(t, 20, cfg.Shapes.Sphere)
	assert.Equal(t, 10, cfg.Shapes.Cylinder)
	assert.Equal(t, [3]float32{0, 5, 10}, cfg.Camera.Position)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
[window]
width = 1280
title = "Night"

[camera]
position = [1.0, 2.0, 3.0]
fov = 30.0

[shapes]
sphere = 32
color = "noise"
seed = 7

[render]
wireframe = true

[log]
level = "debug"
`))
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "Night", cfg.Window.Title)
	assert.Equal(t, [3]float32{1, 2, 3}, cfg.Camera.Position)
	assert.Equal(t, float32(30), cfg.Camera.FOV)
	assert.Equal(t, float32(100), cfg.Camera.Far)
	assert.Equal(t, 32, cfg.Shapes.Sphere)
	assert.Equal(t, 10, cfg.Shapes.Plane)
	assert.Equal(t, ColorNoise, cfg.Shapes.Color)
	assert.True(t, cfg.Render.Wireframe)
	assert.True(t, cfg.Render.FaceCulling)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseRejects(t *testing.T) {
	tests := map[string]string{
		"syntax":        "[window\nwidth = 3",
		"unknown key":   "[window]\nfullscreen = true",
		"wrong type":    "[shapes]\nplane = \"big\"",
		"small plane":   "[shapes]\nplane = 1",
		"huge sphere":   "[shapes]\nsphere = 300",
		"cylinder":      "[shapes]\ncylinder = 2",
		"color mode":    "[shapes]\ncolor = \"rainbow\"",
		"clip planes":   "[camera]\nnear = 10.0\nfar = 1.0",
		"fov":           "[camera]\nfov = 90.0",
		"window size":   "[window]\nheight = 0",
		"clear color":   "[render]\nclear_color = [2.0, 0.0, 0.0]",
		"texture scale": "[textures]\nscale = 0.0",
		"log level":     "[log]\nlevel = \"loud\"",
	}
	for name, src := range tests {
		_, err := Parse([]byte(src))
		assert.ErrorIs(t, err, ErrInvalidConfig, name)
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Shapes.Plane = 0
	cfg.Shapes.Cylinder = 70000
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "shapes.plane")
	assert.Contains(t, err.Error(), "shapes.cylinder")
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Window.Title = "Round trip"
	cfg.Shapes.Color = ColorSolid
	cfg.Textures.Diffuse = "textures/wood.png"

	path := filepath.Join(t.TempDir(), "stairwell.toml")
	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	require.NoError(t, os.WriteFile(path, []byte("[shapes]\nplane = -1\n"), 0o644))
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestColorSource(t *testing.T) {
	s := Default().Shapes
	s.Color = ColorSolid
	s.SolidColor = [3]float32{0.2, 0.4, 0.6}
	assert.Equal(t, mgl32.Vec3{0.2, 0.4, 0.6}, s.ColorSource().Color(0, mgl32.Vec3{}))

	s.Color = ColorRandom
	s.Seed = 11
	a, err := shapes.MakeCube(1, shapes.WithColors(s.ColorSource()))
	require.NoError(t, err)
	b, err := shapes.MakeCube(1, shapes.WithColors(s.ColorSource()))
	require.NoError(t, err)
	assert.Equal(t, a.Vertices, b.Vertices)

	s.Color = ColorNoise
	c := s.ColorSource().Color(0, mgl32.Vec3{1, 2, 3})
	for _, ch := range c {
		assert.GreaterOrEqual(t, ch, float32(0))
		assert.LessOrEqual(t, ch, float32(1))
	}
}

func TestSampleConfigMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "stairwell.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
