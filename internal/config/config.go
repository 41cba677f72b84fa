package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"Stairwell/internal/logger"
	"Stairwell/internal/shapes"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

type Camera struct {
	Position    [3]float32 `toml:"position"`
	Speed       float32    `toml:"speed"`
	Sensitivity float32    `toml:"sensitivity"`
	FOV         float32    `toml:"fov"`
	Near        float32    `toml:"near"`
	Far         float32    `toml:"far"`
}

// Color modes for generated vertex colors.
const (
	ColorRandom = "random"
	ColorNoise  = "noise"
	ColorSolid  = "solid"
)

type Shapes struct {
	Plane    int    `toml:"plane"`
	Sphere   int    `toml:"sphere"`
	Cylinder int    `toml:"cylinder"`
	Color    string `toml:"color"`
	// Seed drives random and noise colors; 0 picks a time based seed.
	Seed       int64      `toml:"seed"`
	SolidColor [3]float32 `toml:"solid_color"`
}

// ColorSource builds the vertex color source the shape settings select.
func (s Shapes) ColorSource() shapes.ColorSource {
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	switch s.Color {
	case ColorNoise:
		return shapes.NoiseColors(seed, 0)
	case ColorSolid:
		return shapes.SolidColor(mgl32.Vec3(s.SolidColor))
	default:
		return shapes.RandomColors(seed)
	}
}

type Render struct {
	ClearColor  [3]float32 `toml:"clear_color"`
	Wireframe   bool       `toml:"wireframe"`
	FaceCulling bool       `toml:"face_culling"`
}

type Textures struct {
	Diffuse  string `toml:"diffuse"`
	Specular string `toml:"specular"`
	// Scale is the number of texture repeats per world unit.
	Scale float32 `toml:"scale"`
}

type Log struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

type Config struct {
	Window   Window   `toml:"window"`
	Camera   Camera   `toml:"camera"`
	Shapes   Shapes   `toml:"shapes"`
	Render   Render   `toml:"render"`
	Textures Textures `toml:"textures"`
	Log      Log      `toml:"log"`
}

// Default returns the settings the demo runs with when no file is given.
func Default() Config {
	return Config{
		Window: Window{Width: 800, Height: 600, Title: "Stairwell", VSync: true},
		Camera: Camera{
			Position:    [3]float32{0, 5, 10},
			Speed:       2.5,
			Sensitivity: 0.1,
			FOV:         45,
			Near:        0.1,
			Far:         100,
		},
		Shapes: Shapes{
			Plane:      shapes.DefaultPlaneDimensions,
			Sphere:     shapes.DefaultSphereTessellation,
			Cylinder:   shapes.DefaultCylinderSegments,
			Color:      ColorRandom,
			SolidColor: [3]float32{0.8, 0.8, 0.8},
		},
		Render:   Render{ClearColor: [3]float32{0.1, 0.1, 0.1}, FaceCulling: true},
		Textures: Textures{Scale: 1},
		Log:      Log{Level: "info"},
	}
}

// Parse decodes TOML on top of the defaults, so every key is optional.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, strict.String())
		}
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads path. A missing file is not an error: the defaults are returned.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Log.Warn("Config file not found, using defaults", zap.String("path", path))
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	logger.Log.Info("Loaded config", zap.String("path", path))
	return cfg, nil
}

// Save writes cfg as TOML.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c Config) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		add("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if !(c.Camera.Near > 0) || !(c.Camera.Near < c.Camera.Far) {
		add("camera clip planes need 0 < near < far, got %v and %v", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.FOV < 1 || c.Camera.FOV > 45 {
		add("camera fov %v outside [1, 45]", c.Camera.FOV)
	}
	if c.Camera.Speed < 0 || c.Camera.Sensitivity < 0 {
		add("camera speed and sensitivity must not be negative")
	}
	if err := shapes.ValidatePlaneDimensions(c.Shapes.Plane); err != nil {
		add("shapes.plane: %v", err)
	}
	if err := shapes.ValidateSphereTessellation(c.Shapes.Sphere); err != nil {
		add("shapes.sphere: %v", err)
	}
	if err := shapes.ValidateCylinderSegments(c.Shapes.Cylinder); err != nil {
		add("shapes.cylinder: %v", err)
	}
	switch c.Shapes.Color {
	case ColorRandom, ColorNoise, ColorSolid:
	default:
		add("shapes.color %q is not one of random, noise, solid", c.Shapes.Color)
	}
	for _, ch := range append(c.Shapes.SolidColor[:], c.Render.ClearColor[:]...) {
		if ch < 0 || ch > 1 {
			add("color channel %v outside [0, 1]", ch)
			break
		}
	}
	if !(c.Textures.Scale > 0) {
		add("textures.scale must be positive, got %v", c.Textures.Scale)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		add("log: %v", err)
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
