package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Attenuation is the constant/linear/quadratic distance falloff of a light.
type Attenuation struct {
	Constant  float32
	Linear    float32
	Quadratic float32
}

// Factor returns the light intensity multiplier at distance d.
func (a Attenuation) Factor(d float32) float32 {
	return 1 / (a.Constant + a.Linear*d + a.Quadratic*d*d)
}

type DirectionalLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
}

type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
	Attenuation
}

// SpotLight follows the camera; its position and direction are set per frame.
type SpotLight struct {
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
	Attenuation
	// Cone angles in degrees; light fades between InnerCutoff and OuterCutoff.
	InnerCutoff float32
	OuterCutoff float32
	Enabled     bool
}

// CutoffCos returns the cosines of the inner and outer cone angles as the shader expects them.
func (s SpotLight) CutoffCos() (inner, outer float32) {
	return math32.Cos(mgl32.DegToRad(s.InnerCutoff)), math32.Cos(mgl32.DegToRad(s.OuterCutoff))
}

// MaxPointLights matches the point light array size in the fragment shader.
const MaxPointLights = 4

type Lighting struct {
	Directional DirectionalLight
	Points      []PointLight
	Spot        SpotLight
	Shininess   float32
}

var defaultAttenuation = Attenuation{Constant: 1, Linear: 0.09, Quadratic: 0.032}

func grey(v float32) mgl32.Vec3 { return mgl32.Vec3{v, v, v} }

// DefaultLighting is a dim directional light, four warm point lights high
// above the stairs and a flashlight on the camera.
func DefaultLighting() Lighting {
	return Lighting{
		Directional: DirectionalLight{
			Direction: mgl32.Vec3{-0.2, -1, -0.3},
			Ambient:   grey(0.05),
			Diffuse:   grey(0.4),
			Specular:  grey(0.5),
		},
		Points: []PointLight{
			{Position: mgl32.Vec3{-0.7, 10, 2}, Ambient: mgl32.Vec3{0.1, 0.05, 0.05}, Diffuse: grey(1), Specular: grey(1), Attenuation: defaultAttenuation},
			{Position: mgl32.Vec3{-2.3, 10, -4}, Ambient: grey(0.05), Diffuse: grey(0.8), Specular: grey(1), Attenuation: defaultAttenuation},
			{Position: mgl32.Vec3{-4, 10, -12}, Ambient: mgl32.Vec3{0.1, 0.05, 0.1}, Diffuse: grey(0.8), Specular: grey(1), Attenuation: defaultAttenuation},
			{Position: mgl32.Vec3{-7, 10, -3}, Ambient: grey(0.05), Diffuse: grey(0.8), Specular: grey(1), Attenuation: defaultAttenuation},
		},
		Spot: SpotLight{
			Ambient:     grey(0),
			Diffuse:     grey(1),
			Specular:    grey(1),
			Attenuation: defaultAttenuation,
			InnerCutoff: 12.5,
			OuterCutoff: 15,
			Enabled:     true,
		},
		Shininess: 32,
	}
}
