package renderer

import (
	"fmt"

	"Stairwell/internal/scene"
)

// Texture units of the material samplers.
const (
	DiffuseTextureUnit  = 0
	SpecularTextureUnit = 1
)

// LightingUniforms flattens the scene lighting into fragment shader uniforms.
// The spot light sits on the camera and points where it looks. Point lights
// beyond scene.MaxPointLights are dropped.
func LightingUniforms(l scene.Lighting, camera *Camera) []Uniform {
	points := l.Points
	if len(points) > scene.MaxPointLights {
		points = points[:scene.MaxPointLights]
	}

	d := l.Directional
	u := []Uniform{
		{"viewPos", camera.Position},
		{"material.diffuse", int32(DiffuseTextureUnit)},
		{"material.specular", int32(SpecularTextureUnit)},
		{"material.shininess", l.Shininess},
		{"dirLight.direction", d.Direction},
		{"dirLight.ambient", d.Ambient},
		{"dirLight.diffuse", d.Diffuse},
		{"dirLight.specular", d.Specular},
		{"numPointLights", int32(len(points))},
	}

	for i, p := range points {
		prefix := fmt.Sprintf("pointLights[%d].", i)
		u = append(u,
			Uniform{prefix + "position", p.Position},
			Uniform{prefix + "ambient", p.Ambient},
			Uniform{prefix + "diffuse", p.Diffuse},
			Uniform{prefix + "specular", p.Specular},
			Uniform{prefix + "constant", p.Constant},
			Uniform{prefix + "linear", p.Linear},
			Uniform{prefix + "quadratic", p.Quadratic},
		)
	}

	s := l.Spot
	inner, outer := s.CutoffCos()
	u = append(u,
		Uniform{"spotLight.enabled", s.Enabled},
		Uniform{"spotLight.position", camera.Position},
		Uniform{"spotLight.direction", camera.Front},
		Uniform{"spotLight.cutOff", inner},
		Uniform{"spotLight.outerCutOff", outer},
		Uniform{"spotLight.ambient", s.Ambient},
		Uniform{"spotLight.diffuse", s.Diffuse},
		Uniform{"spotLight.specular", s.Specular},
		Uniform{"spotLight.constant", s.Constant},
		Uniform{"spotLight.linear", s.Linear},
		Uniform{"spotLight.quadratic", s.Quadratic},
	)
	return u
}
