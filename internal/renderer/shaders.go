package renderer

import (
	"errors"
	"fmt"
	"strings"

	"Stairwell/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

var (
	ErrShaderCompile = errors.New("shader compilation failed")
	ErrShaderLink    = errors.New("shader program link failed")
)

// =============================================================
//
//	Shaders
//
// =============================================================
type Shader struct {
	Name           string
	vertexSource   string
	fragmentSource string
	program        uint32
	uniforms       *UniformCache
}

// NewPhongShader returns the scene shader; call Compile on the GL thread.
func NewPhongShader() *Shader {
	return &Shader{
		Name:           "phong",
		vertexSource:   vertexShaderSource,
		fragmentSource: fragmentShaderSource,
	}
}

func (shader *Shader) Compile() error {
	vertexShader, err := GenShader(shader.vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return fmt.Errorf("%s: %w", shader.Name, err)
	}
	fragmentShader, err := GenShader(shader.fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return fmt.Errorf("%s: %w", shader.Name, err)
	}
	program, err := GenShaderProgram(vertexShader, fragmentShader)
	if err != nil {
		return fmt.Errorf("%s: %w", shader.Name, err)
	}
	shader.program = program
	shader.uniforms = NewUniformCache(program)
	logger.Log.Info("Shader compiled", zap.String("shader", shader.Name), zap.Uint32("program", program))
	return nil
}

func (shader *Shader) Use() {
	gl.UseProgram(shader.program)
}

func (shader *Shader) Uniforms() *UniformCache {
	return shader.uniforms
}

func (shader *Shader) Delete() {
	if shader.program != 0 {
		gl.DeleteProgram(shader.program)
		shader.program = 0
	}
	if shader.uniforms != nil {
		shader.uniforms.Clear()
	}
}

// GenShader compiles one shader stage. The error carries the info log.
func GenShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		log = strings.TrimRight(log, "\x00")
		logger.Log.Error("Failed to compile", zap.String("stage", stageName(shaderType)), zap.String("log", log))
		return 0, fmt.Errorf("%w: %s stage: %s", ErrShaderCompile, stageName(shaderType), log)
	}
	return shader, nil
}

// GenShaderProgram links both stages and releases them.
func GenShaderProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		log = strings.TrimRight(log, "\x00")
		logger.Log.Error("Failed to link program", zap.String("log", log))
		return 0, fmt.Errorf("%w: %s", ErrShaderLink, log)
	}
	return program, nil
}

func stageName(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("0x%x", shaderType)
}

var vertexShaderSource = `#version 330 core

layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec3 inColor;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 FragPos;
out vec3 Normal;
out vec3 VertexColor;

void main() {
    FragPos = vec3(model * vec4(inPosition, 1.0));
    // Scene transforms mix translations and non-uniform scale, so use the normal matrix.
    Normal = mat3(transpose(inverse(model))) * inNormal;
    VertexColor = inColor;
    gl_Position = projection * view * vec4(FragPos, 1.0);
}
` + "\x00"

var fragmentShaderSource = `#version 330 core

#define NR_POINT_LIGHTS 4

struct Material {
    sampler2D diffuse;
    sampler2D specular;
    float shininess;
};

struct DirLight {
    vec3 direction;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
};

struct PointLight {
    vec3 position;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    float constant;
    float linear;
    float quadratic;
};

struct SpotLight {
    bool enabled;
    vec3 position;
    vec3 direction;
    float cutOff;
    float outerCutOff;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    float constant;
    float linear;
    float quadratic;
};

in vec3 FragPos;
in vec3 Normal;
in vec3 VertexColor;

uniform vec3 viewPos;
uniform Material material;
uniform DirLight dirLight;
uniform PointLight pointLights[NR_POINT_LIGHTS];
uniform int numPointLights;
uniform SpotLight spotLight;
uniform bool useTexture;
uniform float textureScale;

out vec4 FragColor;

// Triplanar projection: sample along each world axis and blend by the normal.
vec3 triplanar(sampler2D tex, vec3 pos, vec3 normal) {
    vec3 w = abs(normal);
    w = w / (w.x + w.y + w.z);
    vec3 p = pos * textureScale;
    return texture(tex, p.yz).rgb * w.x +
           texture(tex, p.xz).rgb * w.y +
           texture(tex, p.xy).rgb * w.z;
}

vec3 phong(vec3 lightDir, vec3 normal, vec3 viewDir, vec3 ambient, vec3 diffuse, vec3 specular, vec3 baseColor, vec3 specColor) {
    float diff = max(dot(normal, lightDir), 0.0);
    vec3 reflectDir = reflect(-lightDir, normal);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);
    return ambient * baseColor + diffuse * diff * baseColor + specular * spec * specColor;
}

float attenuation(float constant, float linear, float quadratic, vec3 lightPos) {
    float d = length(lightPos - FragPos);
    return 1.0 / (constant + linear * d + quadratic * (d * d));
}

void main() {
    vec3 normal = normalize(Normal);
    vec3 viewDir = normalize(viewPos - FragPos);

    vec3 baseColor = VertexColor;
    vec3 specColor = vec3(0.5);
    if (useTexture) {
        baseColor *= triplanar(material.diffuse, FragPos, normal);
        specColor = triplanar(material.specular, FragPos, normal);
    }

    vec3 result = phong(normalize(-dirLight.direction), normal, viewDir,
        dirLight.ambient, dirLight.diffuse, dirLight.specular, baseColor, specColor);

    for (int i = 0; i < numPointLights && i < NR_POINT_LIGHTS; i++) {
        vec3 lightDir = normalize(pointLights[i].position - FragPos);
        float att = attenuation(pointLights[i].constant, pointLights[i].linear, pointLights[i].quadratic, pointLights[i].position);
        result += att * phong(lightDir, normal, viewDir,
            pointLights[i].ambient, pointLights[i].diffuse, pointLights[i].specular, baseColor, specColor);
    }

    if (spotLight.enabled) {
        vec3 lightDir = normalize(spotLight.position - FragPos);
        float theta = dot(lightDir, normalize(-spotLight.direction));
        float epsilon = spotLight.cutOff - spotLight.outerCutOff;
        float intensity = clamp((theta - spotLight.outerCutOff) / epsilon, 0.0, 1.0);
        float att = attenuation(spotLight.constant, spotLight.linear, spotLight.quadratic, spotLight.position);
        result += att * intensity * phong(lightDir, normal, viewDir,
            spotLight.ambient, spotLight.diffuse, spotLight.specular, baseColor, specColor);
    }

    FragColor = vec4(result, 1.0);
}
` + "\x00"
