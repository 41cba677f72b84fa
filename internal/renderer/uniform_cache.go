package renderer

import (
	"Stairwell/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Uniform is a named value for the bound program. Value is one of float32,
// int32, bool, mgl32.Vec3 or mgl32.Mat4.
type Uniform struct {
	Name  string
	Value interface{}
}

// UniformCache caches uniform locations to avoid repeated gl.GetUniformLocation calls
type UniformCache struct {
	locations map[string]int32
	program   uint32
	lookup    func(program uint32, name string) int32
}

// NewUniformCache creates a new uniform cache for a shader program
func NewUniformCache(program uint32) *UniformCache {
	return &UniformCache{
		locations: make(map[string]int32),
		program:   program,
		lookup: func(program uint32, name string) int32 {
			return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
		},
	}
}

// GetLocation returns the cached uniform location or fetches and caches it.
// Names the program does not use resolve to -1 and are cached as well.
func (uc *UniformCache) GetLocation(name string) int32 {
	if loc, exists := uc.locations[name]; exists {
		return loc
	}

	loc := uc.lookup(uc.program, name)
	if loc == -1 {
		logger.Log.Debug("Uniform not active in program", zap.String("name", name), zap.Uint32("program", uc.program))
	}
	uc.locations[name] = loc
	return loc
}

func (uc *UniformCache) SetFloat(name string, value float32) {
	if loc := uc.GetLocation(name); loc != -1 {
		gl.Uniform1f(loc, value)
	}
}

func (uc *UniformCache) SetVec3(name string, value mgl32.Vec3) {
	if loc := uc.GetLocation(name); loc != -1 {
		gl.Uniform3f(loc, value.X(), value.Y(), value.Z())
	}
}

func (uc *UniformCache) SetInt(name string, value int32) {
	if loc := uc.GetLocation(name); loc != -1 {
		gl.Uniform1i(loc, value)
	}
}

func (uc *UniformCache) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	uc.SetInt(name, v)
}

func (uc *UniformCache) SetMat4(name string, value mgl32.Mat4) {
	if loc := uc.GetLocation(name); loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &value[0])
	}
}

// Set dispatches on the uniform's value type.
func (uc *UniformCache) Set(u Uniform) {
	switch v := u.Value.(type) {
	case float32:
		uc.SetFloat(u.Name, v)
	case int32:
		uc.SetInt(u.Name, v)
	case bool:
		uc.SetBool(u.Name, v)
	case mgl32.Vec3:
		uc.SetVec3(u.Name, v)
	case mgl32.Mat4:
		uc.SetMat4(u.Name, v)
	default:
		logger.Log.Warn("Unsupported uniform type", zap.String("name", u.Name), zap.Any("value", u.Value))
	}
}

// Clear clears the cache (call when shader program changes)
func (uc *UniformCache) Clear() {
	uc.locations = make(map[string]int32)
}
