package engine

import (
	"testing"

	"Stairwell/internal/renderer"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestKeyBindings(t *testing.T) {
	want := map[glfw.Key]Action{
		glfw.KeyW:      MoveForward,
		glfw.KeyS:      MoveBackward,
		glfw.KeyA:      MoveLeft,
		glfw.KeyD:      MoveRight,
		glfw.KeyQ:      MoveUp,
		glfw.KeyE:      MoveDown,
		glfw.KeyP:      ToggleProjection,
		glfw.KeyEscape: Quit,
	}
	assert.Equal(t, want, KeyBindings)

	m, ok := MoveUp.Movement()
	assert.True(t, ok)
	assert.Equal(t, renderer.Up, m)
	_, ok = Quit.Movement()
	assert.False(t, ok)
}

func TestApplyHeldKeys(t *testing.T) {
	cam := renderer.NewCamera(mgl32.Vec3{0, 5, 10}, 1)
	held := map[glfw.Key]bool{glfw.KeyW: true, glfw.KeyQ: true, glfw.KeyP: true}
	applyHeldKeys(cam, func(k glfw.Key) bool { return held[k] }, 0.4)

	assert.InDelta(t, 9, cam.Position.Z(), 1e-5)
	assert.InDelta(t, 6, cam.Position.Y(), 1e-5)
	assert.False(t, cam.Orthographic)
}

func TestPressAction(t *testing.T) {
	a, ok := pressAction(glfw.KeyP, glfw.Press)
	assert.True(t, ok)
	assert.Equal(t, ToggleProjection, a)

	a, ok = pressAction(glfw.KeyEscape, glfw.Press)
	assert.True(t, ok)
	assert.Equal(t, Quit, a)

	_, ok = pressAction(glfw.KeyP, glfw.Repeat)
	assert.False(t, ok)
	_, ok = pressAction(glfw.KeyP, glfw.Release)
	assert.False(t, ok)
	_, ok = pressAction(glfw.KeyW, glfw.Press)
	assert.False(t, ok)
	_, ok = pressAction(glfw.KeyZ, glfw.Press)
	assert.False(t, ok)
}
