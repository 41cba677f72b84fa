package engine

import (
	"Stairwell/internal/renderer"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is what a bound key does.
type Action int

const (
	MoveForward Action = iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	ToggleProjection
	Quit
)

// KeyBindings maps keys to actions. Movement keys act every frame while held;
// the others fire once per press.
var KeyBindings = map[glfw.Key]Action{
	glfw.KeyW:      MoveForward,
	glfw.KeyS:      MoveBackward,
	glfw.KeyA:      MoveLeft,
	glfw.KeyD:      MoveRight,
	glfw.KeyQ:      MoveUp,
	glfw.KeyE:      MoveDown,
	glfw.KeyP:      ToggleProjection,
	glfw.KeyEscape: Quit,
}

var movements = map[Action]renderer.CameraMovement{
	MoveForward:  renderer.Forward,
	MoveBackward: renderer.Backward,
	MoveLeft:     renderer.Left,
	MoveRight:    renderer.Right,
	MoveUp:       renderer.Up,
	MoveDown:     renderer.Down,
}

// Movement returns the camera movement of a held action.
func (a Action) Movement() (renderer.CameraMovement, bool) {
	m, ok := movements[a]
	return m, ok
}

// applyHeldKeys moves the camera for every held movement key.
func applyHeldKeys(camera *renderer.Camera, pressed func(glfw.Key) bool, deltaTime float32) {
	for key, action := range KeyBindings {
		if m, ok := action.Movement(); ok && pressed(key) {
			camera.ProcessKeyboard(m, deltaTime)
		}
	}
}

// pressAction returns the one-shot action of a key event, if any.
func pressAction(key glfw.Key, action glfw.Action) (Action, bool) {
	if action != glfw.Press {
		return 0, false
	}
	a, ok := KeyBindings[key]
	if !ok {
		return 0, false
	}
	if _, held := a.Movement(); held {
		return 0, false
	}
	return a, true
}
