package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVec3(t *testing.T, want, got mgl32.Vec3, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], 1e-5, msgAndArgs...)
}

func TestNewCamera(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 5, 10}, 4.0/3.0)

	assert.Equal(t, mgl32.Vec3{0, 5, 10}, cam.Position)
	assertVec3(t, mgl32.Vec3{0, 0, -1}, cam.Front, "front %v", cam.Front)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, cam.Right, "right %v", cam.Right)
	assertVec3(t, mgl32.Vec3{0, 1, 0}, cam.Up, "up %v", cam.Up)
	assert.Equal(t, float32(MaxZoom), cam.Zoom)
	assert.False(t, cam.Orthographic)
}

func TestCameraKeyboardMovement(t *testing.T) {
	tests := []struct {
		direction CameraMovement
		want      mgl32.Vec3
	}{
		{Forward, mgl32.Vec3{0, 5, 7.5}},
		{Backward, mgl32.Vec3{0, 5, 12.5}},
		{Left, mgl32.Vec3{-2.5, 5, 10}},
		{Right, mgl32.Vec3{2.5, 5, 10}},
		{Up, mgl32.Vec3{0, 7.5, 10}},
		{Down, mgl32.Vec3{0, 2.5, 10}},
	}
	for _, tt := range tests {
		cam := NewCamera(mgl32.Vec3{0, 5, 10}, 1)
		cam.ProcessKeyboard(tt.direction, 1)
		assertVec3(t, tt.want, cam.Position, "direction %d: got %v", tt.direction, cam.Position)
	}

	cam := NewCamera(mgl32.Vec3{}, 1)
	cam.ProcessKeyboard(Forward, 0)
	assert.Equal(t, mgl32.Vec3{}, cam.Position)
}

func TestCameraPitchClamp(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{}, 1)
	cam.ProcessMouseMovement(0, 10000, true)
	assert.Equal(t, float32(89), cam.Pitch)
	cam.ProcessMouseMovement(0, -20000, true)
	assert.Equal(t, float32(-89), cam.Pitch)

	cam = NewCamera(mgl32.Vec3{}, 1)
	cam.ProcessMouseMovement(0, 1000, false)
	assert.InDelta(t, 100, cam.Pitch, 1e-4)

	cam = NewCamera(mgl32.Vec3{}, 1)
	cam.InvertMouse = true
	cam.ProcessMouseMovement(0, 100, true)
	assert.InDelta(t, -10, cam.Pitch, 1e-5)
}

func TestCameraYaw(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{}, 1)
	cam.ProcessMouseMovement(900, 0, true)
	assert.InDelta(t, 0, cam.Yaw, 1e-4)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, cam.Front, "front %v", cam.Front)
	assert.InDelta(t, 1, cam.Front.Len(), 1e-6)
}

func TestCameraTrackCursor(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{}, 1)
	dx, dy := cam.TrackCursor(100, 100)
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	dx, dy = cam.TrackCursor(110, 95)
	assert.Equal(t, float32(10), dx)
	assert.Equal(t, float32(5), dy)
}

func TestCameraZoomClamp(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{}, 1)
	cam.ProcessMouseScroll(4)
	assert.Equal(t, float32(41), cam.Zoom)
	cam.ProcessMouseScroll(100)
	assert.Equal(t, float32(MinZoom), cam.Zoom)
	cam.ProcessMouseScroll(-100)
	assert.Equal(t, float32(MaxZoom), cam.Zoom)
}

func TestCameraProjectionToggle(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{}, 2)

	persp := cam.GetProjectionMatrix()
	assert.Equal(t, float32(0), persp.At(3, 3))
	assert.Equal(t, float32(-1), persp.At(3, 2))

	cam.ToggleProjection()
	assert.True(t, cam.Orthographic)
	ortho := cam.GetProjectionMatrix()
	assert.Equal(t, float32(1), ortho.At(3, 3))
	assert.InDelta(t, 0.5, ortho.At(0, 0), 1e-6)
	assert.InDelta(t, 1, ortho.At(1, 1), 1e-6)

	cam.ToggleProjection()
	assert.Equal(t, persp, cam.GetProjectionMatrix())
}

func TestCameraViewMatrix(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 0, 5}, 1)
	got := cam.GetViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	assertVec3(t, mgl32.Vec3{0, 0, -5}, got, "got %v", got)
}

func TestCameraSetAspectRatio(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{}, 1)
	cam.SetAspectRatio(1.5)
	assert.Equal(t, float32(1.5), cam.AspectRatio)
	cam.SetAspectRatio(0)
	assert.Equal(t, float32(1.5), cam.AspectRatio)
}
