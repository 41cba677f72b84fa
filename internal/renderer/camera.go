// camera.go
package renderer

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraMovement is a direction relative to the camera's orientation.
type CameraMovement int

const (
	Forward CameraMovement = iota
	Backward
	Left
	Right
	Up
	Down
)

const (
	DefaultYaw         = -90.0
	DefaultPitch       = 0.0
	DefaultSpeed       = 2.5
	DefaultSensitivity = 0.1
	MinZoom            = 1.0
	MaxZoom            = 45.0
	// OrthoHalfHeight is half the height of the orthographic view volume.
	OrthoHalfHeight = 1.0
)

type Camera struct {
	// Accessed every frame for view/projection calculations
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	Yaw      float32
	Pitch    float32

	WorldUp     mgl32.Vec3
	Speed       float32
	Sensitivity float32
	// Zoom is the vertical field of view in degrees.
	Zoom         float32
	Near         float32
	Far          float32
	AspectRatio  float32
	Orthographic bool
	InvertMouse  bool

	LastX, LastY float32
	firstMouse   bool
}

// NewCamera places a camera at position looking down -z.
func NewCamera(position mgl32.Vec3, aspectRatio float32) *Camera {
	c := &Camera{
		Position:    position,
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         DefaultYaw,
		Pitch:       DefaultPitch,
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		Zoom:        MaxZoom,
		Near:        0.1,
		Far:         100,
		AspectRatio: aspectRatio,
		firstMouse:  true,
	}
	c.updateCameraVectors()
	return c
}

func (c *Camera) SetAspectRatio(aspectRatio float32) {
	if aspectRatio > 0 {
		c.AspectRatio = aspectRatio
	}
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	if c.Orthographic {
		h := float32(OrthoHalfHeight)
		w := h * c.AspectRatio
		return mgl32.Ortho(-w, w, -h, h, c.Near, c.Far)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), c.AspectRatio, c.Near, c.Far)
}

// ToggleProjection switches between perspective and orthographic projection.
func (c *Camera) ToggleProjection() {
	c.Orthographic = !c.Orthographic
}

func (c *Camera) ProcessKeyboard(direction CameraMovement, deltaTime float32) {
	velocity := c.Speed * deltaTime
	switch direction {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	case Up:
		c.Position = c.Position.Add(c.WorldUp.Mul(velocity))
	case Down:
		c.Position = c.Position.Sub(c.WorldUp.Mul(velocity))
	}
}

// TrackCursor turns an absolute cursor position into movement offsets. The
// y offset is reversed since window coordinates grow downwards. The first
// call only records the position.
func (c *Camera) TrackCursor(xpos, ypos float32) (xoffset, yoffset float32) {
	if c.firstMouse {
		c.LastX, c.LastY = xpos, ypos
		c.firstMouse = false
	}
	xoffset = xpos - c.LastX
	yoffset = c.LastY - ypos
	c.LastX, c.LastY = xpos, ypos
	return xoffset, yoffset
}

func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {
	xoffset *= c.Sensitivity
	yoffset *= c.Sensitivity

	c.Yaw += xoffset
	if c.InvertMouse {
		c.Pitch -= yoffset
	} else {
		c.Pitch += yoffset
	}
	if constrainPitch {
		c.Pitch = mgl32.Clamp(c.Pitch, -89.0, 89.0)
	}
	c.updateCameraVectors()
}

// ProcessMouseScroll zooms the perspective projection.
func (c *Camera) ProcessMouseScroll(yoffset float32) {
	c.Zoom = mgl32.Clamp(c.Zoom-yoffset, MinZoom, MaxZoom)
}

func (c *Camera) updateCameraVectors() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
