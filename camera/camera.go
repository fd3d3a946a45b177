// Package camera implements the free-fly camera: WASD translation, mouse
// look and scroll zoom.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Movement is a keyboard translation intent.
type Movement uint8

const (
	Forward Movement = iota
	Backward
	Left
	Right
)

// Defaults match the classic first-person camera.
const (
	DefaultYaw         float32 = -90
	DefaultPitch       float32 = 0
	DefaultSpeed       float32 = 2.5
	DefaultSensitivity float32 = 0.1
	DefaultZoom        float32 = 45

	MinZoom  float32 = 1
	MaxZoom  float32 = 45
	MaxPitch float32 = 89
)

// Camera holds position, orientation (degrees) and zoom (vertical FOV in degrees).
type Camera struct {
	Position mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32
	Zoom  float32

	Speed       float32
	Sensitivity float32

	front mgl32.Vec3
	right mgl32.Vec3
	up    mgl32.Vec3
}

// New returns a camera at pos looking down -Z.
func New(pos mgl32.Vec3) *Camera {
	c := &Camera{
		Position:    pos,
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         DefaultYaw,
		Pitch:       DefaultPitch,
		Zoom:        DefaultZoom,
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
	}
	c.updateVectors()
	return c
}

// Front is the unit view direction.
func (c *Camera) Front() mgl32.Vec3 { return c.front }

// Right is the unit vector to the right of Front, level with WorldUp.
func (c *Camera) Right() mgl32.Vec3 { return c.right }

// Up is the camera's unit up vector.
func (c *Camera) Up() mgl32.Vec3 { return c.up }

// View returns the look-at matrix for the current position and orientation.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.front), c.up)
}

// Projection returns a perspective matrix using Zoom as the vertical FOV.
func (c *Camera) Projection(aspect, near, far float32) mgl32.Mat4 {
	if aspect <= 0 || math.IsNaN(float64(aspect)) {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, near, far)
}

// RotationOnly strips the translation from a view matrix.
func RotationOnly(view mgl32.Mat4) mgl32.Mat4 {
	return view.Mat3().Mat4()
}

// ProcessKeyboard moves the camera by Speed·dt along the requested axis.
func (c *Camera) ProcessKeyboard(m Movement, dt float32) {
	v := c.Speed * dt
	switch m {
	case Forward:
		c.Position = c.Position.Add(c.front.Mul(v))
	case Backward:
		c.Position = c.Position.Sub(c.front.Mul(v))
	case Left:
		c.Position = c.Position.Sub(c.right.Mul(v))
	case Right:
		c.Position = c.Position.Add(c.right.Mul(v))
	}
}

// ProcessMouseMovement turns the camera by a cursor delta. Pitch is clamped
// so the view never flips.
func (c *Camera) ProcessMouseMovement(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity
	if c.Pitch > MaxPitch {
		c.Pitch = MaxPitch
	}
	if c.Pitch < -MaxPitch {
		c.Pitch = -MaxPitch
	}
	c.updateVectors()
}

// ProcessMouseScroll narrows (positive dy) or widens the field of view.
func (c *Camera) ProcessMouseScroll(dy float32) {
	c.Zoom -= dy
	if c.Zoom < MinZoom {
		c.Zoom = MinZoom
	}
	if c.Zoom > MaxZoom {
		c.Zoom = MaxZoom
	}
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	f := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.front = f.Normalize()
	c.right = c.front.Cross(c.WorldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
