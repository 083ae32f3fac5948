// Package camera provides the viewer's orbit camera.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera orbits around a target point.
type OrbitCamera struct {
	Target mgl32.Vec3

	// Spherical coordinates
	Distance float32
	Pitch    float32 // radians above the horizon
	Yaw      float32 // radians around +Y

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Projection
	FovY      float32 // degrees
	Near, Far float32
	Aspect    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates a camera framing the single-light scene.
func NewOrbitCamera() *OrbitCamera {
	c := &OrbitCamera{
		MinDistance:     1,
		MaxDistance:     120,
		MinPitch:        0.05,
		MaxPitch:        1.5,
		FovY:            45,
		Near:            0.05,
		Far:             500,
		Aspect:          16.0 / 9.0,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
	c.FrameSingle()
	return c
}

// FrameSingle frames a light close to the origin.
func (c *OrbitCamera) FrameSingle() {
	c.Target = mgl32.Vec3{0, 1, 0}
	c.Distance = 6
	c.Pitch = 0.35
	c.Yaw = 0
}

// FrameShowcase frames the whole plane.
func (c *OrbitCamera) FrameShowcase() {
	c.Target = mgl32.Vec3{0, 5, 0}
	c.Distance = 35
	c.Pitch = 0.5
	c.Yaw = 0
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	cp, sp := gomath.Cos(float64(c.Pitch)), gomath.Sin(float64(c.Pitch))
	cy, sy := gomath.Cos(float64(c.Yaw)), gomath.Sin(float64(c.Yaw))
	offset := mgl32.Vec3{
		float32(cp * sy),
		float32(sp),
		float32(cp * cy),
	}
	return c.Target.Add(offset.Mul(c.Distance))
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the perspective projection.
func (c *OrbitCamera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
}

// SetViewport updates the aspect ratio. Zero sizes are ignored.
func (c *OrbitCamera) SetViewport(width, height int) {
	if width > 0 && height > 0 {
		c.Aspect = float32(width) / float32(height)
	}
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch = mgl32.Clamp(c.Pitch+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = mgl32.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}
