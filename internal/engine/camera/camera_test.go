package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPosition(t *testing.T) {
	tests := []struct {
		name  string
		pitch float32
		yaw   float32
		want  mgl32.Vec3
	}{
		{"front", 0, 0, mgl32.Vec3{0, 0, 10}},
		{"side", 0, mgl32.DegToRad(90), mgl32.Vec3{10, 0, 0}},
		{"top", mgl32.DegToRad(90), 0, mgl32.Vec3{0, 10, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &OrbitCamera{Distance: 10, Pitch: tt.pitch, Yaw: tt.yaw}
			if got := c.Position(); !got.ApproxEqualThreshold(tt.want, 1e-4) {
				t.Errorf("Position() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestViewMatrixLooksAtTarget(t *testing.T) {
	c := NewOrbitCamera()
	view := c.ViewMatrix()

	// The target lands on the -Z axis in view space.
	p := view.Mul4x1(c.Target.Vec4(1)).Vec3()
	if !mgl32.FloatEqualThreshold(p.X(), 0, 1e-4) || !mgl32.FloatEqualThreshold(p.Y(), 0, 1e-4) {
		t.Errorf("target in view space = %v, want on -Z", p)
	}
	if !mgl32.FloatEqualThreshold(p.Z(), -c.Distance, 1e-4) {
		t.Errorf("target depth = %v, want %v", p.Z(), -c.Distance)
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(0, 1e6)
	if c.Pitch != c.MaxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, c.MaxPitch)
	}
	c.HandleDrag(0, -1e6)
	if c.Pitch != c.MinPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, c.MinPitch)
	}
}

func TestHandleZoomClamps(t *testing.T) {
	c := NewOrbitCamera()
	for i := 0; i < 100; i++ {
		c.HandleZoom(5)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("Distance = %v, want %v", c.Distance, c.MinDistance)
	}
	c.FrameShowcase()
	c.HandleZoom(-100)
	if c.Distance != c.MaxDistance {
		t.Errorf("Distance = %v, want %v", c.Distance, c.MaxDistance)
	}
}

func TestSetViewport(t *testing.T) {
	c := NewOrbitCamera()
	c.SetViewport(800, 400)
	if c.Aspect != 2 {
		t.Errorf("Aspect = %v, want 2", c.Aspect)
	}
	c.SetViewport(0, 400)
	if c.Aspect != 2 {
		t.Errorf("Aspect changed to %v on zero width", c.Aspect)
	}
}
