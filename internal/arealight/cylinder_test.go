package arealight

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCylinderPoints(t *testing.T) {
	l := NewCylinder(white, mgl32.Vec3{0, 0, 0}, 1, Cylinder{
		Tangent: axisZ, Length: 4, Radius: 0.1,
	})

	assertPoints(t, l.Points(), []mgl32.Vec3{
		{0, 0, -2},
		{0, 0, 2},
	})
}

func TestCylinderFollowsEdits(t *testing.T) {
	l := NewCylinder(white, mgl32.Vec3{0, 0.3, 0}, 10, Cylinder{
		Tangent: axisX, Length: 1, Radius: 0.02,
	})
	assertPoints(t, l.Points(), []mgl32.Vec3{
		{-0.5, 0.3, 0},
		{0.5, 0.3, 0},
	})

	c, _ := l.Cylinder()
	c.Tangent = axisY
	c.Length = 2
	l.Center = mgl32.Vec3{1, 2, 3}
	if err := l.UpdatePoints(); err != nil {
		t.Fatalf("UpdatePoints() error = %v", err)
	}
	assertPoints(t, l.Points(), []mgl32.Vec3{
		{1, 1, 3},
		{1, 3, 3},
	})
}

func TestCylinderTangentNotNormalized(t *testing.T) {
	// The tangent is a caller precondition; a non-unit tangent scales the segment.
	l := NewCylinder(white, mgl32.Vec3{}, 1, Cylinder{
		Tangent: mgl32.Vec3{2, 0, 0}, Length: 1, Radius: 0.1,
	})
	assertPoints(t, l.Points(), []mgl32.Vec3{
		{-1, 0, 0},
		{1, 0, 0},
	})
}
