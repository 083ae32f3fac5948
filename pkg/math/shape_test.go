package math

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

func TestShapeMatrixAxisAligned(t *testing.T) {
	axes := AxisMatrix(mgl64.Vec3{2, 0, 0}, mgl64.Vec3{0, 5, 0}, mgl64.Vec3{0, 0, 0.5})
	m := ShapeMatrix(axes, mgl64.Vec3{1, 2, 3})

	want := mgl64.Diag3(mgl64.Vec3{1, 2, 3})
	if !m.ApproxEqualThreshold(want, 1e-12) {
		t.Errorf("ShapeMatrix() = %v, want %v", m, want)
	}
}

func TestShapeMatrixMapsUnitSphere(t *testing.T) {
	rot := mgl64.Rotate3DY(0.7).Mul3(mgl64.Rotate3DX(-0.3))
	axes := AxisMatrix(rot.Col(0), rot.Col(1), rot.Col(2))
	lengths := mgl64.Vec3{0.5, 1.5, 2}
	m := ShapeMatrix(axes, lengths)

	// Each unit principal axis lands on its semi-axis.
	for i := 0; i < 3; i++ {
		got := m.Mul3x1(axes.Col(i))
		want := axes.Col(i).Mul(lengths[i])
		if !got.ApproxEqualThreshold(want, 1e-9) {
			t.Errorf("M * axis%d = %v, want %v", i, got, want)
		}
	}

	if d := gomath.Abs(m.Det() - 0.5*1.5*2); d > 1e-9 {
		t.Errorf("det(M) = %v, want 1.5", m.Det())
	}
}

func TestRotationYZ(t *testing.T) {
	tests := []struct {
		name       string
		degY, degZ float32
		in, want   mgl32.Vec3
	}{
		{"identity", 0, 0, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 0, 0}},
		{"y only", 90, 0, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{"z only", 0, 90, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		// Y is applied first: x -> -z, then Z leaves -z alone.
		{"y then z", 90, 90, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{"z moves y", 90, 90, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{-1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotationYZ(tt.degY, tt.degZ).Mul3x1(tt.in)
			if !got.ApproxEqualThreshold(tt.want, 1e-5) {
				t.Errorf("RotationYZ(%v, %v) * %v = %v, want %v", tt.degY, tt.degZ, tt.in, got, tt.want)
			}
		})
	}
}
