package math

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestOrthonormalBasis(t *testing.T) {
	tests := []struct {
		name string
		n    mgl64.Vec3
	}{
		{"up z", mgl64.Vec3{0, 0, 1}},
		{"down z", mgl64.Vec3{0, 0, -1}},
		{"almost down z", mgl64.Vec3{1e-4, 0, -1}.Normalize()},
		{"x axis", mgl64.Vec3{1, 0, 0}},
		{"y axis", mgl64.Vec3{0, 1, 0}},
		{"diagonal", mgl64.Vec3{1, 1, 1}.Normalize()},
		{"skewed", mgl64.Vec3{-0.3, 0.8, -0.5}.Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b1, b2 := OrthonormalBasis(tt.n)

			if d := gomath.Abs(b1.Len() - 1); d > 1e-6 {
				t.Errorf("|b1| = %v, want 1", b1.Len())
			}
			if d := gomath.Abs(b2.Len() - 1); d > 1e-6 {
				t.Errorf("|b2| = %v, want 1", b2.Len())
			}
			if d := gomath.Abs(b1.Dot(b2)); d > 1e-6 {
				t.Errorf("b1.b2 = %v, want 0", b1.Dot(b2))
			}
			if d := gomath.Abs(b1.Dot(tt.n)); d > 1e-6 {
				t.Errorf("b1.n = %v, want 0", b1.Dot(tt.n))
			}
			if d := gomath.Abs(b2.Dot(tt.n)); d > 1e-6 {
				t.Errorf("b2.n = %v, want 0", b2.Dot(tt.n))
			}
			if !b1.Cross(b2).ApproxEqualThreshold(tt.n, 1e-6) {
				t.Errorf("b1 x b2 = %v, want %v", b1.Cross(b2), tt.n)
			}
		})
	}
}

func TestOrthonormalBasisUpZ(t *testing.T) {
	b1, b2 := OrthonormalBasis(mgl64.Vec3{0, 0, 1})
	if b1 != (mgl64.Vec3{1, 0, 0}) {
		t.Errorf("b1 = %v, want (1, 0, 0)", b1)
	}
	if b2 != (mgl64.Vec3{0, 1, 0}) {
		t.Errorf("b2 = %v, want (0, 1, 0)", b2)
	}
}
