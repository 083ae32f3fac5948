package arealight

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
	axisZ = mgl32.Vec3{0, 0, 1}
	white = mgl32.Vec3{1, 1, 1}
)

func sphereShape(r float32) Ellipsoid {
	return Ellipsoid{
		DirX: axisX, DirY: axisY, DirZ: axisZ,
		LengthX: r, LengthY: r, LengthZ: r,
	}
}

func assertPoints(t *testing.T, got, want []mgl32.Vec3) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len(points) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("points[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func hasNaN(pts []mgl32.Vec3) bool {
	for _, p := range pts {
		for _, c := range p {
			if gomath.IsNaN(float64(c)) {
				return true
			}
		}
	}
	return false
}

// assertConvexQuad checks that the quad turns the same way at every corner.
func assertConvexQuad(t *testing.T, pts []mgl32.Vec3) {
	t.Helper()
	if len(pts) != 4 {
		t.Fatalf("len(points) = %d, want 4", len(pts))
	}
	normal := pts[1].Sub(pts[0]).Cross(pts[3].Sub(pts[0]))
	for i := 0; i < 4; i++ {
		a, b, c := pts[i], pts[(i+1)%4], pts[(i+2)%4]
		turn := b.Sub(a).Cross(c.Sub(b))
		if turn.Dot(normal) <= 0 {
			t.Errorf("corner %d turns against winding: %v", (i+1)%4, pts)
		}
	}
}

// sameSet compares point sets ignoring order.
func sameSet(a, b []mgl32.Vec3, eps float32) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, p := range a {
		found := false
		for j, q := range b {
			if !used[j] && p.ApproxEqualThreshold(q, eps) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
