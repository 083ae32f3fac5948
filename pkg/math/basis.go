package math

import "github.com/go-gl/mathgl/mgl64"

// basisSingularZ is the z below which 1/(1+n.z) loses all precision.
const basisSingularZ = -0.9999999

// OrthonormalBasis builds two unit vectors b1, b2 so that (b1, b2, n) is a
// right-handed orthonormal frame. n must be unit length.
//
// Branchless construction (Frisvad, revised by Duff et al.) except for n
// pointing almost exactly down -Z, where a fixed frame is returned.
func OrthonormalBasis(n mgl64.Vec3) (b1, b2 mgl64.Vec3) {
	if n[2] < basisSingularZ {
		return mgl64.Vec3{0, -1, 0}, mgl64.Vec3{-1, 0, 0}
	}

	a := 1 / (1 + n[2])
	b := -n[0] * n[1] * a
	b1 = mgl64.Vec3{1 - n[0]*n[0]*a, b, -n[0]}
	b2 = mgl64.Vec3{b, 1 - n[1]*n[1]*a, -n[1]}
	return b1, b2
}
