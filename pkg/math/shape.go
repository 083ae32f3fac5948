package math

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// AxisMatrix returns the 3x3 matrix whose columns are the normalized axes.
func AxisMatrix(x, y, z mgl64.Vec3) mgl64.Mat3 {
	return mgl64.Mat3FromCols(SafeNormalize(x), SafeNormalize(y), SafeNormalize(z))
}

// ShapeMatrix returns A * diag(lengths) * A^T, the transform taking the unit
// sphere onto the ellipsoid with principal axes A and semi-axes lengths.
func ShapeMatrix(axes mgl64.Mat3, lengths mgl64.Vec3) mgl64.Mat3 {
	return axes.Mul3(mgl64.Diag3(lengths)).Mul3(axes.Transpose())
}

// RotationYZ returns Rz(degZ) * Ry(degY): rotate about Y first, then Z.
func RotationYZ(degY, degZ float32) mgl32.Mat3 {
	return mgl32.Rotate3DZ(mgl32.DegToRad(degZ)).Mul3(mgl32.Rotate3DY(mgl32.DegToRad(degY)))
}
