// Package math provides the linear algebra helpers used by the area light
// model on top of mathgl.
//
// Published light data is float32 (mgl32) because that is what ends up in
// shader uniforms. Reductions that chain an inverse, trigonometry and an
// eigen-solve run in float64 (mgl64) and are narrowed once at the end.
package math

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Vec64 widens a float32 vector.
func Vec64(v mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

// Vec32 narrows a float64 vector.
func Vec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

// SafeNormalize returns a unit vector, or the zero vector if v has no length.
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}
