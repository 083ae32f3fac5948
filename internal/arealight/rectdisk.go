package arealight

import "github.com/go-gl/mathgl/mgl32"

// RectDisk is the shape of rectangle and disk lights: a parallelogram
// spanned by two axes around the light center.
//
// DirX and DirY are used as given. They should be unit length and close to
// orthogonal, otherwise the half extents no longer measure the quad.
type RectDisk struct {
	DirX, DirY   mgl32.Vec3
	HalfX, HalfY float32
}

func (r *RectDisk) referencePoints(center mgl32.Vec3) ([]mgl32.Vec3, error) {
	ex := r.DirX.Mul(r.HalfX)
	ey := r.DirY.Mul(r.HalfY)
	return quad(center, ex, ey), nil
}

func (r *RectDisk) supports(t Type) bool {
	return t == TypeRectangle || t == TypeDisk
}

// Normal returns the unit normal DirX x DirY of the lit side.
func (r *RectDisk) Normal() mgl32.Vec3 {
	return r.DirX.Cross(r.DirY).Normalize()
}
