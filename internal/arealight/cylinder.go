package arealight

import "github.com/go-gl/mathgl/mgl32"

// Cylinder is the shape of a cylinder light: a segment of Length along
// Tangent through the light center, with Radius. Tangent is used as given and
// should be unit length.
type Cylinder struct {
	Tangent mgl32.Vec3
	Length  float32
	Radius  float32
}

func (c *Cylinder) referencePoints(center mgl32.Vec3) ([]mgl32.Vec3, error) {
	half := c.Tangent.Mul(0.5 * c.Length)
	return []mgl32.Vec3{
		center.Sub(half),
		center.Add(half),
	}, nil
}

func (c *Cylinder) supports(t Type) bool {
	return t == TypeCylinder
}
