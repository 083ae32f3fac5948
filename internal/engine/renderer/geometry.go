package renderer

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/arealight/internal/arealight"
)

// PlaneVertices returns two triangles covering the ground square of the
// given half extent at y = 0, as xyz triples.
func PlaneVertices(half float32) []float32 {
	return []float32{
		-half, 0, -half,
		half, 0, -half,
		half, 0, half,
		-half, 0, -half,
		half, 0, half,
		-half, 0, half,
	}
}

// Outline returns the emitter polygon of a light as seen from eye, in fan
// order. Rectangles use their corners. Cylinders become a quad of width
// 2*radius facing the eye. Disks and spheres become the ellipse inscribed in
// their quad with the given number of segments.
func Outline(l *arealight.Light, eye mgl32.Vec3, segments int) []mgl32.Vec3 {
	pts := l.Points()

	switch l.Type() {
	case arealight.TypeCylinder:
		if len(pts) < 2 {
			return nil
		}
		return cylinderQuad(pts[0], pts[1], l.Radius(), eye)
	case arealight.TypeDisk, arealight.TypeSphere:
		if len(pts) < 4 {
			return nil
		}
		return inscribedEllipse(pts, segments)
	}
	return append([]mgl32.Vec3(nil), pts...)
}

func cylinderQuad(p0, p1 mgl32.Vec3, radius float32, eye mgl32.Vec3) []mgl32.Vec3 {
	mid := p0.Add(p1).Mul(0.5)
	side := p1.Sub(p0).Cross(eye.Sub(mid))
	if side.Len() == 0 {
		side = p1.Sub(p0).Cross(mgl32.Vec3{0, 1, 0})
		if side.Len() == 0 {
			side = mgl32.Vec3{1, 0, 0}
		}
	}
	w := side.Normalize().Mul(radius)
	return []mgl32.Vec3{p0.Sub(w), p1.Sub(w), p1.Add(w), p0.Add(w)}
}

func inscribedEllipse(q []mgl32.Vec3, segments int) []mgl32.Vec3 {
	if segments < 3 {
		segments = 3
	}
	center := q[0].Add(q[2]).Mul(0.5)
	ex := q[1].Sub(q[0]).Mul(0.5)
	ey := q[3].Sub(q[0]).Mul(0.5)

	out := make([]mgl32.Vec3, segments)
	for i := range out {
		a := 2 * gomath.Pi * float64(i) / float64(segments)
		out[i] = center.Add(ex.Mul(float32(gomath.Cos(a)))).Add(ey.Mul(float32(gomath.Sin(a))))
	}
	return out
}

// flatten packs vertices as xyz triples into dst.
func flatten(dst []float32, verts []mgl32.Vec3) []float32 {
	dst = dst[:0]
	for _, v := range verts {
		dst = append(dst, v[0], v[1], v[2])
	}
	return dst
}
