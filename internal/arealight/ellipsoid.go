package arealight

import (
	"fmt"
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/arealight/pkg/math"
)

const (
	// minAxisDet is the smallest |det| of the normalized axis matrix accepted
	// as three independent directions.
	minAxisDet = 1e-6
	// eigenTolerance scales with the Gram trace; negatives within it are
	// round-off and clamp to zero.
	eigenTolerance = 1e-9
)

// Ellipsoid is the shape of a sphere light: principal directions and the
// semi-axis length along each. Directions are normalized internally and need
// only be linearly independent. A sphere has equal lengths.
type Ellipsoid struct {
	DirX, DirY, DirZ          mgl32.Vec3
	LengthX, LengthY, LengthZ float32
}

// Reduction is the flat light equivalent to an ellipsoid seen from its
// reference viewpoint, the ground point (center.x, 0, center.z).
type Reduction struct {
	// Anchor is the world-space center of the tangent ellipse, where the
	// viewing cone touches the ellipsoid.
	Anchor mgl32.Vec3
	// HalfAngle is the half-angle of the tangent cone in the unit-sphere
	// frame, in radians.
	HalfAngle float64
	// AxisX and AxisY are the semi-axes of the quad at the light center.
	// AxisX is the shorter one and AxisX x AxisY faces the viewpoint.
	AxisX, AxisY mgl32.Vec3
}

func (e *Ellipsoid) supports(t Type) bool {
	return t == TypeSphere
}

func (e *Ellipsoid) referencePoints(center mgl32.Vec3) ([]mgl32.Vec3, error) {
	r, err := e.Reduce(center)
	if err != nil {
		return nil, err
	}
	return quad(center, r.AxisX, r.AxisY), nil
}

// Reduce computes the quad whose solid angle from the viewpoint matches the
// ellipsoid centered at center.
//
// The ellipsoid is mapped to the unit sphere, the sphere's tangent cone from
// the viewpoint gives a disk, and the disk mapped back is an ellipse whose
// principal axes come from the eigendecomposition of its Gram matrix. The
// ellipse is then moved along the cone to the light center.
func (e *Ellipsoid) Reduce(center mgl32.Vec3) (Reduction, error) {
	c := math.Vec64(center)
	origin := mgl64.Vec3{c.X(), 0, c.Z()}
	local := c.Sub(origin)

	m, err := e.shapeMatrix()
	if err != nil {
		return Reduction{}, err
	}

	// ellipsoid to sphere
	pb := m.Inv().Mul3x1(local)
	dist := pb.Len()
	if !(dist > 1) {
		return Reduction{}, fmt.Errorf("%w: %w: |Pb| = %.6g", ErrInvalidGeometry, ErrViewpointInside, dist)
	}

	// sphere to disk
	theta := gomath.Asin(1 / dist)
	cos := gomath.Cos(theta)
	pc := pb.Mul(cos * cos)
	radius := gomath.Tan(theta) * pc.Len()
	c1, c2 := math.OrthonormalBasis(pc.Normalize())

	// disk to ellipse
	pd := m.Mul3x1(pc)
	d1 := m.Mul3x1(c1.Mul(radius))
	d2 := m.Mul3x1(c2.Mul(radius))

	// ellipse principal axes
	d12 := d1.Dot(d2)
	eig, err := math.SymEigen2(d1.Dot(d1), d12, d2.Dot(d2))
	if err != nil {
		return Reduction{}, fmt.Errorf("ellipse axes: %w", err)
	}

	trace := eig.Values[0] + eig.Values[1]
	var axes [2]mgl64.Vec3
	for i, lambda := range eig.Values {
		if lambda < 0 {
			if lambda < -eigenTolerance*gomath.Abs(trace) {
				return Reduction{}, fmt.Errorf("%w: lambda%d = %g", ErrNegativeEigenvalue, i, lambda)
			}
			lambda = 0
		}
		v := eig.Vectors[i]
		dir := math.SafeNormalize(d1.Mul(v[0]).Add(d2.Mul(v[1])))
		axes[i] = dir.Mul(gomath.Sqrt(lambda))
	}

	// Pd = cos^2(theta) * local, so scaling about the viewpoint by
	// |local|/|Pd| slides the ellipse to the center without changing the cone.
	scale := local.Len() / pd.Len()
	ex := axes[0].Mul(scale)
	ey := axes[1].Mul(scale)
	if ex.Cross(ey).Dot(local) > 0 {
		ey = ey.Mul(-1)
	}

	return Reduction{
		Anchor:    math.Vec32(origin.Add(pd)),
		HalfAngle: theta,
		AxisX:     math.Vec32(ex),
		AxisY:     math.Vec32(ey),
	}, nil
}

// shapeMatrix validates the ellipsoid and returns M = A diag(L) A^T.
func (e *Ellipsoid) shapeMatrix() (mgl64.Mat3, error) {
	lengths := mgl64.Vec3{float64(e.LengthX), float64(e.LengthY), float64(e.LengthZ)}
	dirs := [3]mgl32.Vec3{e.DirX, e.DirY, e.DirZ}

	for i := 0; i < 3; i++ {
		l := lengths[i]
		if !(l > 0) || gomath.IsInf(l, 0) {
			return mgl64.Mat3{}, fmt.Errorf("%w: %w: length %c = %g", ErrInvalidGeometry, ErrSingularShape, "XYZ"[i], l)
		}
		if dirs[i].Len() == 0 {
			return mgl64.Mat3{}, fmt.Errorf("%w: %w: zero direction %c", ErrInvalidGeometry, ErrSingularShape, "XYZ"[i])
		}
	}

	axes := math.AxisMatrix(math.Vec64(e.DirX), math.Vec64(e.DirY), math.Vec64(e.DirZ))
	if gomath.Abs(axes.Det()) < minAxisDet {
		return mgl64.Mat3{}, fmt.Errorf("%w: %w: directions are linearly dependent", ErrInvalidGeometry, ErrSingularShape)
	}

	m := math.ShapeMatrix(axes, lengths)
	if m.Det() == 0 {
		return mgl64.Mat3{}, fmt.Errorf("%w: %w: shape matrix is singular", ErrInvalidGeometry, ErrSingularShape)
	}
	return m, nil
}
