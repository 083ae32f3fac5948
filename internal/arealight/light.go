package arealight

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Shape is the variant-specific state of a light. It is implemented only by
// *RectDisk, *Cylinder and *Ellipsoid.
type Shape interface {
	// referencePoints computes the points for a light centered at center.
	// It must not touch any state.
	referencePoints(center mgl32.Vec3) ([]mgl32.Vec3, error)
	supports(t Type) bool
}

// Light is an area light. Color, Center and Intensity may be edited at any
// time; shape parameters are edited through the variant accessors. Points is
// stale after any edit until UpdatePoints is called.
//
// A Light must not be mutated concurrently with its own UpdatePoints.
// Distinct lights are independent.
type Light struct {
	Color     mgl32.Vec3 // linear RGB, nominally [0, 1]
	Center    mgl32.Vec3
	Intensity float32

	typ    Type
	shape  Shape
	points []mgl32.Vec3
}

// New creates a light of any type and computes its points.
func New(t Type, color, center mgl32.Vec3, intensity float32, shape Shape) (*Light, error) {
	if shape == nil || !shape.supports(t) {
		return nil, fmt.Errorf("%w: %T for %s", ErrShapeMismatch, shape, t)
	}

	l := &Light{
		Color:     color,
		Center:    center,
		Intensity: intensity,
		typ:       t,
		shape:     shape,
		points:    make([]mgl32.Vec3, 0, t.PointCount()),
	}
	if err := l.UpdatePoints(); err != nil {
		return nil, fmt.Errorf("creating %s light: %w", t, err)
	}
	return l, nil
}

// NewRect creates a rectangle light.
func NewRect(color, center mgl32.Vec3, intensity float32, shape RectDisk) *Light {
	return mustNew(TypeRectangle, color, center, intensity, &shape)
}

// NewDisk creates a disk light. The geometry is the disk's bounding quad.
func NewDisk(color, center mgl32.Vec3, intensity float32, shape RectDisk) *Light {
	return mustNew(TypeDisk, color, center, intensity, &shape)
}

// NewCylinder creates a cylinder light.
func NewCylinder(color, center mgl32.Vec3, intensity float32, shape Cylinder) *Light {
	return mustNew(TypeCylinder, color, center, intensity, &shape)
}

// NewSphere creates a sphere or ellipsoid light. It fails when the ellipsoid
// is degenerate or encloses its reference viewpoint.
func NewSphere(color, center mgl32.Vec3, intensity float32, shape Ellipsoid) (*Light, error) {
	return New(TypeSphere, color, center, intensity, &shape)
}

// mustNew is for variants whose point computation cannot fail.
func mustNew(t Type, color, center mgl32.Vec3, intensity float32, shape Shape) *Light {
	l, err := New(t, color, center, intensity, shape)
	if err != nil {
		panic(err)
	}
	return l
}

// Type returns the light type fixed at construction.
func (l *Light) Type() Type {
	return l.typ
}

// UpdatePoints recomputes the reference points from the current state.
// On error the previously published points are left untouched.
func (l *Light) UpdatePoints() error {
	pts, err := l.shape.referencePoints(l.Center)
	if err != nil {
		return err
	}
	l.points = append(l.points[:0], pts...)
	return nil
}

// Points returns the reference points as of the last successful UpdatePoints:
// 4 quad corners for rectangle, disk and sphere lights, 2 segment endpoints
// for cylinders. The slice is reused by the next update.
func (l *Light) Points() []mgl32.Vec3 {
	return l.points
}

// Radius returns the cylinder radius, which cannot be encoded in the two
// endpoints and must be forwarded to shading separately. It is 0 for other types.
func (l *Light) Radius() float32 {
	if c, ok := l.shape.(*Cylinder); ok {
		return c.Radius
	}
	return 0
}

// RectDisk returns the live shape of a rectangle or disk light.
func (l *Light) RectDisk() (*RectDisk, bool) {
	s, ok := l.shape.(*RectDisk)
	return s, ok
}

// Cylinder returns the live shape of a cylinder light.
func (l *Light) Cylinder() (*Cylinder, bool) {
	s, ok := l.shape.(*Cylinder)
	return s, ok
}

// Ellipsoid returns the live shape of a sphere light.
func (l *Light) Ellipsoid() (*Ellipsoid, bool) {
	s, ok := l.shape.(*Ellipsoid)
	return s, ok
}

// quad lays out corners center -ex-ey, +ex-ey, +ex+ey, -ex+ey. Consumers
// integrate over the polygon in this order, so it decides the lit side.
func quad(center, ex, ey mgl32.Vec3) []mgl32.Vec3 {
	return []mgl32.Vec3{
		center.Sub(ex).Sub(ey),
		center.Add(ex).Sub(ey),
		center.Add(ex).Add(ey),
		center.Sub(ex).Add(ey),
	}
}
