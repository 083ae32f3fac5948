// Package arealight models finite-area light sources as the small sets of
// reference points an LTC shading stage evaluates analytically.
//
// A Light never recomputes on its own: after mutating any field or shape
// parameter the owner must call UpdatePoints before reading Points. Batching
// all edits of a frame and recomputing once is the intended usage.
package arealight

import (
	"fmt"
	"strings"
)

// Type identifies the light variant and the shading technique used for it.
// The order matches the GUI selector and shader table indices.
type Type int

const (
	// TypeRectangle is a planar quad light.
	TypeRectangle Type = iota
	// TypeCylinder is a line segment light with a radius.
	TypeCylinder
	// TypeDisk shares TypeRectangle's geometry; only the shading technique differs.
	TypeDisk
	// TypeSphere covers spheres and arbitrarily oriented ellipsoids.
	TypeSphere
)

// NumTypes is the number of light types.
const NumTypes = 4

// Types lists all light types in index order.
var Types = []Type{TypeRectangle, TypeCylinder, TypeDisk, TypeSphere}

var typeNames = [...]string{
	TypeRectangle: "rectangle",
	TypeCylinder:  "cylinder",
	TypeDisk:      "disk",
	TypeSphere:    "sphere",
}

// String returns the lower-case name of the type.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// PointCount returns how many reference points lights of this type publish.
func (t Type) PointCount() int {
	if t == TypeCylinder {
		return 2
	}
	return 4
}

// ParseType parses a type name, ignoring case. "rect" and "ellipsoid" are
// accepted as aliases.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rectangle", "rect":
		return TypeRectangle, nil
	case "cylinder":
		return TypeCylinder, nil
	case "disk":
		return TypeDisk, nil
	case "sphere", "ellipsoid":
		return TypeSphere, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}
