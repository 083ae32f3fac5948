package arealight

import "errors"

var (
	// ErrInvalidGeometry is the class of all caller-fixable shape errors.
	ErrInvalidGeometry = errors.New("invalid light geometry")
	// ErrSingularShape means the ellipsoid shape matrix cannot be inverted.
	ErrSingularShape = errors.New("degenerate ellipsoid shape")
	// ErrViewpointInside means the reference viewpoint is not outside the ellipsoid.
	ErrViewpointInside = errors.New("viewpoint inside ellipsoid")

	// ErrNegativeEigenvalue means the ellipse Gram matrix lost positive
	// semi-definiteness. It signals an upstream numeric fault and is fatal.
	ErrNegativeEigenvalue = errors.New("negative eigenvalue in ellipse reduction")

	// ErrShapeMismatch is returned by New when the shape does not belong to the type.
	ErrShapeMismatch = errors.New("shape does not match light type")
	// ErrUnknownType is returned by ParseType.
	ErrUnknownType = errors.New("unknown light type")
)

// IsFatal reports whether err is an internal invariant violation that must
// not be retried or recovered from.
func IsFatal(err error) bool {
	return errors.Is(err, ErrNegativeEigenvalue)
}
