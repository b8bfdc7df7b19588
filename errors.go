package p256

import "errors"

// Error kinds returned by this package's public entrypoints. Each wraps a
// distinct failure condition from the scalar-multiplication and affine
// conversion contracts; callers can compare with errors.Is.
var (
	// ErrOutOfRange is returned when a caller-supplied coordinate or scalar
	// does not fit the field or scalar width this package operates on.
	ErrOutOfRange = errors.New("p256: value out of range")

	// ErrPointAtInfinity is returned when affine conversion is requested on
	// the point at infinity, which has no affine representation.
	ErrPointAtInfinity = errors.New("p256: point at infinity has no affine form")

	// ErrAllocationFailure is returned when scratch state for a scalar
	// multiplication cannot be built (e.g. mismatched input slice lengths).
	ErrAllocationFailure = errors.New("p256: could not allocate scalar-multiplication scratch state")

	// ErrInternalBignum is returned when reducing a caller-supplied scalar
	// modulo the curve order fails.
	ErrInternalBignum = errors.New("p256: scalar reduction failed")

	// ErrUndefinedGenerator is returned when an operation needs a generator
	// point but the supplied Curve has none.
	ErrUndefinedGenerator = errors.New("p256: curve has no generator")
)
