package permgroup

import "errors"

var (
	// ErrNotBijection is returned when an image list does not
	// describe a bijection of {0, ..., n-1}.
	ErrNotBijection = errors.New("permgroup: not a bijection")

	// ErrDegreeMismatch is raised when permutations of
	// different degrees are combined.
	ErrDegreeMismatch = errors.New("permgroup: degree mismatch")

	// ErrPointOutOfRange is raised when a point is not in
	// {0, ..., n-1}.
	ErrPointOutOfRange = errors.New("permgroup: point out of range")

	// ErrDuplicateBasePoint is raised when an initial base
	// lists the same point twice.
	ErrDuplicateBasePoint = errors.New("permgroup: duplicate base point")

	// ErrGeneratorCount is raised when the two sides of a
	// proposed homomorphism have different generator counts.
	ErrGeneratorCount = errors.New("permgroup: generator count mismatch")

	// ErrInvalidCycle is returned for malformed cycle notation.
	ErrInvalidCycle = errors.New("permgroup: invalid cycle notation")

	// ErrInconsistentOrder is returned when independent BSGS
	// constructions disagree on the order of a group.
	ErrInconsistentOrder = errors.New("permgroup: inconsistent group order")

	// ErrInvalidGeneratorFile is returned for generator files
	// that cannot be interpreted.
	ErrInvalidGeneratorFile = errors.New("permgroup: invalid generator file")
)
