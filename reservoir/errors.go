package reservoir

import "errors"

// Sentinel errors returned by Process and the constructors. All of them
// indicate caller or implementation bugs rather than transient conditions;
// none are retryable. Wrap details are attached with fmt.Errorf("%w"), so
// callers should match with errors.Is.
var (
	// ErrConfiguration indicates an invalid Config or externally seeded
	// state (capacity not positive, negative visit count).
	ErrConfiguration = errors.New("reservoir: invalid configuration")

	// ErrShapeMismatch indicates a batch whose row shape or element size
	// disagrees with the shape the reservoir has already established.
	ErrShapeMismatch = errors.New("reservoir: row shape mismatch")

	// ErrSizeMismatch indicates an id vector whose length does not equal
	// the batch's row count, or an id vector supplied/omitted contrary to
	// the key-tracking configuration.
	ErrSizeMismatch = errors.New("reservoir: id vector size mismatch")

	// ErrInternalConsistency indicates the end-of-batch visit counter
	// check failed. This is a bug in the sampler, not a data problem.
	// Rows committed before the fault was detected remain in the
	// reservoir; the batch is not rolled back.
	ErrInternalConsistency = errors.New("reservoir: visit counter consistency check failed")
)
