package reservoir

import "fmt"

// Batch is one step of the input stream: a dense, row-major tensor of
// equal-shaped rows plus an optional id vector. The leading dimension of
// Dims is the row count; everything after it is the per-row shape. The
// payload is opaque to the sampler, which only ever copies whole rows.
type Batch struct {
	// Dims is the full tensor shape. Dims[0] is the number of rows.
	Dims []int

	// ElemSize is the width in bytes of one element.
	ElemSize int

	// Data is the raw payload, len == product(Dims) * ElemSize.
	Data []byte

	// IDs optionally assigns a 64-bit external key to each row. When
	// present its length must equal Dims[0].
	IDs []int64
}

// Rows returns the number of rows in the batch.
func (b Batch) Rows() int {
	if len(b.Dims) == 0 {
		return 0
	}
	return b.Dims[0]
}

// rowShape returns the per-row dimensions (everything after the batch dim).
func (b Batch) rowShape() []int {
	return b.Dims[1:]
}

// stride returns the byte size of one row.
func (b Batch) stride() int {
	n := b.ElemSize
	for _, d := range b.rowShape() {
		n *= d
	}
	return n
}

// row returns the payload bytes of row i.
func (b Batch) row(i int) []byte {
	s := b.stride()
	return b.Data[i*s : (i+1)*s]
}

// validate checks the batch's internal consistency before any shape
// comparison against the reservoir happens.
func (b Batch) validate() error {
	if len(b.Dims) < 1 {
		return fmt.Errorf("%w: batch must have at least one dimension", ErrShapeMismatch)
	}
	if b.ElemSize <= 0 {
		return fmt.Errorf("%w: element size must be positive, got %d", ErrShapeMismatch, b.ElemSize)
	}
	for i, d := range b.Dims {
		if d < 0 {
			return fmt.Errorf("%w: dimension %d is negative (%d)", ErrShapeMismatch, i, d)
		}
	}
	if want := b.Rows() * b.stride(); len(b.Data) != want {
		return fmt.Errorf("%w: payload is %d bytes, shape requires %d", ErrShapeMismatch, len(b.Data), want)
	}
	if b.IDs != nil && len(b.IDs) != b.Rows() {
		return fmt.Errorf("%w: got %d ids for %d rows", ErrSizeMismatch, len(b.IDs), b.Rows())
	}
	return nil
}
