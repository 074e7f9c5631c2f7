package reservoir

import "fmt"

// BlockBuffer is the reservoir's backing storage: a single byte slab
// holding up to capacity fixed-stride rows. The row shape and element
// size are established by the first batch seen (or adopted from an
// empty first batch) and are immutable afterwards. Occupied size only
// ever grows, up to capacity.
type BlockBuffer struct {
	capacity int

	// Established row geometry. shaped stays false until the first
	// Reserve or AdoptShapeFrom.
	shaped   bool
	rowShape []int
	elemSize int
	stride   int

	// Storage
	data     []byte
	occupied int
}

// NewBlockBuffer creates an unshaped buffer for capacity rows.
func NewBlockBuffer(capacity int) *BlockBuffer {
	return &BlockBuffer{capacity: capacity}
}

// Reserve establishes the row geometry on first use and preallocates the
// full capacity worth of storage. It never changes the occupied size and
// is safe to call on every batch; once shaped it only verifies the
// geometry matches.
func (b *BlockBuffer) Reserve(rowShape []int, elemSize int) error {
	if b.shaped {
		if !b.shapeMatches(rowShape, elemSize) {
			return fmt.Errorf("%w: reservoir rows are %v x %dB, batch rows are %v x %dB",
				ErrShapeMismatch, b.rowShape, b.elemSize, rowShape, elemSize)
		}
		return nil
	}
	b.adopt(rowShape, elemSize)
	b.data = make([]byte, b.capacity*b.stride)
	return nil
}

// AdoptShapeFrom records the batch's row geometry without allocating row
// storage or copying data. Used only when the first batch ever seen is
// empty, so later batches are still held to the same shape.
func (b *BlockBuffer) AdoptShapeFrom(batch Batch) {
	if b.shaped {
		return
	}
	b.adopt(batch.rowShape(), batch.ElemSize)
	b.data = make([]byte, b.capacity*b.stride)
}

func (b *BlockBuffer) adopt(rowShape []int, elemSize int) {
	b.rowShape = append([]int(nil), rowShape...)
	b.elemSize = elemSize
	b.stride = elemSize
	for _, d := range rowShape {
		b.stride *= d
	}
	b.shaped = true
}

// shapeMatches reports whether the given geometry equals the established one.
func (b *BlockBuffer) shapeMatches(rowShape []int, elemSize int) bool {
	if elemSize != b.elemSize || len(rowShape) != len(b.rowShape) {
		return false
	}
	for i, d := range rowShape {
		if d != b.rowShape[i] {
			return false
		}
	}
	return true
}

// GrowOccupiedTo extends the logical occupied size up to min(capacity, n).
// Shrinking is not possible; a smaller n is a no-op.
func (b *BlockBuffer) GrowOccupiedTo(n int) {
	if n > b.capacity {
		n = b.capacity
	}
	if n > b.occupied {
		b.occupied = n
	}
}

// WriteBlock overwrites the row at slot in place. The slot must be in
// [0, capacity) and the payload must be exactly one stride long.
func (b *BlockBuffer) WriteBlock(slot int, block []byte) {
	if slot < 0 || slot >= b.capacity {
		panic(fmt.Sprintf("reservoir: slot %d out of range [0,%d)", slot, b.capacity))
	}
	if len(block) != b.stride {
		panic(fmt.Sprintf("reservoir: block is %d bytes, stride is %d", len(block), b.stride))
	}
	copy(b.data[slot*b.stride:], block)
}

// Row returns the payload bytes of an occupied slot. The returned slice
// aliases the buffer's storage and is invalidated by the next write to
// that slot.
func (b *BlockBuffer) Row(slot int) []byte {
	if slot < 0 || slot >= b.occupied {
		panic(fmt.Sprintf("reservoir: slot %d out of occupied range [0,%d)", slot, b.occupied))
	}
	return b.data[slot*b.stride : (slot+1)*b.stride]
}

// Capacity returns the maximum number of rows the buffer holds.
func (b *BlockBuffer) Capacity() int { return b.capacity }

// Occupied returns the current logical row count.
func (b *BlockBuffer) Occupied() int { return b.occupied }

// Stride returns the byte size of one row, 0 until the buffer is shaped.
func (b *BlockBuffer) Stride() int { return b.stride }

// Shaped reports whether the row geometry has been established.
func (b *BlockBuffer) Shaped() bool { return b.shaped }

// RowShape returns a copy of the established per-row dimensions.
func (b *BlockBuffer) RowShape() []int {
	return append([]int(nil), b.rowShape...)
}

// ElemSize returns the established element width in bytes.
func (b *BlockBuffer) ElemSize() int { return b.elemSize }
