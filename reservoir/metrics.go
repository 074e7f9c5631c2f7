package reservoir

import "go.uber.org/atomic"

// Metrics collects per-sampler counters. All fields are updated
// atomically so a caller may read them from another goroutine while the
// owning goroutine runs Process.
type Metrics struct {
	// VisitedRows counts non-duplicate rows processed.
	VisitedRows *atomic.Int64

	// AppendedRows counts rows appended while the reservoir was filling.
	AppendedRows *atomic.Int64

	// ReplacedRows counts rows that won a draw and overwrote a slot.
	ReplacedRows *atomic.Int64

	// DiscardedRows counts rows that lost their draw.
	DiscardedRows *atomic.Int64

	// DuplicateRows counts rows skipped because their key was already
	// represented in the reservoir.
	DuplicateRows *atomic.Int64
}

// NewMetrics creates a zeroed Metrics set.
func NewMetrics() *Metrics {
	return &Metrics{
		VisitedRows:   atomic.NewInt64(0),
		AppendedRows:  atomic.NewInt64(0),
		ReplacedRows:  atomic.NewInt64(0),
		DiscardedRows: atomic.NewInt64(0),
		DuplicateRows: atomic.NewInt64(0),
	}
}
