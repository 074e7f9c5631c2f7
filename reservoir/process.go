package reservoir

import (
	"fmt"

	"go.uber.org/zap"
)

// Process folds one batch into the state. Rows are consumed strictly in
// arrival order; duplicates of already-admitted keys are skipped without
// touching the reservoir or the visit count. On return the state has
// absorbed every row of the batch, or an error describing the violated
// precondition. Errors do not roll back rows already committed.
func (p *Sampler) Process(batch Batch, st *State) error {
	if err := p.checkState(st); err != nil {
		return err
	}
	if err := batch.validate(); err != nil {
		return err
	}
	if err := p.checkIDs(batch); err != nil {
		return err
	}

	// An empty first batch carries shape but no rows: adopt the shape so
	// later batches are held to it, and leave everything else untouched.
	if !st.Reservoir.Shaped() && batch.Rows() == 0 {
		st.Reservoir.AdoptShapeFrom(batch)
		return nil
	}

	if err := st.Reservoir.Reserve(batch.rowShape(), batch.ElemSize); err != nil {
		return err
	}
	if batch.Rows() == 0 {
		return nil
	}

	newRows := p.countNewRows(batch, st)
	st.Reservoir.GrowOccupiedTo(min(p.cfg.Capacity, st.Reservoir.Occupied()+newRows))

	before := st.VisitCount
	duplicates := 0
	for i := 0; i < batch.Rows(); i++ {
		var id int64
		if st.Index != nil {
			id = batch.IDs[i]
			if _, ok := st.Index.Lookup(id); ok {
				// Already in the pool. Only the first-seen payload for a
				// key is ever retained.
				duplicates++
				p.metrics.DuplicateRows.Inc()
				continue
			}
		}
		p.sampleRow(st, batch.row(i), id)
	}

	// Sanity check: every row counted as new up front must have advanced
	// the visit count exactly once.
	if st.VisitCount != before+int64(newRows) {
		return fmt.Errorf("%w: visit count advanced by %d, expected %d",
			ErrInternalConsistency, st.VisitCount-before, newRows)
	}

	p.logger.Debug("Processed batch",
		zap.Int("rows", batch.Rows()),
		zap.Int("duplicates", duplicates),
		zap.Int("occupied", st.Reservoir.Occupied()),
		zap.Int64("visit_count", st.VisitCount))

	return nil
}

// checkState validates the caller-owned state before any mutation.
func (p *Sampler) checkState(st *State) error {
	if st == nil || st.Reservoir == nil {
		return fmt.Errorf("%w: nil state", ErrConfiguration)
	}
	if st.Reservoir.Capacity() != p.cfg.Capacity {
		return fmt.Errorf("%w: state capacity %d does not match sampler capacity %d",
			ErrConfiguration, st.Reservoir.Capacity(), p.cfg.Capacity)
	}
	if st.VisitCount < 0 {
		return fmt.Errorf("%w: visit count must be non-negative, got %d",
			ErrConfiguration, st.VisitCount)
	}
	if p.cfg.KeyTracking {
		if st.Index == nil {
			return fmt.Errorf("%w: key tracking enabled but state has no index", ErrConfiguration)
		}
		if st.Index.Capacity() != p.cfg.Capacity {
			return fmt.Errorf("%w: index covers %d slots, sampler capacity is %d",
				ErrConfiguration, st.Index.Capacity(), p.cfg.Capacity)
		}
	} else if st.Index != nil {
		return fmt.Errorf("%w: key tracking disabled but state has an index", ErrConfiguration)
	}
	return nil
}

// checkIDs enforces that an id vector is supplied exactly when key
// tracking is configured. Length validation happens in batch.validate.
func (p *Sampler) checkIDs(batch Batch) error {
	if p.cfg.KeyTracking && batch.IDs == nil {
		return fmt.Errorf("%w: key tracking enabled but batch has no ids", ErrSizeMismatch)
	}
	if !p.cfg.KeyTracking && batch.IDs != nil {
		return fmt.Errorf("%w: key tracking disabled but batch has %d ids",
			ErrSizeMismatch, len(batch.IDs))
	}
	return nil
}

// countNewRows scans the id vector against the current index. Without
// key tracking every row is new. The scan deliberately runs before any
// row is admitted, so a key appearing more than once in one batch is
// counted once per occurrence.
func (p *Sampler) countNewRows(batch Batch, st *State) int {
	if st.Index == nil {
		return batch.Rows()
	}
	n := 0
	for _, id := range batch.IDs {
		if _, ok := st.Index.Lookup(id); !ok {
			n++
		}
	}
	return n
}
