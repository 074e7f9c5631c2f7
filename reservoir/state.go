package reservoir

// State is the caller-owned accumulator a Sampler mutates in place. One
// State tracks one stream; it is created once, passed into every Process
// call, and never reset by the sampler itself. Callers that restore a
// State from their own persistence may set VisitCount directly; Process
// rejects negative values.
type State struct {
	// Reservoir holds the sampled rows.
	Reservoir *BlockBuffer

	// VisitCount is the number of distinct (non-duplicate) rows seen
	// across all batches. It never decreases.
	VisitCount int64

	// Index is the dedup index, nil unless key tracking is enabled.
	Index *ObjectIndex
}

// NewState creates an empty State for the given configuration.
func NewState(cfg Config) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	st := &State{
		Reservoir: NewBlockBuffer(cfg.Capacity),
	}
	if cfg.KeyTracking {
		st.Index = NewObjectIndex(cfg.Capacity)
	}
	return st, nil
}
