package reservoir

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// Sampler drives streaming Algorithm R over a caller-owned State. It
// holds everything that is not stream state: configuration, the random
// source, logging, and metrics. A Sampler is single-threaded; the caller
// must serialize Process calls against it and against the State.
type Sampler struct {
	cfg Config

	// Instance-local random source, one inclusive-range draw per
	// non-duplicate row once the reservoir is full.
	random *rand.Rand

	logger  *zap.Logger
	metrics *Metrics
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithRandomSource replaces the sampler's random source. Tests use this
// with a seeded source to make the accept/replace/discard sequence
// reproducible.
func WithRandomSource(src rand.Source) Option {
	return func(p *Sampler) {
		p.random = rand.New(src)
	}
}

// WithLogger attaches a logger. The default is a nop logger.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Sampler) {
		p.logger = logger
	}
}

// WithMetrics attaches a metrics set updated during Process.
func WithMetrics(m *Metrics) Option {
	return func(p *Sampler) {
		p.metrics = m
	}
}

// NewSampler creates a sampler for the given configuration.
func NewSampler(cfg Config, opts ...Option) (*Sampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Sampler{
		cfg:     cfg,
		random:  rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:  zap.NewNop(),
		metrics: NewMetrics(),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.logger.Info("Reservoir sampler created",
		zap.Int("capacity", cfg.Capacity),
		zap.Bool("key_tracking", cfg.KeyTracking))

	return p, nil
}

// Metrics returns the sampler's counter set.
func (p *Sampler) Metrics() *Metrics {
	return p.metrics
}

// sampleRow runs the Algorithm R decision for one non-duplicate row and
// commits its effects: at most one block write, at most one index bind,
// and exactly one visit count increment.
//
// With v rows visited so far:
//   - v < capacity: append into slot v, so the first capacity distinct
//     rows are always retained.
//   - otherwise: draw r uniformly from [0, v] inclusive; r < capacity
//     replaces slot r, anything else discards the row.
func (p *Sampler) sampleRow(st *State, row []byte, id int64) {
	v := st.VisitCount

	slot := int64(-1)
	if v < int64(p.cfg.Capacity) {
		slot = v
	} else if r := p.random.Int63n(v + 1); r < int64(p.cfg.Capacity) {
		slot = r
	}

	if slot >= 0 {
		st.Reservoir.WriteBlock(int(slot), row)
		if st.Index != nil {
			st.Index.Bind(int(slot), id)
		}
		if v < int64(p.cfg.Capacity) {
			p.metrics.AppendedRows.Inc()
		} else {
			p.metrics.ReplacedRows.Inc()
		}
	} else {
		p.metrics.DiscardedRows.Inc()
	}

	st.VisitCount++
	p.metrics.VisitedRows.Inc()
}
