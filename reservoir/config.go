package reservoir

import "fmt"

// Config defines the fixed parameters of a reservoir. Both fields are
// set once at construction and never change for the life of the state.
type Config struct {
	// Capacity is the maximum number of rows the reservoir retains.
	Capacity int

	// KeyTracking enables external-key deduplication. When true every
	// batch must carry an id vector and the state maintains the
	// object/slot index; when false ids must not be supplied.
	KeyTracking bool
}

// Validate checks if the configuration is valid
func (cfg Config) Validate() error {
	if cfg.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be greater than 0, got %d", ErrConfiguration, cfg.Capacity)
	}
	return nil
}
