package janitor

import "context"

// Sweep is a single cleanup task run by the janitor.
type Sweep interface {
	Name() string
	Run(ctx context.Context) error
}

// Registry tracks the sweeps the janitor executes each cycle.
type Registry struct {
	sweeps []Sweep
}

// NewRegistry builds a registry preloaded with the provided sweeps.
func NewRegistry(sweeps ...Sweep) *Registry {
	registry := &Registry{}
	for _, sweep := range sweeps {
		if sweep == nil {
			continue
		}
		registry.sweeps = append(registry.sweeps, sweep)
	}
	return registry
}

// Register adds a sweep to the registry.
func (r *Registry) Register(sweep Sweep) {
	if sweep == nil {
		return
	}
	r.sweeps = append(r.sweeps, sweep)
}

// Sweeps returns the registered sweeps in the order they were added.
func (r *Registry) Sweeps() []Sweep {
	sweeps := make([]Sweep, len(r.sweeps))
	copy(sweeps, r.sweeps)
	return sweeps
}
