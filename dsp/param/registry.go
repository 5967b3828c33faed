package param

import (
	"fmt"
	"sync"
)

// Registry manages an ordered parameter set.
type Registry struct {
	mu     sync.RWMutex
	byID   map[uint32]*Parameter
	byName map[string]*Parameter
	order  []*Parameter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[uint32]*Parameter),
		byName: make(map[string]*Parameter),
	}
}

// Add registers parameters in order. IDs and names must be unique.
func (r *Registry) Add(params ...*Parameter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range params {
		if p == nil {
			return fmt.Errorf("param: nil parameter")
		}
		if _, exists := r.byID[p.ID]; exists {
			return fmt.Errorf("param: duplicate id %d", p.ID)
		}
		if _, exists := r.byName[p.Name]; exists {
			return fmt.Errorf("param: duplicate name %q", p.Name)
		}

		r.byID[p.ID] = p
		r.byName[p.Name] = p
		r.order = append(r.order, p)
	}

	return nil
}

// Get retrieves a parameter by ID, or nil.
func (r *Registry) Get(id uint32) *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.byID[id]
}

// Lookup retrieves a parameter by name, or nil.
func (r *Registry) Lookup(name string) *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.byName[name]
}

// Count returns the number of parameters.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}

// All returns all parameters in registration order.
func (r *Registry) All() []*Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Parameter, len(r.order))
	copy(out, r.order)

	return out
}

// Values copies the current value of every parameter into dst, indexed by
// parameter ID. IDs outside dst are skipped.
func (r *Registry) Values(dst []float64) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.order {
		if int(p.ID) < len(dst) {
			dst[p.ID] = p.Value()
		}
	}
}

// ResetAll restores every parameter to its default.
func (r *Registry) ResetAll() {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.order {
		p.Reset()
	}
}
