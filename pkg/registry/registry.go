// Package registry maps side-effect names used in scene files to Go callbacks.
package registry

import (
	"fmt"
	"slices"
	"sync"
)

// Effect runs when a unit is committed for the first time.
// It receives the id of the unit that triggered it.
type Effect func(unitID string)

// Registry manages the available side effects.
type Registry struct {
	mu      sync.RWMutex
	effects map[string]Effect
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		effects: make(map[string]Effect),
	}
}

// Register adds an effect to the registry.
// If an effect with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn Effect) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.effects[name] = fn
}

// Bind returns a callback running the named effect for unitID.
// Returns an error if the effect is not registered.
func (r *Registry) Bind(name, unitID string) (func(), error) {
	r.mu.RLock()
	fn, ok := r.effects[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("effect not found: %s", name)
	}
	return func() { fn(unitID) }, nil
}

// Names lists the registered effects in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.effects))
	for name := range r.effects {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
