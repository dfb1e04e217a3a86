package history

import (
	"sort"
	"sync"
)

// Registry maps action names to operations.
//
// The host registers operations before the first Perform. Names are matched
// exactly. Registering a name again replaces the previous operation.
type Registry[D any] struct {
	mu  sync.RWMutex
	ops map[string]Operation[D]
}

// NewRegistry creates an empty registry.
func NewRegistry[D any]() *Registry[D] {
	return &Registry[D]{
		ops: make(map[string]Operation[D]),
	}
}

// Register adds op under name.
func (r *Registry[D]) Register(name string, op Operation[D]) error {
	if name == "" {
		return ErrEmptyName
	}
	if op == nil {
		return ErrNilOperation
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops[name] = op
	return nil
}

// Unregister removes the operation registered under name.
func (r *Registry[D]) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.ops, name)
}

// Get returns the operation registered under name.
func (r *Registry[D]) Get(name string) (Operation[D], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.ops[name]
	return op, ok
}

// Has returns true if an operation is registered under name.
func (r *Registry[D]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.ops[name]
	return ok
}

// Names returns all registered names, sorted.
func (r *Registry[D]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered operations.
func (r *Registry[D]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ops)
}
