package observe

import "sync"

// Registry is an identity-keyed set of observer refs. It owns the mapping but
// never the observers themselves. All methods are safe for concurrent use.
type Registry[T any] struct {
	mu   sync.Mutex
	refs map[ID]Ref[T]
}

// NewRegistry creates an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{refs: make(map[ID]Ref[T])}
}

// Add inserts or replaces the entry for the ref's identity. Re-adding the
// same observer replaces its entry, so each transition notifies it once.
func (r *Registry[T]) Add(ref Ref[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refs[ref.ID()] = ref
}

// Remove deletes the entry for id and reports whether one existed. Removing
// an absent observer is not an error.
func (r *Registry[T]) Remove(id ID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.refs[id]
	if exists {
		delete(r.refs, id)
	}
	return exists
}

// Len reports the number of entries, counting stale refs that have not been
// swept yet.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.refs)
}

// Snapshot returns a copy of the current refs. Notification passes iterate
// the snapshot, so concurrent Add and Remove calls (including sweeps of
// stale entries mid-pass) never skip or double-visit a live entry.
func (r *Registry[T]) Snapshot() []Ref[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	refs := make([]Ref[T], 0, len(r.refs))
	for _, ref := range r.refs {
		refs = append(refs, ref)
	}
	return refs
}
