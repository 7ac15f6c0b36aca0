// Package observe provides the observer side of the playback notification
// mechanism: the Observer capability set, non-owning references to registered
// observers, and the identity-keyed registry a subject iterates when it
// broadcasts a transition.
//
// Observers are registered by pointer. The registry stores a relation and a
// lookup, never ownership: a Weak ref does not keep its observer alive, and an
// entry whose observer is gone is swept on the next notification pass.
package observe

// Observer receives playback state-change notifications. Implementations
// rarely care about every transition; embed NoOp or build an observer from
// individual callbacks with Funcs to get no-op defaults for the rest.
type Observer[T any] interface {
	// OnActivated reports that playback of item started.
	OnActivated(item T)

	// OnPaused reports that playback of item was paused.
	OnPaused(item T)

	// OnStopped reports that playback ended and the subject is idle.
	OnStopped()
}

// NoOp is an Observer that ignores every notification. Embed it to implement
// only the callbacks you care about.
type NoOp[T any] struct{}

func (NoOp[T]) OnActivated(item T) {}
func (NoOp[T]) OnPaused(item T)    {}
func (NoOp[T]) OnStopped()         {}
