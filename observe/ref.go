package observe

import (
	"fmt"
	"weak"
)

// ID is a stable identity token for a registered observer. It is derived from
// the observer's pointer identity, not its value: registering the same
// instance twice yields the same ID, so re-adding replaces rather than
// duplicates.
type ID string

// Ref is the registry's record of one observer: an identity plus a
// non-owning handle. Resolve may fail once the underlying observer is gone;
// callers treat that as an ordinary outcome and remove the entry.
type Ref[T any] interface {
	ID() ID
	Resolve() (Observer[T], bool)
}

// Weak returns a Ref backed by a weak pointer. The registry never extends the
// observer's lifetime: once the caller drops its last strong reference the
// entry becomes inert and is swept, without dispatch, on the next
// notification pass.
//
// The item type is not inferable from the observer, so calls name it
// explicitly:
//
//	display := &Display{}
//	subject.AddObserver(observe.Weak[Track](display))
func Weak[T any, O any, PO interface {
	*O
	Observer[T]
}](obs PO) Ref[T] {
	return weakRef[T, O, PO]{
		id:  identity(obs),
		ptr: weak.Make((*O)(obs)),
	}
}

type weakRef[T any, O any, PO interface {
	*O
	Observer[T]
}] struct {
	id  ID
	ptr weak.Pointer[O]
}

func (r weakRef[T, O, PO]) ID() ID { return r.id }

func (r weakRef[T, O, PO]) Resolve() (Observer[T], bool) {
	p := r.ptr.Value()
	if p == nil {
		return nil, false
	}
	return PO(p), true
}

// Strong returns a Ref that retains the observer. Resolution never fails; the
// entry lives until it is removed explicitly. Use it when the caller already
// ties the observer's lifetime to the subject's.
func Strong[T any](obs Observer[T]) Ref[T] {
	return strongRef[T]{id: identity(obs), obs: obs}
}

type strongRef[T any] struct {
	id  ID
	obs Observer[T]
}

func (r strongRef[T]) ID() ID { return r.id }

func (r strongRef[T]) Resolve() (Observer[T], bool) {
	return r.obs, true
}

// identity derives an ID from the observer's pointer.
func identity(obs any) ID {
	return ID(fmt.Sprintf("%p", obs))
}
