package observe

// Funcs builds an Observer from individual callbacks. Nil fields are no-ops,
// so callers supply only the notifications they care about:
//
//	progress := &observe.Funcs[Track]{
//		Activated: func(t Track) { bar.Start(t) },
//		Stopped:   func() { bar.Reset() },
//	}
//	subject.AddObserver(observe.Weak[Track](progress))
//
// Funcs has pointer identity like any other observer: the same *Funcs
// registered twice occupies one registry entry.
type Funcs[T any] struct {
	Activated func(item T)
	Paused    func(item T)
	Stopped   func()
}

func (f *Funcs[T]) OnActivated(item T) {
	if f.Activated != nil {
		f.Activated(item)
	}
}

func (f *Funcs[T]) OnPaused(item T) {
	if f.Paused != nil {
		f.Paused(item)
	}
}

func (f *Funcs[T]) OnStopped() {
	if f.Stopped != nil {
		f.Stopped()
	}
}
