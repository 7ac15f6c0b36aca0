package player

// Hooks carries the caller-supplied side effects that accompany each
// transition: starting, pausing, and stopping the underlying playback engine.
// The state machine itself never touches the engine; it records the new phase,
// runs the matching hook, then notifies observers. Nil hooks are skipped.
type Hooks[T any] struct {
	OnStart func(item T)
	OnPause func(item T)
	OnStop  func()
}
