// Package player implements a subject that broadcasts playback state
// transitions to registered observers.
//
// The player holds a three-phase state (idle, playing, paused) over an opaque
// item type. Transitions are caller-driven: each one records the new state,
// runs the caller-supplied side-effect hook, and notifies every live observer
// in the registry. Observers registered through weak refs are pruned lazily
// when a notification pass finds them gone.
//
//	p, err := player.New[Track](&cfg, player.WithHooks(engineHooks))
//	p.AddObserver(observe.Weak[Track](display))
//	p.Activate(track)
package player

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/tunedeck/playback/observe"
	"github.com/tunedeck/playback/telemetry"
)

// Player is the subject. It owns its state and its observation registry;
// it never owns its observers.
//
// One mutex guards the state write and the registry snapshot taken for each
// notification pass, so notifications are always consistent with the
// transition that produced them. Callbacks run outside the lock, so an
// observer may call AddObserver or RemoveObserver from inside a callback.
type Player[T any] struct {
	id      string
	name    string
	policy  Policy
	hooks   Hooks[T]
	sink    telemetry.Sink
	logger  *slog.Logger
	onError func(error)

	mu       sync.Mutex
	state    State[T]
	registry *observe.Registry[T]
}

// Option configures a Player after config-driven initialization.
type Option[T any] func(*Player[T])

// WithHooks sets the side-effect hooks run on each transition.
func WithHooks[T any](hooks Hooks[T]) Option[T] {
	return func(p *Player[T]) { p.hooks = hooks }
}

// WithLogger overrides the default logger used for dispatch errors.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(p *Player[T]) { p.logger = logger }
}

// WithSink overrides the config-resolved telemetry sink.
func WithSink[T any](sink telemetry.Sink) Option[T] {
	return func(p *Player[T]) { p.sink = sink }
}

// WithErrorHook overrides the default dispatch-error handler. Only invoked
// under PolicyIsolate; the default logs the aggregated error.
func WithErrorHook[T any](fn func(error)) Option[T] {
	return func(p *Player[T]) { p.onError = fn }
}

// New creates an idle Player from configuration. The telemetry sink is
// resolved by name through the telemetry registry; options override
// config-created defaults.
func New[T any](cfg *Config, opts ...Option[T]) (*Player[T], error) {
	if cfg == nil {
		defaults := DefaultConfig()
		cfg = &defaults
	}

	switch cfg.Policy {
	case PolicyFailFast, PolicyIsolate, "":
	default:
		return nil, fmt.Errorf("unknown dispatch policy: %s", cfg.Policy)
	}

	sinkName := cfg.Telemetry
	if sinkName == "" {
		sinkName = "noop"
	}
	sink, err := telemetry.Lookup(sinkName)
	if err != nil {
		return nil, err
	}

	p := &Player[T]{
		id:       uuid.Must(uuid.NewV7()).String(),
		name:     cfg.Name,
		policy:   cfg.Policy,
		sink:     sink,
		logger:   slog.Default(),
		registry: observe.NewRegistry[T](),
	}
	if p.policy == "" {
		p.policy = PolicyFailFast
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.onError == nil {
		p.onError = func(err error) {
			p.logger.Error("observer dispatch failed", "player", p.name, "error", err)
		}
	}

	return p, nil
}

// ID returns the player's unique identifier.
func (p *Player[T]) ID() string {
	return p.id
}

// State returns the current playback state.
func (p *Player[T]) State() State[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Observers reports the number of registry entries, counting stale refs that
// have not been swept yet.
func (p *Player[T]) Observers() int {
	return p.registry.Len()
}

// AddObserver registers ref, replacing any existing entry with the same
// identity. Re-adding an observer never duplicates its notifications.
func (p *Player[T]) AddObserver(ref observe.Ref[T]) {
	p.registry.Add(ref)
	p.emit(EventObserverAdded, slog.LevelDebug, map[string]any{"observer": string(ref.ID())})
}

// RemoveObserver drops the entry for ref's identity. Removing an observer
// that was never added is not an error.
func (p *Player[T]) RemoveObserver(ref observe.Ref[T]) {
	if p.registry.Remove(ref.ID()) {
		p.emit(EventObserverRemoved, slog.LevelDebug, map[string]any{"observer": string(ref.ID())})
	}
}

// Activate transitions to Playing(item) from any phase, runs the start hook,
// and notifies every live observer with OnActivated.
func (p *Player[T]) Activate(item T) {
	p.mu.Lock()
	p.state = State[T]{phase: Playing, item: item, hasItem: true}
	refs := p.registry.Snapshot()
	p.mu.Unlock()

	if p.hooks.OnStart != nil {
		p.hooks.OnStart(item)
	}
	p.emit(EventActivate, slog.LevelInfo, map[string]any{"observers": len(refs)})

	p.dispatch(refs, func(obs observe.Observer[T]) { obs.OnActivated(item) })
}

// Pause transitions a Playing player to Paused on the same item, runs the
// pause hook, and notifies OnPaused. Calling Pause while Idle or already
// Paused is a deliberate no-op: state is unchanged and nothing is notified.
func (p *Player[T]) Pause() {
	p.mu.Lock()
	if p.state.phase != Playing {
		phase := p.state.phase
		p.mu.Unlock()
		p.emit(EventPauseSkipped, slog.LevelDebug, map[string]any{"phase": phase.String()})
		return
	}
	item := p.state.item
	p.state.phase = Paused
	refs := p.registry.Snapshot()
	p.mu.Unlock()

	if p.hooks.OnPause != nil {
		p.hooks.OnPause(item)
	}
	p.emit(EventPause, slog.LevelInfo, map[string]any{"observers": len(refs)})

	p.dispatch(refs, func(obs observe.Observer[T]) { obs.OnPaused(item) })
}

// Stop transitions to Idle from any phase, runs the stop hook, and notifies
// every live observer with OnStopped.
func (p *Player[T]) Stop() {
	p.mu.Lock()
	p.state = State[T]{phase: Idle}
	refs := p.registry.Snapshot()
	p.mu.Unlock()

	if p.hooks.OnStop != nil {
		p.hooks.OnStop()
	}
	p.emit(EventStop, slog.LevelInfo, map[string]any{"observers": len(refs)})

	p.dispatch(refs, func(obs observe.Observer[T]) { obs.OnStopped() })
}

// dispatch resolves each snapshotted ref, sweeping entries whose observer is
// gone without dispatching to them, and invokes notify on the rest according
// to the dispatch policy.
func (p *Player[T]) dispatch(refs []observe.Ref[T], notify func(observe.Observer[T])) {
	var errs error
	for _, ref := range refs {
		obs, ok := ref.Resolve()
		if !ok {
			if p.registry.Remove(ref.ID()) {
				p.emit(EventObserverPruned, slog.LevelDebug, map[string]any{"observer": string(ref.ID())})
			}
			continue
		}

		if p.policy == PolicyIsolate {
			if err := invoke(obs, notify); err != nil {
				errs = multierr.Append(errs, err)
			}
			continue
		}

		notify(obs)
	}

	if errs != nil {
		p.emit(EventDispatchError, slog.LevelError, map[string]any{"error": errs.Error()})
		p.onError(errs)
	}
}

// invoke runs notify under recover so one failing observer cannot stop the
// pass.
func invoke[T any](obs observe.Observer[T], notify func(observe.Observer[T])) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("observer callback panicked: %v", r)
		}
	}()

	notify(obs)
	return nil
}

func (p *Player[T]) emit(t telemetry.EventType, level slog.Level, data map[string]any) {
	p.sink.OnEvent(context.Background(), telemetry.Event{
		Type:   t,
		Level:  level,
		Time:   time.Now(),
		Player: p.name,
		Data:   data,
	})
}
