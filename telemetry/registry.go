package telemetry

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrUnknownSink is returned by Lookup for a name with no registration.
var ErrUnknownSink = errors.New("unknown telemetry sink")

var (
	sinks = map[string]Sink{
		"noop": NoopSink{},
		"slog": NewSlogSink(slog.Default()),
	}
	mutex sync.RWMutex
)

// Lookup returns a registered sink by name. Pre-registered sinks: "noop"
// (NoopSink) and "slog" (default logger).
func Lookup(name string) (Sink, error) {
	mutex.RLock()
	defer mutex.RUnlock()

	sink, exists := sinks[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSink, name)
	}
	return sink, nil
}

// Register adds or replaces a named sink in the global registry.
func Register(name string, sink Sink) {
	mutex.Lock()
	defer mutex.Unlock()

	sinks[name] = sink
}
