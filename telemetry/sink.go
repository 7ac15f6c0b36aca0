// Package telemetry carries the library's own diagnostic events. It is
// deliberately separate from the domain observer mechanism in package
// observe: sinks watch the player implementation, observers watch playback.
package telemetry

import (
	"context"
	"log/slog"
	"time"
)

// EventType identifies the kind of diagnostic event. The player package
// defines its own constants using this type (e.g. "player.activate").
type EventType string

// Event is a single diagnostic record emitted by a player.
type Event struct {
	Type   EventType
	Level  slog.Level
	Time   time.Time
	Player string
	Data   map[string]any
}

// Sink receives diagnostic events for logging or test capture.
type Sink interface {
	OnEvent(ctx context.Context, event Event)
}
