package player

import "github.com/tunedeck/playback/telemetry"

// Player event types emitted to the configured telemetry sink.
const (
	EventActivate        telemetry.EventType = "player.activate"
	EventPause           telemetry.EventType = "player.pause"
	EventPauseSkipped    telemetry.EventType = "player.pause.skipped"
	EventStop            telemetry.EventType = "player.stop"
	EventObserverAdded   telemetry.EventType = "player.observer.added"
	EventObserverRemoved telemetry.EventType = "player.observer.removed"
	EventObserverPruned  telemetry.EventType = "player.observer.pruned"
	EventDispatchError   telemetry.EventType = "player.dispatch.error"
)
