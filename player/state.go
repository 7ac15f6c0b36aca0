package player

// Phase identifies which playback state the player is in.
type Phase int

const (
	Idle Phase = iota
	Playing
	Paused
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// State is the player's current phase plus, for Playing and Paused, the item
// it refers to. A transition replaces the whole value; Idle carries no item.
// The player never inspects the item, it only hands it to observers.
type State[T any] struct {
	phase   Phase
	item    T
	hasItem bool
}

// Phase returns the current phase.
func (s State[T]) Phase() Phase {
	return s.phase
}

// Item returns the current item and whether the phase carries one. Only
// Playing and Paused states carry an item.
func (s State[T]) Item() (T, bool) {
	return s.item, s.hasItem
}
