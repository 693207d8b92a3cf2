package ports

// Event tells observers which derived state a mutation touched.
type Event int

const (
	EventCards Event = iota
	EventDeck
	EventDirectories
	EventSettings
)

func (e Event) String() string {
	switch e {
	case EventCards:
		return "cards"
	case EventDeck:
		return "deck"
	case EventDirectories:
		return "directories"
	case EventSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// Observer receives change notifications after a mutation has been applied
// and persisted, so it always observes post-mutation, non-stale state.
type Observer func(Event)
