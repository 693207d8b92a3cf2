package domain

// Snapshot is the full persisted state: every card, the active deck (if
// any), user-created directory labels, and settings. It round-trips as a
// single JSON blob.
type Snapshot struct {
	Cards       []Card   `json:"cards"`
	CurrentDeck *Deck    `json:"currentDeck"`
	Directories []string `json:"directories,omitempty"`
	Settings    Settings `json:"settings"`
}

// EmptySnapshot returns the state of a first run.
func EmptySnapshot() *Snapshot {
	return &Snapshot{Settings: DefaultSettings()}
}

// Migrate upgrades a snapshot loaded from a legacy blob, in one pass at load
// time: cards written before directory labels existed get theirs derived
// from the source, and settings are normalized. Idempotent.
func (s *Snapshot) Migrate() {
	for i := range s.Cards {
		if s.Cards[i].Directory == "" {
			s.Cards[i].Directory = DeriveDirectory(s.Cards[i].Source)
		}
	}
	if s.CurrentDeck != nil {
		for i := range s.CurrentDeck.Cards {
			if s.CurrentDeck.Cards[i].Directory == "" {
				s.CurrentDeck.Cards[i].Directory = DeriveDirectory(s.CurrentDeck.Cards[i].Source)
			}
		}
		if s.CurrentDeck.CurrentIndex < 0 {
			s.CurrentDeck.CurrentIndex = 0
		}
		if s.CurrentDeck.CurrentIndex > len(s.CurrentDeck.Cards) {
			s.CurrentDeck.CurrentIndex = len(s.CurrentDeck.Cards)
		}
	}
	s.Settings = s.Settings.Normalized()
}
