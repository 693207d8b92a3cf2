package ports

import "cardbox/internal/domain"

// StateStore persists the full snapshot as one opaque blob. Load never fails
// on a missing or malformed blob; it degrades to an empty snapshot so a
// damaged state file cannot brick the tool.
type StateStore interface {
	Load() (*domain.Snapshot, error)
	Save(*domain.Snapshot) error
}
