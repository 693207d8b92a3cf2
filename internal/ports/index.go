package ports

import "cardbox/internal/domain"

// SearchIndex is a keyword index over cards, rebuilt from the store on
// demand. It is derived state; the snapshot remains the source of truth.
type SearchIndex interface {
	Rebuild(cards []domain.Card) error
	Search(query string) ([]domain.SearchResult, error)
	Close() error
}
