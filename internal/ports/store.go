package ports

import "cardbox/internal/domain"

// CardStore is the collaborator-facing surface of the card store. The TUI,
// CLI and MCP adapters all speak this interface; internal/store owns the
// implementation.
type CardStore interface {
	// Card mutations
	CreateCard(text, source string) (domain.Card, error)
	CreateCardsFromBlocks(source string, texts []string) ([]domain.Card, error)
	DeleteCard(id string) error
	MarkReviewed(id string, kept bool) error
	ResetReviewedKept() error
	MoveSourceToDirectory(source, directory string) error

	// Derived views
	Unreviewed() []domain.Card
	All() []domain.Card
	AllPaged(page, size int) (cards []domain.Card, total int)
	Stats() (total, reviewed, pending int)

	// Directory labels
	Directories() []string
	SourcesInDirectory(directory string) []string
	CardsInDirectory(directory string) []domain.Card
	CardsFromSource(source string) []domain.Card
	CreateDirectory(name string) error
	DeleteDirectory(name string) error

	// Review session
	Deck() *domain.Deck
	StartReview(selection []domain.Card) (*domain.Deck, error)
	RecordDecision(keep bool) (domain.Card, error)
	ClearDeck() error

	// Settings and persistence
	Settings() domain.Settings
	UpdateSettings(domain.Settings) error
	Flush() error

	// Change notification
	Subscribe(Observer)
}
