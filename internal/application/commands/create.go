package commands

import (
	"context"
	"fmt"

	"cardbox/internal/application"
	"cardbox/internal/domain"
	"cardbox/internal/ports"
)

// CreateCardResult contains the result of creating a card
type CreateCardResult struct {
	Card    domain.Card
	Message string
}

// CreateCardCommand turns a captured snippet into a card
type CreateCardCommand struct {
	store  ports.CardStore
	Text   string
	Source string
}

// NewCreateCardCommand creates a new CreateCardCommand
func NewCreateCardCommand(store ports.CardStore, text, source string) *CreateCardCommand {
	return &CreateCardCommand{
		store:  store,
		Text:   text,
		Source: source,
	}
}

// Validate checks if the create operation is valid
func (c *CreateCardCommand) Validate() error {
	return application.ValidateCardText(c.Text)
}

// Execute runs the create card command
func (c *CreateCardCommand) Execute(ctx context.Context) (*CreateCardResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	card, err := c.store.CreateCard(c.Text, c.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	return &CreateCardResult{
		Card:    card,
		Message: fmt.Sprintf("Created card %s in %s", card.ID, card.Directory),
	}, nil
}
