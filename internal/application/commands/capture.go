package commands

import (
	"context"
	"fmt"

	"cardbox/internal/application"
	"cardbox/internal/domain"
	"cardbox/internal/ports"
	"cardbox/internal/segment"
)

// CaptureResult contains the result of capturing a document
type CaptureResult struct {
	Cards   []domain.Card
	Skipped int // blocks dropped by the noise filter
	Message string
}

// CaptureCommand segments a markdown document and bulk-creates a card per
// candidate block, in document order.
type CaptureCommand struct {
	store   ports.CardStore
	Source  string
	Content string
}

// NewCaptureCommand creates a new CaptureCommand
func NewCaptureCommand(store ports.CardStore, source, content string) *CaptureCommand {
	return &CaptureCommand{
		store:   store,
		Source:  source,
		Content: content,
	}
}

// Validate checks if the capture operation is valid
func (c *CaptureCommand) Validate() error {
	if err := application.ValidateRequired("source", c.Source); err != nil {
		return err
	}
	if err := application.ValidateRequired("content", c.Content); err != nil {
		return err
	}
	return nil
}

// Execute runs the capture command
func (c *CaptureCommand) Execute(ctx context.Context) (*CaptureResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	blocks := segment.Segment(c.Content)
	candidates := segment.Candidates(c.Content)
	if len(candidates) == 0 {
		return &CaptureResult{
			Skipped: len(blocks),
			Message: "No blocks long enough to capture",
		}, nil
	}

	cards, err := c.store.CreateCardsFromBlocks(c.Source, candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to capture %s: %w", c.Source, err)
	}

	return &CaptureResult{
		Cards:   cards,
		Skipped: len(blocks) - len(candidates),
		Message: fmt.Sprintf("Captured %d cards from %s", len(cards), c.Source),
	}, nil
}
