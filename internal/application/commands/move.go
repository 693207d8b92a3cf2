package commands

import (
	"context"
	"fmt"

	"cardbox/internal/application"
	"cardbox/internal/ports"
)

// MoveSourceResult contains the result of moving a source
type MoveSourceResult struct {
	Source    string
	Directory string
	Message   string
}

// MoveSourceCommand reassigns every card from a source to a directory label
type MoveSourceCommand struct {
	store     ports.CardStore
	Source    string
	Directory string
}

// NewMoveSourceCommand creates a new MoveSourceCommand
func NewMoveSourceCommand(store ports.CardStore, source, directory string) *MoveSourceCommand {
	return &MoveSourceCommand{
		store:     store,
		Source:    source,
		Directory: directory,
	}
}

// Validate checks if the move operation is valid
func (c *MoveSourceCommand) Validate() error {
	if err := application.ValidateRequired("source", c.Source); err != nil {
		return err
	}
	return application.ValidateDirectoryName(c.Directory)
}

// Execute runs the move source command
func (c *MoveSourceCommand) Execute(ctx context.Context) (*MoveSourceResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.store.MoveSourceToDirectory(c.Source, c.Directory); err != nil {
		return nil, fmt.Errorf("failed to move source: %w", err)
	}

	return &MoveSourceResult{
		Source:    c.Source,
		Directory: c.Directory,
		Message:   fmt.Sprintf("Moved %s to %s", c.Source, c.Directory),
	}, nil
}
