package commands

import (
	"context"
	"strings"
	"testing"
)

func TestMoveSourceCommand_Validate(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		directory string
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "valid move",
			source:    "notes/page.md",
			directory: "archive",
		},
		{
			name:      "empty source",
			source:    "",
			directory: "archive",
			wantErr:   true,
			errMsg:    "source is required",
		},
		{
			name:      "empty directory",
			source:    "notes/page.md",
			directory: "",
			wantErr:   true,
			errMsg:    "directory name is empty",
		},
		{
			name:      "blank directory",
			source:    "notes/page.md",
			directory: "   ",
			wantErr:   true,
			errMsg:    "directory name is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &MoveSourceCommand{Source: tt.source, Directory: tt.directory}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestMoveSourceCommand_Execute(t *testing.T) {
	store := newFakeStore()
	cmd := NewMoveSourceCommand(store, "notes/page.md", "archive")

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if store.moved["notes/page.md"] != "archive" {
		t.Errorf("store did not record the move: %v", store.moved)
	}
	if result.Message == "" {
		t.Error("expected a user-facing message")
	}
}
