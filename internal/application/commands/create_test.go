package commands

import (
	"context"
	"strings"
	"testing"
)

func TestCreateCardCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		source  string
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid text",
			text:   "something worth keeping",
			source: "notes/page.md",
		},
		{
			name:    "empty text",
			text:    "",
			wantErr: true,
			errMsg:  "card text is empty",
		},
		{
			name:    "whitespace only",
			text:    "   \n\t  ",
			wantErr: true,
			errMsg:  "card text is empty",
		},
		{
			name: "missing source is fine",
			text: "text without a source",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &CreateCardCommand{Text: tt.text, Source: tt.source}
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

func TestCreateCardCommand_Execute(t *testing.T) {
	store := newFakeStore()
	cmd := NewCreateCardCommand(store, "  remember this  ", "notes/sub/page.md")

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.Card.Text != "remember this" {
		t.Errorf("expected trimmed text, got %q", result.Card.Text)
	}
	if result.Card.Directory != "notes/sub" {
		t.Errorf("expected derived directory notes/sub, got %q", result.Card.Directory)
	}
	if len(store.cards) != 1 {
		t.Errorf("expected 1 card in store, got %d", len(store.cards))
	}
}

func TestCaptureCommand_Execute(t *testing.T) {
	store := newFakeStore()
	content := "# Hi\n\nFirst paragraph long enough to keep.\n\nSecond paragraph long enough to keep.\n"
	cmd := NewCaptureCommand(store, "notes/doc.md", content)

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(result.Cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(result.Cards))
	}
	if result.Skipped != 1 {
		t.Errorf("expected 1 skipped block (short heading), got %d", result.Skipped)
	}
	if !strings.HasPrefix(result.Cards[0].Text, "First") {
		t.Errorf("cards out of document order: %q", result.Cards[0].Text)
	}
}

func TestCaptureCommand_NoCandidates(t *testing.T) {
	store := newFakeStore()
	cmd := NewCaptureCommand(store, "notes/doc.md", "# Hi\n\nshort\n")

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(result.Cards) != 0 {
		t.Errorf("expected no cards, got %d", len(result.Cards))
	}
	if len(store.cards) != 0 {
		t.Errorf("store must stay untouched when nothing qualifies, got %d cards", len(store.cards))
	}
}
