package editor

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestCommandUsesEditorEnv(t *testing.T) {
	t.Setenv("EDITOR", "vi")
	o := NewOpener("/notes")

	cmd, err := o.Command("go/slices.md")
	if err != nil {
		t.Fatalf("Command: %v", err)
	}
	if !strings.HasSuffix(cmd.Path, "vi") && cmd.Args[0] != "vi" {
		t.Errorf("editor = %q, want vi", cmd.Args[0])
	}
	want := filepath.Join("/notes", "go/slices.md")
	if cmd.Args[len(cmd.Args)-1] != want {
		t.Errorf("path arg = %q, want %q", cmd.Args[len(cmd.Args)-1], want)
	}
}

func TestCommandKeepsAbsolutePath(t *testing.T) {
	t.Setenv("EDITOR", "vi")
	o := NewOpener("/notes")

	cmd, err := o.Command("/elsewhere/page.md")
	if err != nil {
		t.Fatalf("Command: %v", err)
	}
	if got := cmd.Args[len(cmd.Args)-1]; got != "/elsewhere/page.md" {
		t.Errorf("path arg = %q, want absolute path untouched", got)
	}
}
