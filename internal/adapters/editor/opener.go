// Package editor opens a card's source note in the user's editor.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Opener implements ports.EditorOpener. Relative note paths resolve
// against notesDir.
type Opener struct {
	notesDir string
}

// NewOpener creates a new editor opener rooted at notesDir
func NewOpener(notesDir string) *Opener {
	return &Opener{notesDir: notesDir}
}

// OpenFile opens a note in the user's preferred editor
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a note in the editor
// This is useful for integrating with bubbletea's ExecProcess
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	editor := o.findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(o.notesDir, path)
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// findEditor returns the editor to use
func (o *Opener) findEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	// Try common editors
	editors := []string{"nvim", "vim", "vi", "nano", "code"}
	for _, editor := range editors {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}

	return ""
}
