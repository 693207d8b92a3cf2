package ports

import "os/exec"

// EditorOpener defines the interface for opening a source note in an
// external editor
type EditorOpener interface {
	// OpenFile opens the specified note in the user's preferred editor.
	// It uses $EDITOR, falling back to common editors.
	OpenFile(path string) error

	// Command returns an exec.Cmd for opening a note in the editor.
	// This is useful for integrating with bubbletea's ExecProcess.
	Command(path string) (*exec.Cmd, error)
}
