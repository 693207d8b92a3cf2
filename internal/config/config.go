package config

import (
	"os"
	"path/filepath"
	"strings"
)

const appDirName = "cardbox"

// DataDir returns the directory holding the card state and search index.
// CARDBOX_HOME overrides; otherwise XDG_DATA_HOME or ~/.local/share.
func DataDir() string {
	if env := os.Getenv("CARDBOX_HOME"); env != "" {
		return ExpandHome(env)
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(ExpandHome(xdg), appDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return appDirName
	}
	return filepath.Join(home, ".local", "share", appDirName)
}

// StatePath is the JSON snapshot file under the data dir.
func StatePath() string {
	return filepath.Join(DataDir(), "cards.json")
}

// IndexPath is the sqlite search index under the data dir.
func IndexPath() string {
	return filepath.Join(DataDir(), "index.db")
}

// NotesDir returns the directory card source paths resolve against when
// opening a note in the editor. CARDBOX_NOTES overrides; otherwise the
// current directory.
func NotesDir() string {
	if env := os.Getenv("CARDBOX_NOTES"); env != "" {
		return ExpandHome(env)
	}
	return "."
}

// ExpandHome resolves a leading ~ against the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
