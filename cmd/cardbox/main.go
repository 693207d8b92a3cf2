package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"cardbox/internal/adapters/editor"
	"cardbox/internal/adapters/state"
	"cardbox/internal/adapters/tui"
	"cardbox/internal/adapters/tui/views"
	"cardbox/internal/config"
	"cardbox/internal/ports"
	"cardbox/internal/store"
)

func main() {
	fileStore := state.NewFileStore(config.StatePath())
	cardStore, err := store.Open(fileStore)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app := tui.NewApp(cardStore, editor.NewOpener(config.NotesDir()))
	p := tea.NewProgram(app, tea.WithAltScreen())

	// Push store changes into the program loop so views refresh.
	cardStore.Subscribe(func(e ports.Event) {
		p.Send(views.StoreChangedMsg{Event: e})
	})

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
