package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"cardbox/internal/adapters/state"
	"cardbox/internal/config"
	"cardbox/internal/ports"
	"cardbox/internal/store"
)

var (
	statePath string
	verbose   bool
	cardStore ports.CardStore
	logger    *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cardbox-cli",
	Short: "CLI for capturing and reviewing flashcards",
	Long: `cardbox-cli captures text snippets as flashcards and manages their
review lifecycle.

Cards are grouped by the note they came from; notes are grouped into
directories derived from their paths. Use the cardbox TUI for interactive
review sessions.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		fileStore := state.NewFileStore(statePath)
		logger.Debug("opening card store", "path", fileStore.Path())

		var err error
		cardStore, err = store.Open(fileStore)
		if err != nil {
			return fmt.Errorf("failed to open card store: %w", err)
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&statePath, "state", "s", config.StatePath(), "path to the card state file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// GetStore returns the initialized card store
func GetStore() ports.CardStore {
	return cardStore
}
