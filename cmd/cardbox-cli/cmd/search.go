package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cardbox/internal/adapters/sqlite"
	"cardbox/internal/config"
)

var searchIndexPath string

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search card text by keyword",
	Long: `Search card text by keyword, case-insensitively.

The search index is rebuilt from the card state before querying, so
results always reflect the current collection.

Examples:
  cardbox-cli search goroutine`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := sqlite.Open(searchIndexPath)
		if err != nil {
			return err
		}
		defer index.Close()

		if err := index.Rebuild(GetStore().All()); err != nil {
			return err
		}
		results, err := index.Search(args[0])
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No results.")
			return nil
		}
		for _, r := range results {
			fmt.Printf("%s  %s  (%s)\n", r.ID, r.Snippet, r.Source)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVar(&searchIndexPath, "index", config.IndexPath(), "path to the search index")
}
