package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"cardbox/internal/application/commands"
)

var moveCmd = &cobra.Command{
	Use:   "move <source> <directory>",
	Short: "Move every card from a source to a directory",
	Long: `Reassign the directory label of every card captured from a source note.

Examples:
  cardbox-cli move notes/go/slices.md archive`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		moveCmd := commands.NewMoveSourceCommand(GetStore(), args[0], args[1])
		result, err := moveCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
