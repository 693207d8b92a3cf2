package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"cardbox/internal/application/commands"
)

var (
	addSource string
	addClip   bool
)

var addCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Capture a text snippet as a card",
	Long: `Capture a text snippet as a card.

The text comes from the arguments, or from the system clipboard with
--clip. The directory label is derived from the source path.

Examples:
  cardbox-cli add "Slices grow by doubling capacity" --source notes/go/slices.md
  cardbox-cli add --clip --source notes/go/slices.md`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		if addClip {
			clip, err := clipboard.ReadAll()
			if err != nil {
				return fmt.Errorf("failed to read clipboard: %w", err)
			}
			text = clip
		}

		createCmd := commands.NewCreateCardCommand(GetStore(), text, addSource)
		result, err := createCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addSource, "source", "", "source note path the snippet came from")
	addCmd.Flags().BoolVar(&addClip, "clip", false, "capture the text from the system clipboard")
}
