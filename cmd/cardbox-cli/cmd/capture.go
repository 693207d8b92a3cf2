package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"cardbox/internal/application/commands"
)

var captureSource string

var captureCmd = &cobra.Command{
	Use:   "capture <file>",
	Short: "Segment a markdown file into cards",
	Long: `Segment a markdown file into blocks and capture a card per block.

Blocks shorter than the noise threshold are skipped. Pass - to read the
content from stdin; --source then names the note the content came from.

Examples:
  cardbox-cli capture notes/go/slices.md
  cat notes/go/slices.md | cardbox-cli capture - --source notes/go/slices.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		var content []byte
		var err error
		source := captureSource
		if path == "-" {
			content, err = io.ReadAll(os.Stdin)
		} else {
			content, err = os.ReadFile(path)
			if source == "" {
				source = path
			}
		}
		if err != nil {
			return fmt.Errorf("failed to read content: %w", err)
		}

		captureCmd := commands.NewCaptureCommand(GetStore(), source, string(content))
		result, err := captureCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		logger.Debug("capture finished", "cards", len(result.Cards), "skipped", result.Skipped)
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(captureCmd)
	captureCmd.Flags().StringVar(&captureSource, "source", "", "source note path (defaults to the file path)")
}
