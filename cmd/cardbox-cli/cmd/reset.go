package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Return every kept card to the unreviewed pool",
	Long: `Return every kept card to the unreviewed pool and clear the active
review deck, making the whole collection reviewable again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := GetStore()
		if err := s.ResetReviewedKept(); err != nil {
			return err
		}
		total, _, pending := s.Stats()
		fmt.Printf("Reset complete: %d of %d cards pending review\n", pending, total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
