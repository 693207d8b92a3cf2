package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		total, reviewed, pending := GetStore().Stats()
		fmt.Printf("Total:    %d\n", total)
		fmt.Printf("Reviewed: %d\n", reviewed)
		fmt.Printf("Pending:  %d\n", pending)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
