package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dirsCmd = &cobra.Command{
	Use:   "dirs [directory]",
	Short: "List directories and their sources",
	Long: `List every directory label, or the source notes grouped under one.

Examples:
  cardbox-cli dirs
  cardbox-cli dirs notes/go`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := GetStore()

		if len(args) == 1 {
			for _, src := range s.SourcesInDirectory(args[0]) {
				fmt.Printf("%s  (%d cards)\n", src, len(s.CardsFromSource(src)))
			}
			return nil
		}

		for _, dir := range s.Directories() {
			fmt.Printf("%s  (%d cards)\n", dir, len(s.CardsInDirectory(dir)))
		}
		return nil
	},
}

var dirsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a directory label",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := GetStore().CreateDirectory(args[0]); err != nil {
			return err
		}
		fmt.Printf("Created directory %q\n", args[0])
		return nil
	},
}

var dirsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a directory label; its cards move to the inbox",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := GetStore().DeleteDirectory(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted directory %q\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dirsCmd)
	dirsCmd.AddCommand(dirsCreateCmd)
	dirsCmd.AddCommand(dirsDeleteCmd)
}
