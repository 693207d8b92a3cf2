package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cardbox/internal/domain"
	"cardbox/internal/store"
)

var (
	listAll      bool
	listPage     int
	listPageSize int
	listDir      string
	listSource   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cards",
	Long: `List cards, newest page first by store order.

Without flags lists the unreviewed pool. --all pages through every card;
--dir and --source narrow to a directory label or a source note.

Examples:
  cardbox-cli list
  cardbox-cli list --all --page 2
  cardbox-cli list --dir notes/go
  cardbox-cli list --source notes/go/slices.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := GetStore()

		var cards []domain.Card
		switch {
		case listSource != "":
			cards = s.CardsFromSource(listSource)
		case listDir != "":
			cards = s.CardsInDirectory(listDir)
		case listAll:
			page, total := s.AllPaged(listPage, listPageSize)
			printCards(page)
			fmt.Printf("Page %d of %d (%d cards)\n", listPage+1, store.TotalPages(total, listPageSize), total)
			return nil
		default:
			cards = s.Unreviewed()
		}

		printCards(cards)
		return nil
	},
}

func printCards(cards []domain.Card) {
	for _, c := range cards {
		status := "pending"
		if c.Reviewed {
			status = "reviewed"
		}
		fmt.Printf("%s  [%s]  %s  (%s)\n", c.ID, status, firstLine(c.Text), c.Source)
	}
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listAll, "all", false, "list every card, including reviewed ones")
	listCmd.Flags().IntVar(&listPage, "page", 0, "page number (0-based, with --all)")
	listCmd.Flags().IntVar(&listPageSize, "page-size", store.DefaultPageSize, "cards per page (with --all)")
	listCmd.Flags().StringVar(&listDir, "dir", "", "filter by directory label")
	listCmd.Flags().StringVar(&listSource, "source", "", "filter by source note")
}
