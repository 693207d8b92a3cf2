package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"cardbox/internal/domain"
	"cardbox/internal/ports"
)

// RegisterReadTools adds all read-only card tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.CardStore, index ports.SearchIndex) {
	s.AddTool(listCardsTool(), listCardsHandler(store))
	s.AddTool(listDirectoriesTool(), listDirectoriesHandler(store))
	s.AddTool(statsTool(), statsHandler(store))
	s.AddTool(searchCardsTool(), searchCardsHandler(store, index))
}

// --- list_cards ---

func listCardsTool() mcp.Tool {
	return mcp.NewTool("list_cards",
		mcp.WithDescription("List captured cards. Filter by directory or source note; without filters lists unreviewed cards."),
		mcp.WithString("directory",
			mcp.Description("Directory label to filter by (e.g. notes/go). Omit for no directory filter."),
		),
		mcp.WithString("source",
			mcp.Description("Source note path to filter by (e.g. notes/go/slices.md)."),
		),
		mcp.WithBoolean("all",
			mcp.Description("List every card, including reviewed ones."),
		),
	)
}

func listCardsHandler(store ports.CardStore) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		directory := req.GetString("directory", "")
		source := req.GetString("source", "")

		var cards []domain.Card
		switch {
		case source != "":
			cards = store.CardsFromSource(source)
		case directory != "":
			cards = store.CardsInDirectory(directory)
		case req.GetBool("all", false):
			cards = store.All()
		default:
			cards = store.Unreviewed()
		}

		return formatCards(cards)
	}
}

// --- list_directories ---

func listDirectoriesTool() mcp.Tool {
	return mcp.NewTool("list_directories",
		mcp.WithDescription("List every directory label, with the sources grouped under a given directory."),
		mcp.WithString("directory",
			mcp.Description("Directory to expand into its source notes. Omit to list all directories."),
		),
	)
}

func listDirectoriesHandler(store ports.CardStore) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if directory := req.GetString("directory", ""); directory != "" {
			return formatLines(store.SourcesInDirectory(directory))
		}
		return formatLines(store.Directories())
	}
}

// --- stats ---

func statsTool() mcp.Tool {
	return mcp.NewTool("stats",
		mcp.WithDescription("Show collection counts: total, reviewed, pending cards."),
	)
}

func statsHandler(store ports.CardStore) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		total, reviewed, pending := store.Stats()
		text := fmt.Sprintf("Total: %d\nReviewed: %d\nPending: %d", total, reviewed, pending)
		return mcp.NewToolResultText(text), nil
	}
}

// --- search_cards ---

func searchCardsTool() mcp.Tool {
	return mcp.NewTool("search_cards",
		mcp.WithDescription("Search card text by keyword. Returns matching cards with id, source and a snippet."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
	)
}

func searchCardsHandler(store ports.CardStore, index ports.SearchIndex) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		if err := index.Rebuild(store.All()); err != nil {
			return toolError(err)
		}
		results, err := index.Search(query)
		if err != nil {
			return toolError(err)
		}
		if len(results) == 0 {
			return mcp.NewToolResultText("No results."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "[%s] %s (%s)\n", r.ID, r.Snippet, r.Source)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatCards(cards []domain.Card) (*mcp.CallToolResult, error) {
	if len(cards) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, c := range cards {
		status := "pending"
		if c.Reviewed {
			status = "reviewed"
		}
		fmt.Fprintf(&sb, "[%s] %s (%s, %s)\n", c.ID, firstLine(c.Text), c.Source, status)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatLines(lines []string) (*mcp.CallToolResult, error) {
	if len(lines) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}
