package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"cardbox/internal/application/commands"
	"cardbox/internal/ports"
)

// RegisterWriteTools adds all mutating card tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, store ports.CardStore) {
	s.AddTool(createCardTool(), createCardHandler(store))
	s.AddTool(captureTool(), captureHandler(store))
	s.AddTool(deleteCardTool(), deleteCardHandler(store))
	s.AddTool(moveSourceTool(), moveSourceHandler(store))
	s.AddTool(resetTool(), resetHandler(store))
}

// --- create_card ---

func createCardTool() mcp.Tool {
	return mcp.NewTool("create_card",
		mcp.WithDescription("Capture one text snippet as a card. The directory label is derived from the source path."),
		mcp.WithString("text",
			mcp.Description("Card text"),
			mcp.Required(),
		),
		mcp.WithString("source",
			mcp.Description("Source note path (e.g. notes/go/slices.md). Omit for an unknown source."),
		),
	)
}

func createCardHandler(store ports.CardStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewCreateCardCommand(store, req.GetString("text", ""), req.GetString("source", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- capture ---

func captureTool() mcp.Tool {
	return mcp.NewTool("capture",
		mcp.WithDescription("Segment a markdown document into blocks and capture a card per block. Blocks shorter than the noise threshold are skipped."),
		mcp.WithString("source",
			mcp.Description("Source note path the content came from"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("Markdown content to segment"),
			mcp.Required(),
		),
	)
}

func captureHandler(store ports.CardStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewCaptureCommand(store, req.GetString("source", ""), req.GetString("content", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete_card ---

func deleteCardTool() mcp.Tool {
	return mcp.NewTool("delete_card",
		mcp.WithDescription("Delete a card by id. Deleting a missing id is a no-op."),
		mcp.WithString("id",
			mcp.Description("Card id"),
			mcp.Required(),
		),
	)
}

func deleteCardHandler(store ports.CardStore) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}
		if err := store.DeleteCard(id); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Deleted card %s", id)), nil
	}
}

// --- move_source ---

func moveSourceTool() mcp.Tool {
	return mcp.NewTool("move_source",
		mcp.WithDescription("Reassign every card captured from a source note to a directory label."),
		mcp.WithString("source",
			mcp.Description("Source note path"),
			mcp.Required(),
		),
		mcp.WithString("directory",
			mcp.Description("Destination directory label"),
			mcp.Required(),
		),
	)
}

func moveSourceHandler(store ports.CardStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewMoveSourceCommand(store, req.GetString("source", ""), req.GetString("directory", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- reset ---

func resetTool() mcp.Tool {
	return mcp.NewTool("reset_reviews",
		mcp.WithDescription("Return every kept card to the unreviewed pool and clear the active review deck."),
	)
}

func resetHandler(store ports.CardStore) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := store.ResetReviewedKept(); err != nil {
			return toolError(err)
		}
		total, _, pending := store.Stats()
		return mcp.NewToolResultText(fmt.Sprintf("Reset complete: %d of %d cards pending review", pending, total)), nil
	}
}
