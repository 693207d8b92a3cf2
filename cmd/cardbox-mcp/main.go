package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "cardbox/internal/adapters/mcp"
	"cardbox/internal/adapters/sqlite"
	"cardbox/internal/adapters/state"
	"cardbox/internal/config"
	"cardbox/internal/store"
)

func main() {
	stateFlag := flag.String("state", config.StatePath(), "path to the card state file")
	indexFlag := flag.String("index", config.IndexPath(), "path to the search index")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cardStore, err := store.Open(state.NewFileStore(*stateFlag))
	if err != nil {
		logger.Error("failed to open card store", "error", err)
		os.Exit(1)
	}

	index, err := sqlite.Open(*indexFlag)
	if err != nil {
		logger.Error("failed to open search index", "error", err)
		os.Exit(1)
	}
	defer index.Close()

	mcpServer := server.NewMCPServer(
		"cardbox-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, cardStore, index)
	mcpadapter.RegisterWriteTools(mcpServer, cardStore)

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
