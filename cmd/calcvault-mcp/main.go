package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "calcvault/internal/adapters/mcp"
	"calcvault/internal/adapters/storage"
	"calcvault/internal/application"
	"calcvault/internal/config"
	"calcvault/internal/domain"
	"calcvault/internal/logging"
)

func main() {
	configFlag := flag.String("config", "", "path to the config file")
	dataFlag := flag.String("data", "", "database file or document directory (overrides the config)")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "calcvault-mcp: %v\n", err)
		os.Exit(1)
	}
	if *dataFlag != "" {
		cfg.DataPath = *dataFlag
	}

	// stdout carries the protocol
	log := logging.Console(cfg.LogLevel, "mcp")

	store, closeStore, err := storage.Open(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer closeStore()

	vault := application.NewVault(store, log)

	mcpServer := server.NewMCPServer(
		"calcvault-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, vault, log)
	mcpadapter.RegisterWriteTools(mcpServer, vault, domain.UUIDGenerator{}, log)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Error().Err(err).Msg("server stopped")
		closeStore()
		os.Exit(1)
	}
}
