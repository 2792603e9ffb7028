// ABOUTME: Main entry point for the topics MCP server with stdio transport
// ABOUTME: Initializes the clustering worker and registers the cluster tool
package main

import (
	"log"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/studymate/topics/internal/config"
	"github.com/studymate/topics/internal/core"
	"github.com/studymate/topics/internal/mcp"
	"github.com/studymate/topics/internal/worker"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Start the clustering worker off the request-handling path
	task := worker.StartTask(core.Options{
		NumClusters:       cfg.NumClusters,
		MinChunksPerGroup: cfg.MinChunksPerGroup,
		MaxIterations:     cfg.MaxIterations,
	})
	defer task.Close()

	// Create MCP server
	server := mcpserver.NewMCPServer(
		"Topic Clustering Engine",
		"0.1.0",
	)

	// Register MCP tools
	mcp.RegisterTools(server, task)

	// Start server with stdio transport
	log.Println("Topics MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
