// ABOUTME: MCP tool definitions and registration for the topics server
// ABOUTME: Exposes the clustering worker as a single cluster_chunks tool
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/studymate/topics/internal/worker"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, task *worker.Task) *Handlers {
	handlers := &Handlers{task: task}

	// cluster_chunks - partition embedded chunks into topic clusters
	server.AddTool(mcp.Tool{
		Name:        "cluster_chunks",
		Description: "Partition embedded content chunks into topic-coherent clusters so generation can sample evenly across a document's topics. Chunks without usable embeddings are dropped from clustering.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"chunks": map[string]interface{}{
					"type":        "array",
					"description": "Chunks to cluster; each has an id and an embedding (number array, or a string containing a JSON array)",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"id":        map[string]interface{}{"type": "string"},
							"content":   map[string]interface{}{"type": "string"},
							"embedding": map[string]interface{}{},
						},
						"required": []string{"id"},
					},
				},
				"numClusters": map[string]interface{}{
					"type":        "number",
					"description": "Target number of clusters (default: 6)",
					"default":     6,
				},
				"minChunksPerGroup": map[string]interface{}{
					"type":        "number",
					"description": "Minimum chunks per cluster; caps the effective cluster count (default: 1)",
					"default":     1,
				},
			},
			Required: []string{"chunks"},
		},
	}, handlers.ClusterChunks)

	return handlers
}
