// ABOUTME: MCP tool handler implementations for the topics server
// ABOUTME: Bridges cluster_chunks tool calls to the clustering worker task
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/studymate/topics/internal/models"
	"github.com/studymate/topics/internal/worker"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	task *worker.Task
}

// ClusterChunks handles the cluster_chunks tool
func (h *Handlers) ClusterChunks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// Round-trip the arguments through JSON to get the typed request shape
	argsJSON, err := json.Marshal(request.Params.Arguments)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	var req models.ClusterRequest
	if err := json.Unmarshal(argsJSON, &req); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	if req.Chunks == nil {
		return mcp.NewToolResultError("chunks argument is required and must be an array"), nil
	}

	clusters, err := h.task.Submit(ctx, req)

	var response models.ClusterResponse
	if err != nil {
		response = models.ClusterResponse{Success: false, Error: err.Error()}
	} else {
		response = models.ClusterResponse{Success: true, Result: clusters}
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}
