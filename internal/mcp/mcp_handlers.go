package mcp

import (
	"context"
	"fmt"
	"math"

	"github.com/huangsam/git-commit-helper/core"
	"github.com/huangsam/git-commit-helper/internal/contract"
	"github.com/huangsam/git-commit-helper/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	client contract.GitExecutor
}

// toolResult flags git failures as error results; the handler itself never fails.
func toolResult(text string, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (h *toolHandler) handleGitStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req := schema.StatusRequest{
		RepoPath: request.GetString(schema.RepoPathParam, ""),
	}
	return toolResult(core.GetStatus(ctx, h.client, req))
}

func (h *toolHandler) handleGitDiffStaged(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req := schema.DiffStagedRequest{
		RepoPath: request.GetString(schema.RepoPathParam, ""),
	}
	return toolResult(core.GetDiffStaged(ctx, h.client, req))
}

func (h *toolHandler) handleGitDiffAll(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req := schema.DiffAllRequest{
		RepoPath:         request.GetString(schema.RepoPathParam, ""),
		IncludeUntracked: request.GetBool(schema.IncludeUntrackedParam, false),
	}
	return toolResult(core.GetDiffAll(ctx, h.client, req))
}

func (h *toolHandler) handleGitLog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req := schema.LogRequest{
		RepoPath: request.GetString(schema.RepoPathParam, ""),
	}
	if _, ok := request.GetArguments()[schema.LimitParam]; ok {
		raw, err := request.RequireFloat(schema.LimitParam)
		if err != nil || math.IsNaN(raw) {
			return mcp.NewToolResultError(fmt.Sprintf("invalid %s: expected a number", schema.LimitParam)), nil
		}
		// Clamp before converting so huge values cannot overflow int.
		limit := int(min(max(raw, schema.MinLogLimit), schema.MaxLogLimit))
		req.Limit = &limit
	}
	return toolResult(core.GetLog(ctx, h.client, req))
}
