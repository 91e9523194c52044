package mcp_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/huangsam/git-commit-helper/internal/contract"
	mcp_internal "github.com/huangsam/git-commit-helper/internal/mcp"
	"github.com/huangsam/git-commit-helper/internal/testutil"
	"github.com/huangsam/git-commit-helper/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const prettyFlag = "--pretty=format:" + schema.LogFormat

func callTool(t *testing.T, client contract.GitExecutor, name schema.ToolName, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	s := mcp_internal.NewMCPServer(client)
	tool := s.GetTool(string(name))
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      string(name),
			Arguments: args,
		},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content should be text")
	return text.Text
}

func TestMCPServer_RegistersCatalog(t *testing.T) {
	s := mcp_internal.NewMCPServer(new(contract.MockGitExecutor))
	for _, spec := range schema.Tools {
		tool := s.GetTool(string(spec.Name))
		require.NotNil(t, tool, "Tool %s should exist", spec.Name)
		assert.Equal(t, spec.Description, tool.Tool.Description)
		for _, p := range spec.Params {
			assert.Contains(t, tool.Tool.InputSchema.Properties, p.Name)
		}
		assert.Empty(t, tool.Tool.InputSchema.Required, "every parameter is optional")
	}
}

func TestMCPServer_ToolsList(t *testing.T) {
	s := mcp_internal.NewMCPServer(new(contract.MockGitExecutor))
	ctx := context.Background()

	initMsg := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"0.0.1"}}}`
	initResp, err := json.Marshal(s.HandleMessage(ctx, json.RawMessage(initMsg)))
	require.NoError(t, err)
	assert.Contains(t, string(initResp), schema.ServerName)

	listMsg := `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`
	listResp, err := json.Marshal(s.HandleMessage(ctx, json.RawMessage(listMsg)))
	require.NoError(t, err)
	for _, spec := range schema.Tools {
		assert.Contains(t, string(listResp), `"`+string(spec.Name)+`"`)
	}
}

func TestMCPServerHandlers_Arguments(t *testing.T) {
	ctx := context.Background()

	t.Run("git_status passes repo_path", func(t *testing.T) {
		client := new(contract.MockGitExecutor)
		client.On("Execute", ctx, "/repo", "status").Return("On branch main\n", nil).Once()

		res := callTool(t, client, schema.StatusTool, map[string]any{"repo_path": "/repo"})
		assert.False(t, res.IsError)
		assert.Equal(t, "On branch main\n", resultText(t, res))
		client.AssertExpectations(t)
	})

	t.Run("git_diff_staged defaults to current directory", func(t *testing.T) {
		client := new(contract.MockGitExecutor)
		client.On("Execute", ctx, "", "diff", "--cached").Return("", nil).Once()

		res := callTool(t, client, schema.DiffStagedTool, map[string]any{})
		assert.False(t, res.IsError)
		assert.Equal(t, schema.NoStagedChangesMessage, resultText(t, res))
	})

	t.Run("git_diff_all include_untracked", func(t *testing.T) {
		client := new(contract.MockGitExecutor)
		client.On("Execute", ctx, "", "diff", "HEAD").Return("", nil).Once()
		client.On("Execute", ctx, "", "ls-files", "--others", "--exclude-standard").Return("a.txt\n", nil).Once()

		res := callTool(t, client, schema.DiffAllTool, map[string]any{"include_untracked": true})
		assert.False(t, res.IsError)
		assert.Contains(t, resultText(t, res), "--- Untracked files ---\na.txt")
		client.AssertExpectations(t)
	})

	limits := []struct {
		name string
		args map[string]any
		flag string
	}{
		{name: "omitted", args: map[string]any{}, flag: "-10"},
		{name: "zero", args: map[string]any{"limit": 0.0}, flag: "-1"},
		{name: "negative", args: map[string]any{"limit": -3.0}, flag: "-1"},
		{name: "large", args: map[string]any{"limit": 1000.0}, flag: "-50"},
		{name: "huge", args: map[string]any{"limit": 1e20}, flag: "-50"},
		{name: "fractional", args: map[string]any{"limit": 7.9}, flag: "-7"},
		{name: "numeric string", args: map[string]any{"limit": "5"}, flag: "-5"},
		{name: "integer", args: map[string]any{"limit": 7}, flag: "-7"},
	}
	for _, tt := range limits {
		t.Run("git_log limit "+tt.name, func(t *testing.T) {
			client := new(contract.MockGitExecutor)
			client.On("Execute", ctx, "", "log", tt.flag, prettyFlag).Return("abc - A, now : x", nil).Once()

			res := callTool(t, client, schema.LogTool, tt.args)
			assert.False(t, res.IsError)
			client.AssertExpectations(t)
		})
	}
}

func TestMCPServerHandlers_InvalidLimit(t *testing.T) {
	for _, limit := range []any{"abc", "NaN", true, []any{1}} {
		t.Run(fmt.Sprintf("%v", limit), func(t *testing.T) {
			client := new(contract.MockGitExecutor)

			res := callTool(t, client, schema.LogTool, map[string]any{"limit": limit})
			assert.True(t, res.IsError)
			assert.Equal(t, "invalid limit: expected a number", resultText(t, res))
			assert.Empty(t, client.Calls)
		})
	}
}

func TestMCPServerHandlers_Errors(t *testing.T) {
	ctx := context.Background()
	client := new(contract.MockGitExecutor)
	client.On("Execute", ctx, "/missing", "status").
		Return("", &contract.GitError{Category: contract.ToolMissing, Message: contract.ToolMissingMessage}).Once()

	res := callTool(t, client, schema.StatusTool, map[string]any{"repo_path": "/missing"})
	assert.True(t, res.IsError, "The response should indicate an error state")
	assert.Equal(t, contract.ToolMissingMessage, resultText(t, res))
}

func TestMCPServerHandlers_NotRepository(t *testing.T) {
	testutil.SkipIfGitNotAvailable(t)
	plain := testutil.NewNonRepoDir(t)
	client := contract.NewLocalGitExecutor("")

	for _, spec := range schema.Tools {
		t.Run(string(spec.Name), func(t *testing.T) {
			res := callTool(t, client, spec.Name, map[string]any{"repo_path": plain})
			assert.True(t, res.IsError)
			assert.Equal(t, contract.NotRepositoryMessage, resultText(t, res))
		})
	}
}

func TestServe_Diagnostics(t *testing.T) {
	s := mcp_internal.NewMCPServer(new(contract.MockGitExecutor))
	var out, diag bytes.Buffer

	err := mcp_internal.Serve(context.Background(), s, strings.NewReader(""), &out, &diag)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(diag.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "Git Commit Helper MCP Server v1.0.0 starting...", lines[0])
	assert.Equal(t, "Server ready and listening on stdio", lines[1])
	assert.Empty(t, out.String(), "nothing is written to the protocol stream without requests")
}
