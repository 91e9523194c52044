// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/huangsam/git-commit-helper/internal/contract"
	"github.com/huangsam/git-commit-helper/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Diagnostic lines written to stderr around transport startup.
var (
	StartupLine = fmt.Sprintf("Git Commit Helper MCP Server v%s starting...", schema.ServerVersion)
	ReadyLine   = "Server ready and listening on stdio"
)

// NewMCPServer initializes and configures the MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(client contract.GitExecutor) *server.MCPServer {
	s := server.NewMCPServer(
		schema.ServerName,
		schema.ServerVersion,
		server.WithToolCapabilities(false),
		server.WithLogging(),
	)

	h := &toolHandler{client: client}
	handlers := map[schema.ToolName]server.ToolHandlerFunc{
		schema.StatusTool:     h.handleGitStatus,
		schema.DiffStagedTool: h.handleGitDiffStaged,
		schema.DiffAllTool:    h.handleGitDiffAll,
		schema.LogTool:        h.handleGitLog,
	}
	for _, spec := range schema.Tools {
		s.AddTool(newTool(spec), handlers[spec.Name])
	}

	return s
}

// newTool converts a catalog entry into an MCP tool definition.
func newTool(spec schema.ToolSpec) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(spec.Description),
		mcp.WithReadOnlyHintAnnotation(true),
	}
	for _, p := range spec.Params {
		switch p.Kind {
		case schema.BooleanParam:
			opts = append(opts, mcp.WithBoolean(p.Name, mcp.Description(p.Description)))
		case schema.NumberParam:
			opts = append(opts, mcp.WithNumber(p.Name, mcp.Description(p.Description)))
		default:
			opts = append(opts, mcp.WithString(p.Name, mcp.Description(p.Description)))
		}
	}
	return mcp.NewTool(string(spec.Name), opts...)
}

// Serve announces startup on diag and serves MCP requests from in to out
// until in is closed or ctx is done.
func Serve(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer, diag io.Writer) error {
	_, _ = fmt.Fprintln(diag, StartupLine)

	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(log.New(diag, "", log.LstdFlags))

	_, _ = fmt.Fprintln(diag, ReadyLine)
	return stdio.Listen(ctx, in, out)
}

// StartMCPServer starts the MCP server on the process's standard streams.
func StartMCPServer(ctx context.Context, cfg *contract.Config) error {
	s := NewMCPServer(cfg.NewExecutor())
	return Serve(ctx, s, os.Stdin, os.Stdout, os.Stderr)
}
