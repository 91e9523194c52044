// Package outwriter has output and writer logic for the CLI.
package outwriter

import (
	"io"

	"github.com/huangsam/git-commit-helper/internal/contract"
	"github.com/huangsam/git-commit-helper/schema"
)

// OutWriter provides a unified interface for all CLI output operations.
type OutWriter struct {
	cfg    *contract.Config
	stdout io.Writer
	stderr io.Writer
}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter(cfg *contract.Config, stdout, stderr io.Writer) *OutWriter {
	return &OutWriter{cfg: cfg, stdout: stdout, stderr: stderr}
}

// WriteOutput prints a tool result using the configured output format.
// Text results go to stdout and failures to stderr.
func (ow *OutWriter) WriteOutput(out schema.ToolOutput) error {
	if ow.cfg.Output == schema.JSONOut {
		return writeJSON(ow.stdout, out)
	}
	if out.IsError {
		return writeFailureText(ow.stderr, out.Text, ow.cfg.UseColors && IsTerminal(ow.stderr))
	}
	return writeResultText(ow.stdout, out.Text)
}

// WriteTools prints the tool catalog using the configured output format.
func (ow *OutWriter) WriteTools(tools []schema.ToolSpec) error {
	if ow.cfg.Output == schema.JSONOut {
		return writeJSON(ow.stdout, tools)
	}
	return writeToolsTable(ow.stdout, tools, GetMaxDescriptionWidth(ow.cfg, ow.stdout), ow.cfg.UseColors && IsTerminal(ow.stdout))
}
