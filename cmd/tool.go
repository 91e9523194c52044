package cmd

import (
	"context"

	"github.com/huangsam/git-commit-helper/internal/contract"
	"github.com/huangsam/git-commit-helper/internal/outwriter"
	"github.com/huangsam/git-commit-helper/schema"
	"github.com/spf13/cobra"
)

// toolFunc runs one tool against the configured executor.
type toolFunc func(ctx context.Context, client contract.GitExecutor) (string, error)

// runTool executes a tool and prints its result the same way the MCP server flattens it.
func runTool(cmd *cobra.Command, name schema.ToolName, fn toolFunc) error {
	text, err := fn(rootCtx, cfg.NewExecutor())
	out := schema.ToolOutput{Tool: name, Text: text}
	if err != nil {
		out.IsError = true
		out.Text = err.Error()
	}

	ow := outwriter.NewOutWriter(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err := ow.WriteOutput(out); err != nil {
		return err
	}
	if out.IsError {
		return ErrToolFailed
	}
	return nil
}

// repoPathArg returns the optional positional repository path.
func repoPathArg(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return ""
}
