package cmd

import (
	"github.com/huangsam/git-commit-helper/internal/outwriter"
	"github.com/huangsam/git-commit-helper/schema"
	"github.com/spf13/cobra"
)

// toolsCmd lists the tools the MCP server exposes.
var toolsCmd = &cobra.Command{
	Use:     "tools",
	Short:   "List the tools exposed over MCP.",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ow := outwriter.NewOutWriter(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		return ow.WriteTools(schema.Tools)
	},
}
