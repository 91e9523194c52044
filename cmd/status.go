package cmd

import (
	"context"

	"github.com/huangsam/git-commit-helper/core"
	"github.com/huangsam/git-commit-helper/internal/contract"
	"github.com/huangsam/git-commit-helper/schema"
	"github.com/spf13/cobra"
)

// statusCmd runs the git_status tool.
var statusCmd = &cobra.Command{
	Use:     "status [repo-path]",
	Short:   "Show the working tree status as the git_status tool reports it.",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := schema.StatusRequest{RepoPath: repoPathArg(args)}
		return runTool(cmd, schema.StatusTool, func(ctx context.Context, client contract.GitExecutor) (string, error) {
			return core.GetStatus(ctx, client, req)
		})
	},
}
