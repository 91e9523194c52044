package cmd

import (
	"context"

	"github.com/huangsam/git-commit-helper/core"
	"github.com/huangsam/git-commit-helper/internal/contract"
	"github.com/huangsam/git-commit-helper/schema"
	"github.com/spf13/cobra"
)

// logCmd runs the git_log tool.
var logCmd = &cobra.Command{
	Use:   "log [repo-path]",
	Short: "Show recent commits as the git_log tool reports them.",
	Long: `Show recent commit history formatted as 'hash - author, time : message'.

The limit defaults to 10 and is clamped into 1..50.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := schema.LogRequest{RepoPath: repoPathArg(args)}
		if cmd.Flags().Changed("limit") {
			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return err
			}
			req.Limit = &limit
		}
		return runTool(cmd, schema.LogTool, func(ctx context.Context, client contract.GitExecutor) (string, error) {
			return core.GetLog(ctx, client, req)
		})
	},
}
