package cmd

import (
	"context"

	"github.com/huangsam/git-commit-helper/core"
	"github.com/huangsam/git-commit-helper/internal/contract"
	"github.com/huangsam/git-commit-helper/schema"
	"github.com/spf13/cobra"
)

// diffStagedCmd runs the git_diff_staged tool.
var diffStagedCmd = &cobra.Command{
	Use:   "diff-staged [repo-path]",
	Short: "Show staged changes as the git_diff_staged tool reports them.",
	Long: `Show the diff of changes staged with 'git add'.

This is exactly what will be included in the next commit.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := schema.DiffStagedRequest{RepoPath: repoPathArg(args)}
		return runTool(cmd, schema.DiffStagedTool, func(ctx context.Context, client contract.GitExecutor) (string, error) {
			return core.GetDiffStaged(ctx, client, req)
		})
	},
}

// diffCmd runs the git_diff_all tool.
var diffCmd = &cobra.Command{
	Use:   "diff [repo-path]",
	Short: "Show all changes against HEAD as the git_diff_all tool reports them.",
	Long: `Show staged and unstaged changes against HEAD.

Examples:
  # Tracked changes only
  git-commit-helper diff

  # Also list untracked files
  git-commit-helper diff --untracked ~/src/project`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(cmd *cobra.Command, args []string) error {
		untracked, err := cmd.Flags().GetBool("untracked")
		if err != nil {
			return err
		}
		req := schema.DiffAllRequest{RepoPath: repoPathArg(args), IncludeUntracked: untracked}
		return runTool(cmd, schema.DiffAllTool, func(ctx context.Context, client contract.GitExecutor) (string, error) {
			return core.GetDiffAll(ctx, client, req)
		})
	},
}
