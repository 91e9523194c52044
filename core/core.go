// Package core has the git inspection tools exposed to callers.
package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/huangsam/git-commit-helper/internal/contract"
	"github.com/huangsam/git-commit-helper/schema"
)

// GetStatus returns the output of `git status` unchanged, even when short.
func GetStatus(ctx context.Context, client contract.GitExecutor, req schema.StatusRequest) (string, error) {
	return client.Execute(ctx, req.RepoPath, "status")
}

// GetDiffStaged returns the diff of staged changes.
func GetDiffStaged(ctx context.Context, client contract.GitExecutor, req schema.DiffStagedRequest) (string, error) {
	out, err := client.Execute(ctx, req.RepoPath, "diff", "--cached")
	if err != nil {
		return "", err
	}
	return orDefault(out, schema.NoStagedChangesMessage), nil
}

// GetDiffAll returns staged and unstaged changes against HEAD, optionally followed
// by the list of untracked files. The untracked lookup is best-effort: when it
// fails, the section is omitted and a warning goes to stderr.
func GetDiffAll(ctx context.Context, client contract.GitExecutor, req schema.DiffAllRequest) (string, error) {
	out, err := client.Execute(ctx, req.RepoPath, "diff", "HEAD")
	if err != nil {
		return "", err
	}

	if req.IncludeUntracked {
		untracked, err := client.Execute(ctx, req.RepoPath, "ls-files", "--others", "--exclude-standard")
		switch {
		case err != nil:
			contract.LogWarn("Omitting untracked files", err)
		case strings.TrimSpace(untracked) != "":
			out += schema.UntrackedSeparator + untracked
		}
	}

	return orDefault(out, schema.NoChangesMessage), nil
}

// GetLog returns recent commits as "hash - author, time : subject" lines.
func GetLog(ctx context.Context, client contract.GitExecutor, req schema.LogRequest) (string, error) {
	limit := ClampLogLimit(req.Limit)
	out, err := client.Execute(ctx, req.RepoPath, "log", fmt.Sprintf("-%d", limit), "--pretty=format:"+schema.LogFormat)
	if contract.IsCategory(err, contract.NoCommits) {
		return schema.NoCommitsMessage, nil
	}
	if err != nil {
		return "", err
	}
	return orDefault(out, schema.NoCommitsMessage), nil
}

// ClampLogLimit returns the default limit for nil, otherwise the limit clamped
// into [MinLogLimit, MaxLogLimit].
func ClampLogLimit(limit *int) int {
	if limit == nil {
		return schema.DefaultLogLimit
	}
	return min(max(*limit, schema.MinLogLimit), schema.MaxLogLimit)
}

// orDefault replaces whitespace-only output with the fallback sentence.
func orDefault(out, fallback string) string {
	if strings.TrimSpace(out) == "" {
		return fallback
	}
	return out
}
