package contract

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
)

// ErrorCategory classifies why a git invocation failed.
type ErrorCategory string

// All failure categories supported.
const (
	NotRepository ErrorCategory = "not_repository"
	NoCommits     ErrorCategory = "no_commits"
	EmptyFailure  ErrorCategory = "empty_failure"
	ToolMissing   ErrorCategory = "tool_missing"
	SpawnFailure  ErrorCategory = "spawn_failure"
	Verbatim      ErrorCategory = "verbatim"
)

// Normalized messages returned to callers.
const (
	NotRepositoryMessage = "Not a git repository. Make sure you're in a git repository directory."
	EmptyFailureMessage  = "Git command failed with no error message"
	ToolMissingMessage   = "Git is not installed or not found in PATH. Please install git first."
	SpawnFailurePrefix   = "Failed to execute git command: "
)

// GitError is the failure returned by a GitExecutor.
// Message is the normalized, human-readable text shown to callers.
type GitError struct {
	Category ErrorCategory
	Message  string
	Stderr   string
	Args     []string
}

func (e *GitError) Error() string {
	return e.Message
}

// IsCategory reports whether err is a *GitError of the given category.
func IsCategory(err error, category ErrorCategory) bool {
	var gitErr *GitError
	return errors.As(err, &gitErr) && gitErr.Category == category
}

// FailureRule maps a stderr pattern to a category and caller-facing message.
type FailureRule struct {
	Category ErrorCategory
	Match    func(stderr string) bool
	Message  func(stderr string) string
}

// FailureRules are evaluated in order against the stderr of a git process that
// exited non-zero. The first match wins; stderr that matches nothing passes
// through verbatim. Order: not-a-repository, diff outside a repository,
// unborn branch, empty stderr.
var FailureRules = []FailureRule{
	{
		Category: NotRepository,
		Match: func(stderr string) bool {
			// git diff warns "Not a git repository" with a capital N.
			return strings.Contains(strings.ToLower(stderr), "not a git repository")
		},
		Message: func(string) string { return NotRepositoryMessage },
	},
	{
		// Outside a repository git diff falls back to --no-index mode, rejects
		// repository-only options and prints that mode's usage.
		Category: NotRepository,
		Match: func(stderr string) bool {
			return strings.Contains(stderr, "git diff --no-index")
		},
		Message: func(string) string { return NotRepositoryMessage },
	},
	{
		// An unborn branch; callers that list history treat this as empty output.
		Category: NoCommits,
		Match: func(stderr string) bool {
			return strings.Contains(stderr, "does not have any commits yet")
		},
		Message: func(stderr string) string { return stderr },
	},
	{
		Category: EmptyFailure,
		Match: func(stderr string) bool {
			return strings.TrimSpace(stderr) == ""
		},
		Message: func(string) string { return EmptyFailureMessage },
	},
}

// ClassifyFailure returns the category and message for a non-zero git exit.
func ClassifyFailure(stderr string) (ErrorCategory, string) {
	for _, rule := range FailureRules {
		if rule.Match(stderr) {
			return rule.Category, rule.Message(stderr)
		}
	}
	return Verbatim, stderr
}

// ClassifySpawnError returns the category and message for a git process that
// could not be started at all.
func ClassifySpawnError(err error) (ErrorCategory, string) {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return ToolMissing, ToolMissingMessage
	}
	return SpawnFailure, fmt.Sprintf("%s%v", SpawnFailurePrefix, err)
}
