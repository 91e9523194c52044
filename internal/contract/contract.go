// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import "context"

// GitExecutor defines the single primitive every tool is built on.
// This allows the tool logic to be tested without needing a real git executable.
type GitExecutor interface {
	// Execute runs git with args inside workDir (empty means the current directory)
	// and returns stdout as text. Failures are returned as *GitError.
	Execute(ctx context.Context, workDir string, args ...string) (string, error)
}
