package contract

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
)

// DefaultGitBinary is the executable looked up on PATH when none is configured.
const DefaultGitBinary = "git"

// LocalGitExecutor implements the GitExecutor interface by executing the
// local 'git' binary installed on the machine.
type LocalGitExecutor struct {
	gitBin string
}

var _ GitExecutor = &LocalGitExecutor{} // Compile-time check

// NewLocalGitExecutor creates a new executor for the given git binary.
// An empty gitBin falls back to DefaultGitBinary.
func NewLocalGitExecutor(gitBin string) *LocalGitExecutor {
	if strings.TrimSpace(gitBin) == "" {
		gitBin = DefaultGitBinary
	}
	return &LocalGitExecutor{gitBin: gitBin}
}

// GitBinary returns the executable this executor runs.
func (e *LocalGitExecutor) GitBinary() string {
	return e.gitBin
}

// Execute runs git once and blocks until it exits. The context is not used to
// kill the child; a call always runs to completion.
func (e *LocalGitExecutor) Execute(_ context.Context, workDir string, args ...string) (string, error) {
	if workDir != "" {
		if info, err := os.Stat(workDir); err != nil || !info.IsDir() {
			return "", &GitError{Category: NotRepository, Message: NotRepositoryMessage, Args: args}
		}
	}

	cmd := exec.Command(e.gitBin, args...)
	if workDir != "" {
		cmd.Dir = workDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		errText := strings.ToValidUTF8(stderr.String(), "�")
		category, msg := ClassifyFailure(errText)
		return "", &GitError{Category: category, Message: msg, Stderr: errText, Args: args}
	} else if err != nil {
		category, msg := ClassifySpawnError(err)
		return "", &GitError{Category: category, Message: msg, Args: args}
	}
	return strings.ToValidUTF8(stdout.String(), "�"), nil
}
