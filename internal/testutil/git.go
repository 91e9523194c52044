// Package testutil has helpers for tests that run the real git binary.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Identity used for commits made by test repositories.
const (
	AuthorName  = "Test User"
	AuthorEmail = "test@example.com"
)

// SkipIfGitNotAvailable skips the test if git binary is not found in PATH.
func SkipIfGitNotAvailable(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skipf("git binary not found in PATH: %v", err)
	}
}

// IsolateGit points git at an empty HOME and stops repository discovery at
// the parent of dir, so results do not depend on the developer's machine.
func IsolateGit(t *testing.T, dir string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))
	t.Setenv("GIT_AUTHOR_NAME", AuthorName)
	t.Setenv("GIT_AUTHOR_EMAIL", AuthorEmail)
	t.Setenv("GIT_COMMITTER_NAME", AuthorName)
	t.Setenv("GIT_COMMITTER_EMAIL", AuthorEmail)
	t.Setenv("LC_ALL", "C")
}

// TestRepo is a throwaway git repository with no commits.
type TestRepo struct {
	t    *testing.T
	Path string
}

// NewTestRepo initializes an empty repository in a temp directory.
func NewTestRepo(t *testing.T) *TestRepo {
	t.Helper()
	SkipIfGitNotAvailable(t)

	path := filepath.Join(t.TempDir(), "repo")
	require.NoError(t, os.MkdirAll(path, 0o755))
	IsolateGit(t, path)

	r := &TestRepo{t: t, Path: path}
	r.Git("init", "-q")
	r.Git("config", "commit.gpgsign", "false")
	return r
}

// NewNonRepoDir returns an existing directory that is outside any repository.
func NewNonRepoDir(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.MkdirAll(path, 0o755))
	IsolateGit(t, path)
	return path
}

// Git runs git inside the repository and fails the test on error.
func (r *TestRepo) Git(args ...string) string {
	r.t.Helper()
	cmd := exec.Command("git", args...) // nolint:gosec // Test helper with controlled input
	cmd.Dir = r.Path
	out, err := cmd.CombinedOutput()
	require.NoError(r.t, err, "git %v: %s", args, out)
	return string(out)
}

// WriteFile writes content to a path relative to the repository root.
func (r *TestRepo) WriteFile(name, content string) {
	r.t.Helper()
	full := filepath.Join(r.Path, name)
	require.NoError(r.t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(r.t, os.WriteFile(full, []byte(content), 0o644))
}

// Commit stages everything and commits it with the given subject.
func (r *TestRepo) Commit(name, content, subject string) {
	r.t.Helper()
	r.WriteFile(name, content)
	r.Git("add", "-A")
	r.Git("commit", "-q", "-m", subject)
}
