package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/huangsam/git-commit-helper/internal/contract"
	"github.com/huangsam/git-commit-helper/internal/testutil"
	"github.com/huangsam/git-commit-helper/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args. Flags persist between runs on
// the shared command tree, so callers always pass --output explicitly.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "git-commit-helper CLI")
	assert.Contains(t, stdout, "Server:  git-commit-helper 1.0.0")
}

func TestToolsCommand_JSON(t *testing.T) {
	stdout, _, err := executeCommand(t, "tools", "--output", "json")
	require.NoError(t, err)

	var tools []schema.ToolSpec
	require.NoError(t, json.Unmarshal([]byte(stdout), &tools))
	assert.Equal(t, schema.Tools, tools)
}

func TestToolsCommand_InvalidOutput(t *testing.T) {
	_, _, err := executeCommand(t, "tools", "--output", "xml")
	assert.ErrorContains(t, err, "invalid output format")
}

func TestToolCommands_NotRepository(t *testing.T) {
	testutil.SkipIfGitNotAvailable(t)
	plain := testutil.NewNonRepoDir(t)

	for _, name := range []string{"status", "diff-staged", "diff", "log"} {
		t.Run(name, func(t *testing.T) {
			stdout, stderr, err := executeCommand(t, name, plain, "--output", "text")
			assert.ErrorIs(t, err, ErrToolFailed)
			assert.Empty(t, stdout)
			assert.Equal(t, "error: "+contract.NotRepositoryMessage+"\n", stderr)
		})
	}
}

func TestToolCommands_Repository(t *testing.T) {
	repo := testutil.NewTestRepo(t)

	stdout, _, err := executeCommand(t, "log", repo.Path, "--output", "text")
	require.NoError(t, err)
	assert.Equal(t, schema.NoCommitsMessage+"\n", stdout)

	repo.Commit("main.go", "package main\n", "init")
	repo.WriteFile("extra.txt", "x\n")

	stdout, _, err = executeCommand(t, "diff", repo.Path, "--untracked", "--output", "text")
	require.NoError(t, err)
	assert.Contains(t, stdout, "--- Untracked files ---\nextra.txt")

	stdout, _, err = executeCommand(t, "diff-staged", repo.Path, "--output", "json")
	require.NoError(t, err)
	var out schema.ToolOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, schema.ToolOutput{Tool: schema.DiffStagedTool, Text: schema.NoStagedChangesMessage}, out)

	stdout, _, err = executeCommand(t, "log", repo.Path, "--limit", "0", "--output", "text")
	require.NoError(t, err)
	assert.Contains(t, stdout, " : init\n")
}
