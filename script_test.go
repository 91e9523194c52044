//go:build integration

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

func TestScript(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
		Setup: func(env *testscript.Env) error {
			homeDir := filepath.Join(env.WorkDir, ".home")
			if err := os.MkdirAll(homeDir, 0o755); err != nil {
				return err
			}
			env.Vars = append(env.Vars,
				"HOME="+homeDir,
				"XDG_CONFIG_HOME="+homeDir,
				"GIT_CONFIG_NOSYSTEM=1",
				"GIT_CEILING_DIRECTORIES="+env.WorkDir,
				"GIT_AUTHOR_NAME=Test",
				"GIT_AUTHOR_EMAIL=test@example.com",
				"GIT_COMMITTER_NAME=Test",
				"GIT_COMMITTER_EMAIL=test@example.com",
				"LC_ALL=C",
				"GIT_COMMIT_HELPER_COLOR=no",
			)
			return nil
		},
	})
}

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"git-commit-helper": main,
	})
}
