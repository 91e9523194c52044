// main is the entry point for the git-commit-helper CLI and MCP server.
package main

import (
	"errors"
	"os"

	"github.com/huangsam/git-commit-helper/cmd"
	"github.com/huangsam/git-commit-helper/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, cmd.ErrToolFailed) {
			os.Exit(1)
		}
		contract.LogFatal("git-commit-helper", err)
	}
}
