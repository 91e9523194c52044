package cmd

import (
	"runtime"

	"github.com/huangsam/git-commit-helper/schema"
	"github.com/spf13/cobra"
)

// versionCmd shows the verbose version for diagnostic purposes.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of git-commit-helper.",
	Long: `Display version information including build details.

Shows:
- Release version
- MCP server version advertised to clients
- Git commit hash
- Build timestamp
- Go runtime version`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("git-commit-helper CLI\n")
		cmd.Printf("  Version: %s\n", version)
		cmd.Printf("  Server:  %s %s\n", schema.ServerName, schema.ServerVersion)
		cmd.Printf("  Commit:  %s\n", commit)
		cmd.Printf("  Built:   %s\n", date)
		cmd.Printf("  Runtime: %s\n", runtime.Version())
	},
}
