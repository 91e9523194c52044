// Package cmd defines the command-line interface for git-commit-helper.
package cmd

import (
	"github.com/huangsam/git-commit-helper/internal/contract"
	"github.com/huangsam/git-commit-helper/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(diffStagedCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().String("git-bin", contract.DefaultGitBinary, "Git executable to run")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or json")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored output (yes/no/true/false/1/0)")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Per-call options stay on their commands; they are arguments, not configuration
	diffCmd.Flags().BoolP("untracked", "u", false, "Append the list of untracked files")
	logCmd.Flags().IntP("limit", "n", schema.DefaultLogLimit, "Maximum number of commits to show (1-50)")
}
