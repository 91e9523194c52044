package contract

import (
	"fmt"
	"strings"

	"github.com/huangsam/git-commit-helper/schema"
)

// Config holds the runtime configuration for the server and CLI.
// This struct is the "final, validated" config.
type Config struct {
	GitBin    string
	Output    schema.OutputMode
	Width     int // Terminal width override (0 = auto-detect)
	UseColors bool
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	GitBin string `mapstructure:"git-bin"`
	Output string `mapstructure:"output"`
	Width  int    `mapstructure:"width"`
	Color  string `mapstructure:"color"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// NewExecutor builds the executor described by the config.
func (c *Config) NewExecutor() *LocalGitExecutor {
	return NewLocalGitExecutor(c.GitBin)
}

// ProcessAndValidate populates cfg from the raw input.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.GitBin = strings.TrimSpace(input.GitBin)
	if cfg.GitBin == "" {
		cfg.GitBin = DefaultGitBinary
	}

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json", input.Output)
	}

	return nil
}
