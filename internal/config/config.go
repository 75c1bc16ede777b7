// Package config provides configuration management for the gopatterns CLI
// using Viper for flexible loading from files, environment variables, and
// command-line flags.
//
// The configuration system supports YAML files, environment variable
// overrides with a GOPATTERNS_ prefix, and validation. It manages the docs
// directory location, output defaults, and logging options.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Docs   DocsConfig   `yaml:"docs"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

type DocsConfig struct {
	// Dir is the directory holding the pattern documentation pages
	Dir string `yaml:"dir"`
	// ExcludePatterns are filename globs skipped while scanning the docs dir
	ExcludePatterns []string `yaml:"exclude_patterns"`
}

type OutputConfig struct {
	// Format is the default output format for list-style commands
	Format string `yaml:"format"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ValidFormats are the output formats the renderer understands.
var ValidFormats = []string{"table", "json", "yaml", "csv"}

func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Handle docs dir set via viper (workaround for viper nested key handling)
	if viper.IsSet("docs.dir") && config.Docs.Dir == "" {
		config.Docs.Dir = viper.GetString("docs.dir")
	}
	if viper.IsSet("docs.exclude_patterns") && len(config.Docs.ExcludePatterns) == 0 {
		config.Docs.ExcludePatterns = viper.GetStringSlice("docs.exclude_patterns")
	}

	// Apply defaults if not set
	if config.Docs.Dir == "" {
		config.Docs.Dir = "./docs"
	}
	if len(config.Docs.ExcludePatterns) == 0 {
		config.Docs.ExcludePatterns = []string{"README.md", "*.draft.md"}
	}
	if config.Output.Format == "" {
		config.Output.Format = viper.GetString("output.format")
	}
	if config.Output.Format == "" {
		config.Output.Format = "table"
	}
	if config.Log.Level == "" {
		config.Log.Level = viper.GetString("log-level")
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates configuration values for security and correctness
func validateConfig(config *Config) error {
	if err := validatePath(config.Docs.Dir); err != nil {
		return fmt.Errorf("docs config: invalid dir '%s': %w", config.Docs.Dir, err)
	}

	if err := validateFormat(config.Output.Format); err != nil {
		return fmt.Errorf("output config: %w", err)
	}

	switch config.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log config: unknown level %q", config.Log.Level)
	}

	switch config.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log config: unknown format %q", config.Log.Format)
	}

	return nil
}

// validateFormat checks an output format against the renderer's formats
func validateFormat(format string) error {
	for _, valid := range ValidFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q, must be one of: %s", format, strings.Join(ValidFormats, ", "))
}

// validatePath validates a file path for security
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}

	cleanPath := filepath.Clean(path)

	// Reject path traversal attempts
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path contains traversal: %s", path)
	}

	// Reject dangerous characters
	dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'"}
	for _, char := range dangerousChars {
		if strings.Contains(cleanPath, char) {
			return fmt.Errorf("path contains dangerous character: %s", char)
		}
	}

	return nil
}
