// Package cmd provides the command-line interface for gopatterns with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration with clear precedence:
//	1. Command-line flags (--config, --format, etc.) - highest priority
//	2. GOPATTERNS_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (GOPATTERNS_DOCS_DIR, etc.)
//	4. Configuration files (.gopatterns.yml) - lowest priority
//
// Environment Variables:
//
//	GOPATTERNS_CONFIG_FILE: Path to custom configuration file
//	GOPATTERNS_DOCS_DIR: Override the docs directory
//	GOPATTERNS_OUTPUT_FORMAT: Override the default output format
//	And more following the GOPATTERNS_<SECTION>_<OPTION> pattern
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gopatterns",
	Short: "A browsable catalog of the classic design patterns in Go",
	Long: `gopatterns is a catalog of the classic Gang of Four design patterns,
each written up in prose and illustrated with a small idiomatic Go snippet.

Key Features:
  • Per-pattern documentation pages with runnable toy demos
  • Catalog listing by category (creational, structural, behavioral)
  • Documentation validation with front matter cross-checks
  • Watch mode that re-validates pages as they are edited

Quick Start:
  gopatterns list                 List every cataloged pattern
  gopatterns show decorator       Read one pattern's write-up
  gopatterns demo observer        Run a pattern's demo
  gopatterns validate             Check docs against the catalog

Command Aliases (for faster typing):
  list (l), show (s), demo (d), validate (v), watch (w)`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .gopatterns.yml, can also use GOPATTERNS_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig initializes the configuration system.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. GOPATTERNS_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .gopatterns.yml in current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("GOPATTERNS_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(".gopatterns")
		viper.SetConfigType("yml")
	}

	viper.SetEnvPrefix("GOPATTERNS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; a malformed one is not
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			if !os.IsNotExist(err) {
				fmt.Fprintf(os.Stderr, "Warning: failed to read config: %v\n", err)
			}
		}
	}
}
