package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/conneroisu/gopatterns/internal/catalog"
	"github.com/conneroisu/gopatterns/internal/config"
	"github.com/conneroisu/gopatterns/internal/registry"
	"github.com/conneroisu/gopatterns/internal/renderer"
	"github.com/conneroisu/gopatterns/internal/types"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List all cataloged patterns",
	Long: `List every pattern in the catalog with its category, slug, and intent.

Examples:
  gopatterns list                     # All patterns in table format
  gopatterns list -f json             # Output as JSON
  gopatterns list -c behavioral       # Only behavioral patterns
  gopatterns list -c creational -f csv`,
	RunE: runList,
}

var listFlags *StandardFlags

func init() {
	rootCmd.AddCommand(listCmd)

	listFlags = AddStandardFlags(listCmd, "output", "filter")

	AddFlagValidation(listCmd, "format", func(format string) error {
		return ValidateFormatWithSuggestion(format, config.ValidFormats)
	})
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := listFlags.ValidateFlags(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	reg := registry.NewPatternRegistry()
	catalog.Register(reg, cfg.Docs.Dir)

	var patterns []*types.PatternInfo
	if listFlags.Category != "" {
		patterns = reg.ByCategory(types.Category(listFlags.Category))
	} else {
		patterns = reg.All()
	}

	if len(patterns) == 0 {
		fmt.Println("No patterns found.")
		return nil
	}

	format := listFlags.Format
	if format == "" {
		format = cfg.Output.Format
	}

	return renderer.List(os.Stdout, patterns, format)
}
