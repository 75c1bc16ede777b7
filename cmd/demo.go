package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/conneroisu/gopatterns/internal/catalog"
	"github.com/conneroisu/gopatterns/internal/config"
	"github.com/conneroisu/gopatterns/internal/registry"
	"github.com/conneroisu/gopatterns/internal/types"
)

var demoCmd = &cobra.Command{
	Use:     "demo <slug>",
	Aliases: []string{"d"},
	Short:   "Run a pattern's toy demo",
	Long: `Run the illustrative example for a pattern and print its transcript.

Examples:
  gopatterns demo singleton
  gopatterns demo state`,
	Args: cobra.ExactArgs(1),
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	reg := registry.NewPatternRegistry()
	catalog.Register(reg, cfg.Docs.Dir)

	slug := args[0]
	pattern, ok := reg.Get(slug)
	if !ok {
		return fmt.Errorf("unknown pattern %q, try 'gopatterns list'", slug)
	}

	return runPatternDemo(os.Stdout, pattern)
}

// runPatternDemo prints the demo transcript; a pattern registered without a
// demo is an error, not a panic.
func runPatternDemo(w io.Writer, pattern *types.PatternInfo) error {
	if pattern.Demo == nil {
		return fmt.Errorf("pattern %q has no demo registered", pattern.Slug)
	}

	fmt.Fprintf(w, "%s demo:\n\n", pattern.Name)
	if err := pattern.Demo(w); err != nil {
		return fmt.Errorf("demo %s: %w", pattern.Slug, err)
	}
	return nil
}
