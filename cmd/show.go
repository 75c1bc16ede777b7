package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/conneroisu/gopatterns/internal/catalog"
	"github.com/conneroisu/gopatterns/internal/config"
	"github.com/conneroisu/gopatterns/internal/docs"
	"github.com/conneroisu/gopatterns/internal/registry"
	"github.com/conneroisu/gopatterns/internal/renderer"
)

var showCmd = &cobra.Command{
	Use:     "show <slug>",
	Aliases: []string{"s"},
	Short:   "Show one pattern's write-up",
	Long: `Show a pattern's catalog metadata followed by its documentation page.

Examples:
  gopatterns show decorator
  gopatterns show chain-of-responsibility`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
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

	// A missing or malformed page still shows the catalog metadata
	page, pageErrors := docs.LoadFile(pattern.DocPath)
	for _, pageError := range pageErrors {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", pageError.Error())
	}

	return renderer.Page(os.Stdout, pattern, page)
}
