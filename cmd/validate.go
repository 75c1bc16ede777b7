package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/conneroisu/gopatterns/internal/catalog"
	"github.com/conneroisu/gopatterns/internal/config"
	"github.com/conneroisu/gopatterns/internal/docs"
	doerrors "github.com/conneroisu/gopatterns/internal/errors"
	"github.com/conneroisu/gopatterns/internal/registry"
)

var validateCmd = &cobra.Command{
	Use:     "validate",
	Aliases: []string{"v"},
	Short:   "Validate the documentation pages against the catalog",
	Long: `Validate that every cataloged pattern has a well-formed documentation
page, that no orphan pages exist, and that page front matter agrees with the
catalog metadata.

Exits non-zero when any error-severity problem is found; warnings are
reported but do not fail the run.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	collector, err := validateDocs(cfg)
	if err != nil {
		return err
	}

	return reportValidation(collector)
}

// validateDocs runs a full docs-vs-catalog validation pass
func validateDocs(cfg *config.Config) (*doerrors.ErrorCollector, error) {
	reg := registry.NewPatternRegistry()
	catalog.Register(reg, cfg.Docs.Dir)

	pages, pageErrors, err := docs.LoadDir(cfg.Docs.Dir, cfg.Docs.ExcludePatterns)
	if err != nil {
		return nil, err
	}

	collector := doerrors.NewErrorCollector()
	for _, pageError := range pageErrors {
		collector.Add(pageError)
	}
	for _, crossError := range docs.CrossCheck(reg.All(), pages) {
		collector.Add(crossError)
	}
	return collector, nil
}

// reportValidation prints collected problems and fails on error severity
func reportValidation(collector *doerrors.ErrorCollector) error {
	docErrors := collector.DocErrors()
	if len(docErrors) == 0 {
		fmt.Println("Documentation is consistent with the catalog.")
		return nil
	}

	for _, docError := range docErrors {
		fmt.Fprintln(os.Stderr, docError.Error())
	}

	if collector.HasErrors() {
		return fmt.Errorf("validation failed with %d problem(s)", len(docErrors))
	}

	fmt.Printf("Validation passed with %d warning(s).\n", len(docErrors))
	return nil
}
