package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/conneroisu/gopatterns/internal/config"
	"github.com/conneroisu/gopatterns/internal/types"
)

// StandardFlags provides consistent flag definitions across commands
type StandardFlags struct {
	// Output flags
	Format  string
	Verbose bool
	Quiet   bool

	// Filter flags
	Category string
}

// AddStandardFlags adds the named flag groups to a command
func AddStandardFlags(cmd *cobra.Command, flagTypes ...string) *StandardFlags {
	flags := &StandardFlags{}

	for _, flagType := range flagTypes {
		switch flagType {
		case "output":
			addOutputFlags(cmd, flags)
		case "filter":
			addFilterFlags(cmd, flags)
		}
	}

	return flags
}

func addOutputFlags(cmd *cobra.Command, flags *StandardFlags) {
	cmd.Flags().StringVarP(&flags.Format, "format", "f", "", "Output format (table|json|yaml|csv)")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable verbose output")
	cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Suppress output")
}

func addFilterFlags(cmd *cobra.Command, flags *StandardFlags) {
	cmd.Flags().StringVarP(&flags.Category, "category", "c", "", "Filter by category (creational|structural|behavioral)")
}

// ValidateFlags validates flag combinations and values
func (f *StandardFlags) ValidateFlags() error {
	if f.Format != "" {
		if err := ValidateFormatWithSuggestion(f.Format, config.ValidFormats); err != nil {
			return err
		}
	}

	if f.Category != "" && !types.Category(f.Category).Valid() {
		return fmt.Errorf("invalid category %q, must be one of: creational, structural, behavioral", f.Category)
	}

	if f.Quiet && f.Verbose {
		return fmt.Errorf("cannot specify both --quiet and --verbose")
	}

	return nil
}

// ValidateFormatWithSuggestion checks a format and suggests the closest valid
// one on a near miss
func ValidateFormatWithSuggestion(format string, validFormats []string) error {
	lower := strings.ToLower(format)
	for _, valid := range validFormats {
		if lower == valid {
			return nil
		}
	}

	for _, valid := range validFormats {
		if strings.HasPrefix(valid, lower) && lower != "" {
			return fmt.Errorf("invalid format %q, did you mean %q?", format, valid)
		}
	}

	return fmt.Errorf("invalid format %q, must be one of: %s", format, strings.Join(validFormats, ", "))
}

// AddFlagValidation adds validation for a specific flag
func AddFlagValidation(cmd *cobra.Command, flagName string, validator func(string) error) {
	flag := cmd.Flags().Lookup(flagName)
	if flag == nil {
		return
	}

	originalSet := flag.Value.Set
	flag.Value = &validatingValue{
		Value:       flag.Value,
		validator:   validator,
		originalSet: originalSet,
	}
}

type validatingValue struct {
	pflag.Value
	validator   func(string) error
	originalSet func(string) error
}

func (v *validatingValue) Set(val string) error {
	if v.validator != nil {
		if err := v.validator(val); err != nil {
			return err
		}
	}
	return v.originalSet(val)
}
