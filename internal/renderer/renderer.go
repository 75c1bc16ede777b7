// Package renderer formats catalog listings and single pattern pages for the
// CLI output formats: table, json, yaml, csv, and plain text pages.
package renderer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/gopatterns/internal/docs"
	"github.com/conneroisu/gopatterns/internal/types"
)

var titler = cases.Title(language.English)

// List renders patterns in the named format.
func List(w io.Writer, patterns []*types.PatternInfo, format string) error {
	switch strings.ToLower(format) {
	case "table":
		return Table(w, patterns)
	case "json":
		return JSON(w, patterns)
	case "yaml":
		return YAML(w, patterns)
	case "csv":
		return CSV(w, patterns)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// Table renders patterns as an aligned table grouped under category headings.
func Table(w io.Writer, patterns []*types.PatternInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "CATEGORY\tSLUG\tNAME\tINTENT")
	fmt.Fprintln(tw, "--------\t----\t----\t------")

	for _, pattern := range patterns {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			CategoryHeading(pattern.Category), pattern.Slug, pattern.Name, pattern.Intent)
	}

	return tw.Flush()
}

// JSON renders patterns as an indented JSON array.
func JSON(w io.Writer, patterns []*types.PatternInfo) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(listItems(patterns))
}

// YAML renders patterns as a YAML document.
func YAML(w io.Writer, patterns []*types.PatternInfo) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	return encoder.Encode(listItems(patterns))
}

// CSV renders patterns as comma-separated rows with a header line.
func CSV(w io.Writer, patterns []*types.PatternInfo) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"category", "slug", "name", "intent"}); err != nil {
		return err
	}
	for _, pattern := range patterns {
		row := []string{string(pattern.Category), pattern.Slug, pattern.Name, pattern.Intent}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func listItems(patterns []*types.PatternInfo) []map[string]interface{} {
	items := make([]map[string]interface{}, len(patterns))
	for i, pattern := range patterns {
		item := map[string]interface{}{
			"slug":     pattern.Slug,
			"name":     pattern.Name,
			"category": string(pattern.Category),
			"intent":   pattern.Intent,
		}
		if len(pattern.AlsoKnownAs) > 0 {
			item["also_known_as"] = pattern.AlsoKnownAs
		}
		items[i] = item
	}
	return items
}

// Page renders one pattern's metadata followed by its documentation prose.
func Page(w io.Writer, pattern *types.PatternInfo, page *docs.Page) error {
	heading := fmt.Sprintf("%s (%s)", pattern.Name, CategoryHeading(pattern.Category))
	fmt.Fprintln(w, heading)
	fmt.Fprintln(w, strings.Repeat("=", len(heading)))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Intent: %s\n", pattern.Intent)

	if len(pattern.AlsoKnownAs) > 0 {
		fmt.Fprintf(w, "Also known as: %s\n", strings.Join(pattern.AlsoKnownAs, ", "))
	}

	if len(pattern.Participants) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Participants:")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, participant := range pattern.Participants {
			fmt.Fprintf(tw, "  %s\t%s\n", participant.Role, participant.Element)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if page != nil && strings.TrimSpace(page.Body) != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, strings.TrimSpace(page.Body))
	}

	return nil
}

// CategoryHeading returns the category name title-cased for display.
func CategoryHeading(category types.Category) string {
	return titler.String(string(category))
}
