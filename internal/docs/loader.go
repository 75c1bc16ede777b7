// Package docs loads and validates the pattern documentation pages: markdown
// files with a YAML front matter block describing the pattern they document.
package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	doerrors "github.com/conneroisu/gopatterns/internal/errors"
	"github.com/conneroisu/gopatterns/internal/types"
)

// Page is a loaded pattern documentation page
type Page struct {
	// Meta is the parsed YAML front matter
	Meta types.DocMeta
	// Body is the markdown prose following the front matter
	Body string
	// Path is the file the page was loaded from
	Path string
}

const frontMatterDelimiter = "---"

// LoadDir loads all markdown pages from dir, skipping files matching any of
// excludePatterns. Malformed pages are reported as DocErrors, not failures;
// the returned error covers only the inability to read the directory itself.
func LoadDir(dir string, excludePatterns []string) ([]Page, []doerrors.DocError, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("reading docs directory %s: %w", dir, err)
	}

	var pages []Page
	var docErrors []doerrors.DocError
	seen := make(map[string]string)

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}
		if excluded(entry.Name(), excludePatterns) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		page, pageErrors := LoadFile(path)
		docErrors = append(docErrors, pageErrors...)
		if page == nil {
			continue
		}

		if prev, dup := seen[page.Meta.Slug]; dup {
			docErrors = append(docErrors, doerrors.DocError{
				Slug:     page.Meta.Slug,
				File:     path,
				Message:  fmt.Sprintf("duplicate slug %q, already used by %s", page.Meta.Slug, prev),
				Severity: doerrors.ErrorSeverityError,
			})
			continue
		}
		seen[page.Meta.Slug] = path
		pages = append(pages, *page)
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].Meta.Slug < pages[j].Meta.Slug })
	return pages, docErrors, nil
}

// LoadFile loads a single page. A nil page means the file was unusable; the
// returned DocErrors explain why. A non-nil page may still carry warnings.
func LoadFile(path string) (*Page, []doerrors.DocError) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []doerrors.DocError{{
			File:     path,
			Message:  fmt.Sprintf("unreadable: %v", err),
			Severity: doerrors.ErrorSeverityError,
		}}
	}

	meta, body, err := splitFrontMatter(string(data))
	if err != nil {
		return nil, []doerrors.DocError{{
			File:     path,
			Line:     1,
			Message:  err.Error(),
			Severity: doerrors.ErrorSeverityError,
		}}
	}

	page := &Page{Meta: meta, Body: body, Path: path}
	return page, validatePage(page)
}

// splitFrontMatter separates the leading YAML front matter block from the
// markdown body. The block is fenced by "---" lines and must come first.
func splitFrontMatter(content string) (types.DocMeta, string, error) {
	var meta types.DocMeta

	if !strings.HasPrefix(content, frontMatterDelimiter+"\n") {
		return meta, "", fmt.Errorf("missing front matter block")
	}

	rest := content[len(frontMatterDelimiter)+1:]

	// The terminator must be a line that is exactly "---"; a longer dash run
	// or a value starting with dashes still belongs to the block.
	var block, body string
	terminated := false
	for search := 0; !terminated; {
		idx := strings.Index(rest[search:], "\n"+frontMatterDelimiter)
		if idx < 0 {
			break
		}
		lineStart := search + idx + 1
		lineEnd := lineStart + len(frontMatterDelimiter)
		switch {
		case lineEnd == len(rest):
			block, body, terminated = rest[:lineStart-1], "", true
		case rest[lineEnd] == '\n':
			block, body, terminated = rest[:lineStart-1], rest[lineEnd+1:], true
		default:
			search = lineStart
		}
	}
	if !terminated {
		return meta, "", fmt.Errorf("unterminated front matter block")
	}

	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return meta, "", fmt.Errorf("invalid front matter: %v", err)
	}

	return meta, body, nil
}

// validatePage checks required front matter fields and naming consistency
func validatePage(page *Page) []doerrors.DocError {
	var result []doerrors.DocError

	addError := func(msg string) {
		result = append(result, doerrors.DocError{
			Slug:     page.Meta.Slug,
			File:     page.Path,
			Message:  msg,
			Severity: doerrors.ErrorSeverityError,
		})
	}

	if page.Meta.Slug == "" {
		addError("front matter missing required field: slug")
	}
	if page.Meta.Name == "" {
		addError("front matter missing required field: name")
	}
	if page.Meta.Intent == "" {
		addError("front matter missing required field: intent")
	}

	if page.Meta.Category == "" {
		addError("front matter missing required field: category")
	} else if !types.Category(page.Meta.Category).Valid() {
		addError(fmt.Sprintf("unknown category %q", page.Meta.Category))
	}

	if page.Meta.Slug != "" {
		base := strings.TrimSuffix(filepath.Base(page.Path), ".md")
		if base != page.Meta.Slug {
			addError(fmt.Sprintf("slug %q does not match filename %q", page.Meta.Slug, base))
		}
	}

	if strings.TrimSpace(page.Body) == "" {
		result = append(result, doerrors.DocError{
			Slug:     page.Meta.Slug,
			File:     page.Path,
			Message:  "page has no prose body",
			Severity: doerrors.ErrorSeverityWarning,
		})
	}

	return result
}

// CrossCheck compares the registered patterns and the loaded pages in both
// directions: every pattern needs a page, every page needs a pattern, and
// the categories must agree.
func CrossCheck(patterns []*types.PatternInfo, pages []Page) []doerrors.DocError {
	var result []doerrors.DocError

	bySlug := make(map[string]Page, len(pages))
	for _, page := range pages {
		bySlug[page.Meta.Slug] = page
	}

	for _, pattern := range patterns {
		page, ok := bySlug[pattern.Slug]
		if !ok {
			result = append(result, doerrors.DocError{
				Slug:     pattern.Slug,
				File:     pattern.DocPath,
				Message:  fmt.Sprintf("pattern %q has no documentation page", pattern.Slug),
				Severity: doerrors.ErrorSeverityError,
			})
			continue
		}
		if page.Meta.Category != string(pattern.Category) {
			result = append(result, doerrors.DocError{
				Slug:     pattern.Slug,
				File:     page.Path,
				Message:  fmt.Sprintf("page category %q disagrees with catalog category %q", page.Meta.Category, pattern.Category),
				Severity: doerrors.ErrorSeverityError,
			})
		}
		if page.Meta.Name != pattern.Name {
			result = append(result, doerrors.DocError{
				Slug:     pattern.Slug,
				File:     page.Path,
				Message:  fmt.Sprintf("page name %q disagrees with catalog name %q", page.Meta.Name, pattern.Name),
				Severity: doerrors.ErrorSeverityWarning,
			})
		}
	}

	known := make(map[string]bool, len(patterns))
	for _, pattern := range patterns {
		known[pattern.Slug] = true
	}
	for _, page := range pages {
		if !known[page.Meta.Slug] {
			result = append(result, doerrors.DocError{
				Slug:     page.Meta.Slug,
				File:     page.Path,
				Message:  fmt.Sprintf("page %q documents no registered pattern", page.Meta.Slug),
				Severity: doerrors.ErrorSeverityError,
			})
		}
	}

	return result
}

func excluded(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
