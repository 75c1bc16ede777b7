package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	doerrors "github.com/conneroisu/gopatterns/internal/errors"
	"github.com/conneroisu/gopatterns/internal/testutils"
	"github.com/conneroisu/gopatterns/internal/types"
)

func TestLoadFile_WellFormed(t *testing.T) {
	dir := testutils.CreateDocsDir(t)
	path := testutils.WriteDocPage(t, dir, "singleton", "Singleton", "creational",
		"Ensure a type has one instance.")

	page, pageErrors := LoadFile(path)
	require.NotNil(t, page)
	assert.Empty(t, pageErrors)

	assert.Equal(t, "singleton", page.Meta.Slug)
	assert.Equal(t, "Singleton", page.Meta.Name)
	assert.Equal(t, "creational", page.Meta.Category)
	assert.Contains(t, page.Body, "## Motivation")
}

func TestLoadFile_MissingFrontMatter(t *testing.T) {
	dir := testutils.CreateDocsDir(t)
	path := testutils.WriteRawPage(t, dir, "plain.md", "just prose, no front matter\n")

	page, pageErrors := LoadFile(path)
	assert.Nil(t, page)
	require.Len(t, pageErrors, 1)
	assert.Contains(t, pageErrors[0].Message, "missing front matter")
	assert.Equal(t, doerrors.ErrorSeverityError, pageErrors[0].Severity)
}

func TestLoadFile_UnterminatedFrontMatter(t *testing.T) {
	dir := testutils.CreateDocsDir(t)
	path := testutils.WriteRawPage(t, dir, "broken.md", "---\nslug: broken\nname: Broken\n")

	page, pageErrors := LoadFile(path)
	assert.Nil(t, page)
	require.Len(t, pageErrors, 1)
	assert.Contains(t, pageErrors[0].Message, "unterminated")
}

func TestLoadFile_DashRunIsNotATerminator(t *testing.T) {
	dir := testutils.CreateDocsDir(t)
	path := testutils.WriteRawPage(t, dir, "dashes.md",
		"---\nslug: dashes\n---- stray dashes\n---\nprose\n")

	// "----" is front matter content, not a terminator: the block keeps
	// extending to the real "---" line and the broken YAML is reported
	// instead of silently truncating the block.
	page, pageErrors := LoadFile(path)
	assert.Nil(t, page)
	require.Len(t, pageErrors, 1)
	assert.Contains(t, pageErrors[0].Message, "invalid front matter")
}

func TestLoadFile_TerminatorAtEndOfFile(t *testing.T) {
	dir := testutils.CreateDocsDir(t)
	path := testutils.WriteRawPage(t, dir, "tail.md",
		"---\nslug: tail\nname: Tail\ncategory: structural\nintent: Intent.\n---")

	page, pageErrors := LoadFile(path)
	require.NotNil(t, page)
	require.Len(t, pageErrors, 1)
	assert.Contains(t, pageErrors[0].Message, "no prose body")
	assert.Equal(t, "tail", page.Meta.Slug)
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	dir := testutils.CreateDocsDir(t)
	path := testutils.WriteRawPage(t, dir, "bad.md", "---\nslug: [unclosed\n---\nbody\n")

	page, pageErrors := LoadFile(path)
	assert.Nil(t, page)
	require.Len(t, pageErrors, 1)
	assert.Contains(t, pageErrors[0].Message, "invalid front matter")
}

func TestLoadFile_MissingRequiredFields(t *testing.T) {
	dir := testutils.CreateDocsDir(t)
	path := testutils.WriteRawPage(t, dir, "sparse.md", "---\nslug: sparse\n---\nprose\n")

	page, pageErrors := LoadFile(path)
	require.NotNil(t, page)

	messages := make([]string, len(pageErrors))
	for i, de := range pageErrors {
		messages[i] = de.Message
	}
	assert.Contains(t, messages, "front matter missing required field: name")
	assert.Contains(t, messages, "front matter missing required field: intent")
	assert.Contains(t, messages, "front matter missing required field: category")
}

func TestLoadFile_UnknownCategory(t *testing.T) {
	dir := testutils.CreateDocsDir(t)
	path := testutils.WriteDocPage(t, dir, "odd", "Odd", "ornamental", "Intent.")

	_, pageErrors := LoadFile(path)
	require.NotEmpty(t, pageErrors)
	assert.Contains(t, pageErrors[0].Message, `unknown category "ornamental"`)
}

func TestLoadFile_SlugFilenameMismatch(t *testing.T) {
	dir := testutils.CreateDocsDir(t)
	path := testutils.WriteRawPage(t, dir, "wrongname.md",
		"---\nslug: decorator\nname: Decorator\ncategory: structural\nintent: Wrap.\n---\nprose\n")

	_, pageErrors := LoadFile(path)
	require.Len(t, pageErrors, 1)
	assert.Contains(t, pageErrors[0].Message, "does not match filename")
}

func TestLoadFile_EmptyBodyWarns(t *testing.T) {
	dir := testutils.CreateDocsDir(t)
	path := testutils.WriteRawPage(t, dir, "hollow.md",
		"---\nslug: hollow\nname: Hollow\ncategory: structural\nintent: Intent.\n---\n")

	page, pageErrors := LoadFile(path)
	require.NotNil(t, page)
	require.Len(t, pageErrors, 1)
	assert.Equal(t, doerrors.ErrorSeverityWarning, pageErrors[0].Severity)
	assert.Contains(t, pageErrors[0].Message, "no prose body")
}

func TestLoadDir(t *testing.T) {
	dir := testutils.CreateDocsDir(t)
	testutils.WriteDocPage(t, dir, "builder", "Builder", "creational", "Assemble step by step.")
	testutils.WriteDocPage(t, dir, "adapter", "Adapter", "structural", "Convert interfaces.")
	testutils.WriteRawPage(t, dir, "README.md", "not a pattern page")
	testutils.WriteRawPage(t, dir, "notes.txt", "ignored extension")

	pages, docErrors, err := LoadDir(dir, []string{"README.md"})
	require.NoError(t, err)
	assert.Empty(t, docErrors)
	require.Len(t, pages, 2)

	// Sorted by slug
	assert.Equal(t, "adapter", pages[0].Meta.Slug)
	assert.Equal(t, "builder", pages[1].Meta.Slug)
}

func TestLoadDir_DuplicateSlug(t *testing.T) {
	dir := testutils.CreateDocsDir(t)
	testutils.WriteDocPage(t, dir, "proxy", "Proxy", "structural", "Stand in.")
	testutils.WriteRawPage(t, dir, "proxy2.md",
		"---\nslug: proxy\nname: Proxy\ncategory: structural\nintent: Stand in.\n---\nprose\n")

	pages, docErrors, err := LoadDir(dir, nil)
	require.NoError(t, err)
	assert.Len(t, pages, 1)

	var found bool
	for _, de := range docErrors {
		if de.Severity == doerrors.ErrorSeverityError && de.Slug == "proxy" {
			found = true
		}
	}
	assert.True(t, found, "expected a duplicate-slug error")
}

func TestLoadDir_MissingDirectory(t *testing.T) {
	_, _, err := LoadDir("/does/not/exist", nil)
	assert.Error(t, err)
}

func TestCrossCheck(t *testing.T) {
	patterns := []*types.PatternInfo{
		{Slug: "observer", Name: "Observer", Category: types.CategoryBehavioral},
		{Slug: "state", Name: "State", Category: types.CategoryBehavioral},
	}

	dir := testutils.CreateDocsDir(t)
	testutils.WriteDocPage(t, dir, "observer", "Observer", "behavioral", "Publish changes.")
	// state.md is deliberately absent; stray.md documents nothing registered
	testutils.WriteDocPage(t, dir, "stray", "Stray", "structural", "Nothing.")

	pages, _, err := LoadDir(dir, nil)
	require.NoError(t, err)

	docErrors := CrossCheck(patterns, pages)

	var missingPage, orphanPage bool
	for _, de := range docErrors {
		if de.Slug == "state" {
			missingPage = true
		}
		if de.Slug == "stray" {
			orphanPage = true
		}
	}
	assert.True(t, missingPage, "expected missing-page error for state")
	assert.True(t, orphanPage, "expected orphan-page error for stray")
}

func TestCrossCheck_CategoryDisagreement(t *testing.T) {
	patterns := []*types.PatternInfo{
		{Slug: "bridge", Name: "Bridge", Category: types.CategoryStructural},
	}

	dir := testutils.CreateDocsDir(t)
	testutils.WriteDocPage(t, dir, "bridge", "Bridge", "behavioral", "Decouple abstraction.")

	pages, _, err := LoadDir(dir, nil)
	require.NoError(t, err)

	docErrors := CrossCheck(patterns, pages)
	require.Len(t, docErrors, 1)
	assert.Contains(t, docErrors[0].Message, "disagrees with catalog category")
}

func TestCrossCheck_Agreement(t *testing.T) {
	patterns := []*types.PatternInfo{
		{Slug: "facade", Name: "Facade", Category: types.CategoryStructural},
	}

	dir := testutils.CreateDocsDir(t)
	testutils.WriteDocPage(t, dir, "facade", "Facade", "structural", "One front door.")

	pages, _, err := LoadDir(dir, nil)
	require.NoError(t, err)

	assert.Empty(t, CrossCheck(patterns, pages))
}
