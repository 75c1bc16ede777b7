// Package testutils provides shared fixtures for tests that need a docs
// directory on disk.
package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateDocsDir creates a temporary docs directory for testing
func CreateDocsDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "docs")
	require.NoError(t, os.MkdirAll(dir, 0755))
	return dir
}

// WriteDocPage writes a well-formed pattern page and returns its path
func WriteDocPage(t *testing.T, dir, slug, name, category, intent string) string {
	t.Helper()
	content := fmt.Sprintf(`---
slug: %s
name: %s
category: %s
intent: %s
---

## Motivation

Toy prose for %s.

## FAQ

Nothing yet.
`, slug, name, category, intent, name)
	return WriteRawPage(t, dir, slug+".md", content)
}

// WriteRawPage writes arbitrary page content and returns its path
func WriteRawPage(t *testing.T, dir, filename, content string) string {
	t.Helper()
	path := filepath.Join(dir, filename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
