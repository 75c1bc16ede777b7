package errors

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocError_Error(t *testing.T) {
	withLine := DocError{
		Slug:     "singleton",
		File:     "docs/singleton.md",
		Line:     3,
		Message:  "missing intent",
		Severity: ErrorSeverityError,
	}
	assert.Equal(t, "docs/singleton.md:3: error: missing intent", withLine.Error())

	noLine := DocError{
		File:     "docs/builder.md",
		Message:  "orphan page",
		Severity: ErrorSeverityWarning,
	}
	assert.Equal(t, "docs/builder.md: warning: orphan page", noLine.Error())
}

func TestErrorSeverity_String(t *testing.T) {
	assert.Equal(t, "info", ErrorSeverityInfo.String())
	assert.Equal(t, "warning", ErrorSeverityWarning.String())
	assert.Equal(t, "error", ErrorSeverityError.String())
	assert.Equal(t, "unknown", ErrorSeverity(9).String())
}

func TestErrorCollector_Add(t *testing.T) {
	collector := NewErrorCollector()

	collector.Add(DocError{File: "docs/proxy.md", Message: "bad front matter", Severity: ErrorSeverityError})

	docErrors := collector.DocErrors()
	require.Len(t, docErrors, 1)
	assert.False(t, docErrors[0].Timestamp.IsZero())
	assert.True(t, collector.HasErrors())
	assert.Equal(t, 1, collector.Count())
}

func TestErrorCollector_WarningsAreNotErrors(t *testing.T) {
	collector := NewErrorCollector()

	collector.Add(DocError{File: "docs/state.md", Message: "no FAQ section", Severity: ErrorSeverityWarning})
	collector.Add(DocError{File: "docs/state.md", Message: "note", Severity: ErrorSeverityInfo})

	assert.Equal(t, 2, collector.Count())
	assert.False(t, collector.HasErrors())
}

func TestErrorCollector_AddError(t *testing.T) {
	collector := NewErrorCollector()

	collector.AddError(nil)
	assert.Equal(t, 0, collector.Count())

	collector.AddError(errors.New("docs dir unreadable"))
	assert.Equal(t, 1, collector.Count())
	assert.True(t, collector.HasErrors())
	require.Len(t, collector.Errors(), 1)
}

func TestErrorCollector_Clear(t *testing.T) {
	collector := NewErrorCollector()
	collector.Add(DocError{File: "docs/visitor.md", Severity: ErrorSeverityError})
	collector.AddError(errors.New("boom"))

	collector.Clear()

	assert.Equal(t, 0, collector.Count())
	assert.False(t, collector.HasErrors())
}

func TestErrorCollector_Concurrent(t *testing.T) {
	collector := NewErrorCollector()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				collector.Add(DocError{File: "docs/x.md", Severity: ErrorSeverityWarning})
				collector.DocErrors()
				collector.HasErrors()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 500, collector.Count())
}
