// Package errors defines the documentation validation error type and a
// thread-safe collector used by the validate and watch commands.
package errors

import (
	"fmt"
	"sync"
	"time"
)

// DocError represents a problem found in a pattern documentation page
type DocError struct {
	Slug      string
	File      string
	Line      int
	Message   string
	Severity  ErrorSeverity
	Timestamp time.Time
}

// ErrorSeverity represents the severity of a doc error
type ErrorSeverity int

const (
	ErrorSeverityInfo ErrorSeverity = iota
	ErrorSeverityWarning
	ErrorSeverityError
)

// String returns the string representation of the severity
func (s ErrorSeverity) String() string {
	switch s {
	case ErrorSeverityInfo:
		return "info"
	case ErrorSeverityWarning:
		return "warning"
	case ErrorSeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Error implements the error interface
func (de *DocError) Error() string {
	if de.Line > 0 {
		return fmt.Sprintf("%s:%d: %s: %s", de.File, de.Line, de.Severity, de.Message)
	}
	return fmt.Sprintf("%s: %s: %s", de.File, de.Severity, de.Message)
}

// ErrorCollector collects doc errors and general errors during validation
type ErrorCollector struct {
	docErrors []DocError
	errors    []error
	mutex     sync.RWMutex
}

// NewErrorCollector creates a new error collector
func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{
		docErrors: make([]DocError, 0),
		errors:    make([]error, 0),
	}
}

// Add adds a doc error to the collector, stamping it with the current time
func (ec *ErrorCollector) Add(err DocError) {
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	err.Timestamp = time.Now()
	ec.docErrors = append(ec.docErrors, err)
}

// AddError adds a general error to the collector
func (ec *ErrorCollector) AddError(err error) {
	if err == nil {
		return
	}
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	ec.errors = append(ec.errors, err)
}

// DocErrors returns a copy of the collected doc errors
func (ec *ErrorCollector) DocErrors() []DocError {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	result := make([]DocError, len(ec.docErrors))
	copy(result, ec.docErrors)
	return result
}

// Errors returns a copy of the collected general errors
func (ec *ErrorCollector) Errors() []error {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	result := make([]error, len(ec.errors))
	copy(result, ec.errors)
	return result
}

// HasErrors reports whether any error-severity doc error or general error
// was collected. Warnings and infos do not count.
func (ec *ErrorCollector) HasErrors() bool {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	if len(ec.errors) > 0 {
		return true
	}
	for _, de := range ec.docErrors {
		if de.Severity >= ErrorSeverityError {
			return true
		}
	}
	return false
}

// Count returns the total number of collected errors
func (ec *ErrorCollector) Count() int {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	return len(ec.docErrors) + len(ec.errors)
}

// Clear removes all collected errors
func (ec *ErrorCollector) Clear() {
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	ec.docErrors = ec.docErrors[:0]
	ec.errors = ec.errors[:0]
}
