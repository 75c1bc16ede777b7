package creational

import (
	"sync"
)

// AuditLog is the toy singleton: a process-wide log that every caller shares.
type AuditLog struct {
	mu    sync.Mutex
	lines []string
}

var (
	auditOnce sync.Once
	auditLog  *AuditLog
)

// SharedAuditLog returns the single AuditLog instance, creating it on first
// use. sync.Once replaces the double-checked locking idiom other languages
// need for a lazy thread-safe singleton.
func SharedAuditLog() *AuditLog {
	auditOnce.Do(func() {
		auditLog = &AuditLog{}
	})
	return auditLog
}

// Record appends a line to the shared log.
func (a *AuditLog) Record(line string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lines = append(a.lines, line)
}

// Lines returns a copy of everything recorded so far.
func (a *AuditLog) Lines() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.lines))
	copy(out, a.lines)
	return out
}
