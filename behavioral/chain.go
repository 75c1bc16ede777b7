package behavioral

import "fmt"

// Severity levels a support ticket can carry.
const (
	SeverityLow = iota + 1
	SeverityMedium
	SeverityHigh
)

// SupportHandler is one link in the chain of responsibility.
type SupportHandler struct {
	Name     string
	MaxLevel int
	next     *SupportHandler
}

// SetNext links the next handler and returns it, so chains read left to
// right when built.
func (h *SupportHandler) SetNext(next *SupportHandler) *SupportHandler {
	h.next = next
	return next
}

// Handle walks the chain until a handler accepts the ticket. An unhandled
// ticket is reported as such rather than dropped silently.
func (h *SupportHandler) Handle(severity int) string {
	if severity <= h.MaxLevel {
		return fmt.Sprintf("%s handled severity %d", h.Name, severity)
	}
	if h.next != nil {
		return h.next.Handle(severity)
	}
	return fmt.Sprintf("severity %d unhandled", severity)
}
