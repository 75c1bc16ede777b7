package structural

import "strings"

// Printer is the interface modern callers expect.
type Printer interface {
	Print(msg string) string
}

// LegacyPrinter has an incompatible interface the rest of the code cannot
// call directly.
type LegacyPrinter struct{}

// PrintUpper is the legacy operation: it only knows shouting.
func (LegacyPrinter) PrintUpper(msg string) string {
	return strings.ToUpper(msg) + "!"
}

// PrinterAdapter adapts a LegacyPrinter to the Printer interface.
type PrinterAdapter struct {
	Legacy LegacyPrinter
}

// Print translates the modern call into the legacy one.
func (a PrinterAdapter) Print(msg string) string {
	return "legacy: " + a.Legacy.PrintUpper(msg)
}
