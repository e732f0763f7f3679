// =============================================================================
// Data Formatter - Formatting Warnings
// =============================================================================

package formatter

import "fmt"

// WarningCode classifies a non-fatal formatting problem.
type WarningCode string

const (
	// WarnDuplicateTarget is surfaced when two source columns compete for
	// the same target label. The first column in record order wins; the
	// later one is dropped.
	WarnDuplicateTarget WarningCode = "duplicate_target"

	// WarnUnresolvedPlaceholder is surfaced when a template references a
	// source column that is not present in the data. The placeholder is
	// left in the output as-is.
	WarnUnresolvedPlaceholder WarningCode = "unresolved_placeholder"
)

// Warning describes one non-fatal problem found while formatting. Warnings
// never abort a record or the dataset; they exist so the caller can tell the
// user what was silently resolved.
type Warning struct {
	Code   WarningCode
	Target string
	Source string
}

func (w Warning) String() string {
	switch w.Code {
	case WarnDuplicateTarget:
		return fmt.Sprintf("column %q also maps to %q; keeping the first mapped column", w.Source, w.Target)
	case WarnUnresolvedPlaceholder:
		return fmt.Sprintf("template for %q references unknown column %q; placeholder left unchanged", w.Target, w.Source)
	default:
		return fmt.Sprintf("%s: target=%q source=%q", w.Code, w.Target, w.Source)
	}
}
