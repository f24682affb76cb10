package results

import "strings"

// ErrorContext points at the place in an expression where evaluation failed
type ErrorContext struct {
	Source string `json:"source"`
	Column int    `json:"column"` // Display column (1-indexed)
	Marker string `json:"marker"` // Spaces then '^' under the failing column
}

// NewErrorContext creates an ErrorContext for a byte offset into source.
// It returns nil when the offset is unknown.
func NewErrorContext(source string, offset int) *ErrorContext {
	if offset < 0 {
		return nil
	}
	if offset > len(source) {
		offset = len(source)
	}
	return &ErrorContext{
		Source: source,
		Column: offset + 1,
		Marker: strings.Repeat(" ", offset) + "^",
	}
}
