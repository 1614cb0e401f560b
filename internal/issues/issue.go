// Package issues provides the issue type reported by the code generator for
// constructs in the API description it cannot render faithfully.
package issues

import (
	"fmt"
	"strings"

	"github.com/erraggy/commerce/internal/severity"
)

// Issue represents a single problem found while generating code.
type Issue struct {
	// Path is the dotted path to the problematic node (e.g., "components.schemas.Order.properties.state")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Field is the property name that has the issue, if any
	Field string
	// Value is the problematic value (optional)
	Value any
	// Context describes what the generator did instead (optional)
	Context string
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	result := fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}
	return result
}

// List is an ordered collection of issues.
type List []Issue

// Add appends an issue at path.
func (l *List) Add(sev severity.Severity, path, format string, args ...any) *Issue {
	*l = append(*l, Issue{Path: path, Severity: sev, Message: fmt.Sprintf(format, args...)})
	return &(*l)[len(*l)-1]
}

// Count returns the number of issues with exactly the given severity.
func (l List) Count(sev severity.Severity) int {
	n := 0
	for _, i := range l {
		if i.Severity == sev {
			n++
		}
	}
	return n
}

// AtLeast returns the issues whose severity is min or worse.
func (l List) AtLeast(min severity.Severity) List {
	var out List
	for _, i := range l {
		if i.Severity.AtLeast(min) {
			out = append(out, i)
		}
	}
	return out
}

// FormatPath joins path segments with dots.
func FormatPath(segments ...string) string {
	return strings.Join(segments, ".")
}
