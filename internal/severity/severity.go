// Package severity provides severity levels for issues reported while
// generating the models package from the API description.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity indicates how serious a generator finding is.
type Severity int

const (
	// SeverityError indicates a construct that produced incorrect or missing
	// code, such as a property whose type could not be resolved.
	SeverityError Severity = iota

	// SeverityWarning indicates a construct that was rendered with a looser
	// Go type than the API describes, such as an inline object rendered as any.
	SeverityWarning

	// SeverityInfo indicates a processing choice worth knowing about.
	SeverityInfo

	// SeverityCritical indicates a conflict that makes the generated package
	// impossible to compile, such as two properties mapping to one Go name.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// rank orders severities from least to most severe.
func (s Severity) rank() int {
	switch s {
	case SeverityInfo:
		return 0
	case SeverityWarning:
		return 1
	case SeverityError:
		return 2
	case SeverityCritical:
		return 3
	default:
		return -1
	}
}

// AtLeast reports whether s is as severe as min or more.
func (s Severity) AtLeast(min Severity) bool {
	return s.rank() >= min.rank()
}
