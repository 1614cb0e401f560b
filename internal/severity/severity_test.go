package severity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		expected string
	}{
		{"error level", SeverityError, "error"},
		{"warning level", SeverityWarning, "warning"},
		{"info level", SeverityInfo, "info"},
		{"critical level", SeverityCritical, "critical"},

		// Edge cases: Invalid severity values
		{"unknown negative", Severity(-1), "unknown"},
		{"unknown large value", Severity(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.severity.String()
			assert.Equal(t, tt.expected, result, "Severity(%d).String() = %q, want %q", tt.severity, result, tt.expected)
		})
	}
}

func TestSeverityAtLeast(t *testing.T) {
	tests := []struct {
		name string
		s    Severity
		min  Severity
		want bool
	}{
		{"info vs info", SeverityInfo, SeverityInfo, true},
		{"info vs warning", SeverityInfo, SeverityWarning, false},
		{"warning vs info", SeverityWarning, SeverityInfo, true},
		{"error vs warning", SeverityError, SeverityWarning, true},
		{"warning vs error", SeverityWarning, SeverityError, false},
		{"critical vs error", SeverityCritical, SeverityError, true},
		{"error vs critical", SeverityError, SeverityCritical, false},
		{"unknown vs info", Severity(42), SeverityInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.s.AtLeast(tt.min))
		})
	}
}
