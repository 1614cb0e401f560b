package cliutil

import (
	"bytes"
	"testing"

	"github.com/erraggy/commerce/internal/issues"
	"github.com/erraggy/commerce/internal/severity"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "Hello, %s!", "World")
	if got := buf.String(); got != "Hello, World!" {
		t.Errorf("Writef() = %q, want %q", got, "Hello, World!")
	}
}

func TestWritef_NoArgs(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "Simple message")
	if got := buf.String(); got != "Simple message" {
		t.Errorf("Writef() = %q, want %q", got, "Simple message")
	}
}

// errorWriter is a writer that always returns an error
type errorWriter struct{}

func (e errorWriter) Write(p []byte) (n int, err error) {
	return 0, &writeError{}
}

type writeError struct{}

func (e *writeError) Error() string {
	return "simulated write error"
}

func TestWritef_WriteError(t *testing.T) {
	// Should log to stderr rather than panic
	var ew errorWriter
	Writef(ew, "This will fail")
}

func TestWriteIssues(t *testing.T) {
	list := []issues.Issue{
		{Path: "components.schemas.Name", Message: "string schema is not generated", Severity: severity.SeverityInfo},
		{Path: "components.schemas.Shape", Message: "composed schema is not generated", Severity: severity.SeverityWarning},
		{Path: "components.schemas.widget", Message: "Go name Widget is already used", Severity: severity.SeverityCritical},
	}

	var buf bytes.Buffer
	n := WriteIssues(&buf, list, severity.SeverityWarning)
	if n != 2 {
		t.Errorf("WriteIssues() = %d, want 2", n)
	}
	want := "⚠ components.schemas.Shape: composed schema is not generated\n" +
		"✗ components.schemas.widget: Go name Widget is already used\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteIssues() wrote %q, want %q", got, want)
	}

	buf.Reset()
	if n := WriteIssues(&buf, nil, severity.SeverityInfo); n != 0 || buf.Len() != 0 {
		t.Errorf("WriteIssues(nil) = %d, %q", n, buf.String())
	}
}
