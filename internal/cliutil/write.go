// Package cliutil provides output helpers for the repository's command-line
// programs.
package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/erraggy/commerce/internal/issues"
	"github.com/erraggy/commerce/internal/severity"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteIssues writes every issue whose severity is min or worse, one per
// line, and returns how many were written.
func WriteIssues(w io.Writer, list []issues.Issue, min severity.Severity) int {
	n := 0
	for _, i := range issues.List(list).AtLeast(min) {
		Writef(w, "%s\n", i)
		n++
	}
	return n
}
