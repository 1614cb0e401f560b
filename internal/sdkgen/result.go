package sdkgen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/erraggy/commerce/internal/fileutil"
)

// File is one generated Go source file.
type File struct {
	// Name is the base file name, e.g. "order_builder.go".
	Name    string
	Content []byte
}

// Result is the outcome of Generate.
type Result struct {
	// Title and Version come from the info object of the API description.
	Title   string
	Version string
	// Package is the Go package name of the generated files.
	Package string
	// OutputDir is the configured output directory, if any.
	OutputDir string
	// Files are sorted by name.
	Files []File
	// Issues contains every finding of the load, in schema order.
	Issues []Issue

	ModelCount    int
	EnumCount     int
	InfoCount     int
	WarningCount  int
	ErrorCount    int
	CriticalCount int
}

// HasWarnings returns true if there are any warnings
func (r *Result) HasWarnings() bool {
	return r.WarningCount > 0
}

// File returns the generated file with the given name, or nil.
func (r *Result) File(name string) *File {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Write writes all generated files to dir, creating it if needed, and
// removes Go files in dir that carry the generated header but are no longer
// produced. Hand-written files are never touched.
func (r *Result) Write(dir string) error {
	if err := os.MkdirAll(dir, fileutil.DirReadableByAll); err != nil {
		return fmt.Errorf("sdkgen: create output directory: %w", err)
	}
	for _, file := range r.Files {
		safeName := filepath.Base(file.Name)
		if safeName != file.Name {
			return fmt.Errorf("sdkgen: invalid file name %q: must not contain path separators", file.Name)
		}
		if err := os.WriteFile(filepath.Join(dir, safeName), file.Content, fileutil.ReadableByAll); err != nil {
			return fmt.Errorf("sdkgen: write %s: %w", file.Name, err)
		}
	}
	stale, err := r.stale(dir)
	if err != nil {
		return err
	}
	for _, name := range stale {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("sdkgen: remove stale %s: %w", name, err)
		}
	}
	return nil
}

// Diff compares the generated files with the contents of dir and returns the
// sorted names of files that are missing, differ, or are stale generated
// files that Write would remove. An empty result means dir is up to date.
func (r *Result) Diff(dir string) ([]string, error) {
	var out []string
	for _, file := range r.Files {
		current, err := os.ReadFile(filepath.Join(dir, file.Name)) //nolint:gosec // name is a generated base name
		switch {
		case errors.Is(err, os.ErrNotExist):
			out = append(out, file.Name)
		case err != nil:
			return nil, fmt.Errorf("sdkgen: read %s: %w", file.Name, err)
		case !bytes.Equal(current, file.Content):
			out = append(out, file.Name)
		}
	}
	stale, err := r.stale(dir)
	if err != nil {
		return nil, err
	}
	out = append(out, stale...)
	slices.Sort(out)
	return out, nil
}

// stale lists generated Go files in dir that r does not produce.
func (r *Result) stale(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("sdkgen: read output directory: %w", err)
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") || r.File(name) != nil {
			continue
		}
		generated, err := fileutil.HasHeader(filepath.Join(dir, name), GeneratedHeader)
		if err != nil {
			return nil, fmt.Errorf("sdkgen: inspect %s: %w", name, err)
		}
		if generated {
			out = append(out, name)
		}
	}
	return out, nil
}
