package oaserrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates the API description could not be read or decoded.
	ErrParse = errors.New("parse error")

	// ErrValidation indicates the API description violates the OpenAPI specification.
	ErrValidation = errors.New("validation error")

	// ErrUnsupported indicates constructs the generator cannot render.
	ErrUnsupported = errors.New("unsupported construct")

	// ErrRender indicates a template or formatting failure while rendering a file.
	ErrRender = errors.New("render error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to read or decode an API description.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ValidationError represents an OpenAPI specification violation found while
// validating the loaded document.
type ValidationError struct {
	// Path is the file path or source identifier
	Path string
	// Message describes the validation failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	msg := "validation error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// UnsupportedError reports the API description nodes the generator refused
// to render.
type UnsupportedError struct {
	// Paths lists the offending nodes (e.g., "components.schemas.Pet.oneOf")
	Paths []string
	// Strict is true when warnings were promoted to failures by strict mode
	Strict bool
}

// Error returns a human-readable error message.
func (e *UnsupportedError) Error() string {
	msg := "unsupported construct"
	switch len(e.Paths) {
	case 0:
	case 1:
		msg += " at " + e.Paths[0]
	default:
		msg = fmt.Sprintf("%d unsupported constructs at %s", len(e.Paths), strings.Join(e.Paths, ", "))
	}
	if e.Strict {
		msg += " (strict mode)"
	}
	return msg
}

// Unwrap returns nil as UnsupportedError has no underlying cause.
func (e *UnsupportedError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// RenderError represents a failure to render or format a generated file.
type RenderError struct {
	// File is the name of the file being rendered
	File string
	// Template is the name of the template being executed
	Template string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *RenderError) Error() string {
	msg := "render error"
	if e.File != "" {
		msg += " in " + e.File
	}
	if e.Template != "" {
		msg += " (template " + e.Template + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *RenderError) Is(target error) bool {
	return target == ErrRender
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
