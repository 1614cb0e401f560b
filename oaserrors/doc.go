// Package oaserrors provides structured error types for the models generator.
//
// Import path: github.com/erraggy/commerce/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between a broken API description, a bad
// configuration and a construct the generator does not support.
//
// # Error Types
//
//   - [ParseError]: the API description could not be read or decoded
//   - [ValidationError]: the API description violates the OpenAPI specification
//   - [UnsupportedError]: schemas use constructs the generator cannot render
//   - [RenderError]: a template or the formatter failed for a generated file
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrValidation]: Matches any [ValidationError]
//   - [ErrUnsupported]: Matches any [UnsupportedError]
//   - [ErrRender]: Matches any [RenderError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	result, err := sdkgen.Generate(ctx, sdkgen.WithConfigFile("api/sdkgen.yaml"))
//	if errors.Is(err, oaserrors.ErrUnsupported) {
//	    // Fix the listed schemas, or run again without strict mode
//	}
//
// Extract error details with errors.As():
//
//	var cfgErr *oaserrors.ConfigError
//	if errors.As(err, &cfgErr) {
//	    fmt.Printf("bad option %s: %s\n", cfgErr.Option, cfgErr.Message)
//	}
package oaserrors
