// Package options provides shared checks for functional option sets.
package options

import (
	"go/token"

	"github.com/erraggy/commerce/oaserrors"
)

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources lists whether each source is set. The returned error is a
// *oaserrors.ConfigError for option carrying noSourceMsg or multiSourceMsg.
func ValidateSingleInputSource(option, noSourceMsg, multiSourceMsg string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	if sourceCount == 0 {
		return &oaserrors.ConfigError{Option: option, Message: noSourceMsg}
	}
	if sourceCount > 1 {
		return &oaserrors.ConfigError{Option: option, Message: multiSourceMsg}
	}

	return nil
}

// ValidatePackageName rejects names that cannot be used in a package clause.
func ValidatePackageName(option, name string) error {
	if !token.IsIdentifier(name) || name == "_" {
		return &oaserrors.ConfigError{Option: option, Value: name, Message: "not a valid Go package name"}
	}
	return nil
}
