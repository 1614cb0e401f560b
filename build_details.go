package commerce

import (
	"fmt"
	"runtime"
)

var (
	// version, commit and buildTime are set via ldflags for release builds.
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// Commit returns the short git hash the SDK was built from, or "unknown".
func Commit() string {
	return commit
}

// BuildTime returns the RFC3339 build timestamp, or "unknown".
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go runtime version.
func GoVersion() string {
	return runtime.Version()
}

// UserAgent returns the User-Agent string clients send with API requests.
func UserAgent() string {
	return fmt.Sprintf("commerce-go/%s", version)
}

// BuildInfo returns the build metadata on one line per field.
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s",
		version, commit, buildTime, runtime.Version())
}
