package commerce

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	result := Version()
	assert.NotEmpty(t, result)
	assert.True(t, result == "dev" || strings.HasPrefix(result, "v"),
		"Version() should be 'dev' or start with 'v', got: %s", result)
}

func TestCommitAndBuildTime(t *testing.T) {
	assert.NotEmpty(t, Commit())
	if bt := BuildTime(); bt != "unknown" {
		assert.Contains(t, bt, "T", "BuildTime() should be RFC3339")
	}
	assert.Equal(t, runtime.Version(), GoVersion())
}

func TestUserAgent(t *testing.T) {
	ua := UserAgent()
	assert.Equal(t, "commerce-go/"+Version(), ua)

	// Header values must not carry whitespace or control characters.
	for _, bad := range []string{" ", "\t", "\r", "\n", "\x00"} {
		assert.NotContains(t, ua, bad)
	}
}

func TestBuildInfo(t *testing.T) {
	info := BuildInfo()
	for _, want := range []string{
		"Version: " + Version(),
		"Commit: " + Commit(),
		"Build Time: " + BuildTime(),
		"Go Version: " + GoVersion(),
	} {
		assert.Contains(t, info, want)
	}
	assert.Len(t, strings.Split(info, "\n"), 4)
}
