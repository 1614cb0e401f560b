package sdkgen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erraggy/commerce/internal/fileutil"
	"github.com/erraggy/commerce/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerate_CommittedModelsAreCurrent regenerates the models package from
// api/sdkgen.yaml and compares it with the checked-in files, ignoring
// whitespace.
func TestGenerate_CommittedModelsAreCurrent(t *testing.T) {
	result, err := Generate(context.Background(), WithConfigFile("../../api/sdkgen.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Commerce API", result.Title)
	assert.Equal(t, "models", result.Package)
	assert.Zero(t, result.ErrorCount)
	assert.Zero(t, result.CriticalCount)
	assert.Equal(t, len(result.Files), 2*result.ModelCount+result.EnumCount+1)

	dir := filepath.Join("..", "..", "models")
	for _, file := range result.Files {
		t.Run(file.Name, func(t *testing.T) {
			committed, err := os.ReadFile(filepath.Join(dir, file.Name))
			require.NoError(t, err, "run go generate ./models")
			assert.Equal(t, strings.Fields(string(committed)), strings.Fields(string(file.Content)), "run go generate ./models")
		})
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		generated, err := fileutil.HasHeader(filepath.Join(dir, e.Name()), GeneratedHeader)
		require.NoError(t, err)
		if generated {
			assert.NotNil(t, result.File(e.Name()), "%s is generated but no longer produced", e.Name())
		}
	}
}

func TestGenerate_CommittedModelsUseModulePath(t *testing.T) {
	result, err := Generate(context.Background(), WithConfigFile("../../api/sdkgen.yaml"))
	require.NoError(t, err)

	order := result.File("order.go")
	require.NotNil(t, order)
	assert.Contains(t, string(order.Content), `"github.com/erraggy/commerce/nullable"`)
}

func generateShop(t *testing.T, opts ...Option) *Result {
	t.Helper()
	base := []Option{WithSpecData([]byte(shopSpec)), WithPackageName("shop"), WithModulePath("example.com/shop")}
	result, err := Generate(context.Background(), append(base, opts...)...)
	require.NoError(t, err)
	return result
}

func TestGenerate_Counts(t *testing.T) {
	result := generateShop(t)

	assert.Equal(t, "Shop API", result.Title)
	assert.Equal(t, 3, result.ModelCount)
	assert.Equal(t, 1, result.EnumCount)
	assert.Len(t, result.Files, 8)
	assert.False(t, result.HasWarnings())
	assert.Nil(t, result.File("missing.go"))
}

func TestGenerate_WarningsAreReported(t *testing.T) {
	result, err := Generate(context.Background(),
		WithSpecData([]byte(issueSpec)),
		WithModulePath("example.com/drawing"),
	)
	require.NoError(t, err)

	assert.True(t, result.HasWarnings())
	assert.Equal(t, 4, result.WarningCount)
	assert.Equal(t, 3, result.InfoCount)
	assert.Zero(t, result.ErrorCount)
	assert.Zero(t, result.CriticalCount)
	assert.NotNil(t, result.File("drawing.go"))
}

func TestGenerate_ConflictsFail(t *testing.T) {
	result, err := Generate(context.Background(),
		WithSpecData([]byte(conflictSpec)),
		WithModulePath("example.com/widget"),
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrUnsupported))
	require.NotNil(t, result)
	assert.Equal(t, 7, result.CriticalCount)
	assert.Zero(t, result.ErrorCount)
	assert.Empty(t, result.Files)
}

func TestGenerate_Logging(t *testing.T) {
	logger := &recordingLogger{}
	_, err := Generate(context.Background(),
		WithSpecData([]byte(issueSpec)),
		WithModulePath("example.com/drawing"),
		WithLogger(logger),
	)
	require.NoError(t, err)

	assert.Equal(t, 4, logger.count("warn"))
	assert.Equal(t, 1, logger.count("info"))
	assert.Positive(t, logger.count("debug"))
}

func TestResult_WriteAndDiff(t *testing.T) {
	result := generateShop(t)
	dir := filepath.Join(t.TempDir(), "shop")

	missing, err := result.Diff(dir)
	require.NoError(t, err)
	assert.Len(t, missing, len(result.Files), "every file is missing before the first write")

	require.NoError(t, result.Write(dir))
	diff, err := result.Diff(dir)
	require.NoError(t, err)
	assert.Empty(t, diff)

	info, err := os.Stat(filepath.Join(dir, "pet.go"))
	require.NoError(t, err)
	assert.Equal(t, fileutil.ReadableByAll, info.Mode().Perm())

	// Edit one file, add a stale generated file and a hand-written one.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pet.go"), []byte("package shop\n"), fileutil.ReadableByAll))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gone.go"), []byte(GeneratedHeader+"\n\npackage shop\n"), fileutil.ReadableByAll))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extra.go"), []byte("package shop\n"), fileutil.ReadableByAll))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pet_test.go"), []byte(GeneratedHeader+"\n\npackage shop\n"), fileutil.ReadableByAll))

	diff, err = result.Diff(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"gone.go", "pet.go"}, diff)

	require.NoError(t, result.Write(dir))
	diff, err = result.Diff(dir)
	require.NoError(t, err)
	assert.Empty(t, diff)

	assert.NoFileExists(t, filepath.Join(dir, "gone.go"))
	assert.FileExists(t, filepath.Join(dir, "extra.go"), "hand-written files are kept")
	assert.FileExists(t, filepath.Join(dir, "pet_test.go"), "test files are kept")
}

func TestResult_WriteRejectsPaths(t *testing.T) {
	result := &Result{Files: []File{{Name: "../escape.go", Content: []byte("package x\n")}}}
	err := result.Write(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path separators")
}

type logEntry struct {
	level string
	msg   string
}

type recordingLogger struct {
	entries *[]logEntry
}

func (l *recordingLogger) add(level, msg string) {
	if l.entries == nil {
		l.entries = &[]logEntry{}
	}
	*l.entries = append(*l.entries, logEntry{level, msg})
}

func (l *recordingLogger) count(level string) int {
	if l.entries == nil {
		return 0
	}
	n := 0
	for _, e := range *l.entries {
		if e.level == level {
			n++
		}
	}
	return n
}

func (l *recordingLogger) messages(level string) []string {
	if l.entries == nil {
		return nil
	}
	var out []string
	for _, e := range *l.entries {
		if e.level == level {
			out = append(out, e.msg)
		}
	}
	return out
}

func (l *recordingLogger) Debug(msg string, _ ...any) { l.add("debug", msg) }
func (l *recordingLogger) Info(msg string, _ ...any)  { l.add("info", msg) }
func (l *recordingLogger) Warn(msg string, _ ...any)  { l.add("warn", msg) }
func (l *recordingLogger) Error(msg string, _ ...any) { l.add("error", msg) }

func (l *recordingLogger) With(_ ...any) Logger {
	if l.entries == nil {
		l.entries = &[]logEntry{}
	}
	return &recordingLogger{entries: l.entries}
}
