package sdkgen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/commerce/internal/fileutil"
	"github.com/erraggy/commerce/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), fileutil.DirReadableByAll))
	require.NoError(t, os.WriteFile(path, []byte(content), fileutil.ReadableByAll))
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "api", "sdkgen.yaml"), `spec: shop.yaml
output: ../shop
package: shop
module: example.com/shop
include: [Pet]
initialisms: [sku, RED]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "api", "shop.yaml"), cfg.Spec)
	assert.Equal(t, filepath.Join(dir, "shop"), cfg.Output)
	assert.Equal(t, "shop", cfg.Package)
	assert.Equal(t, "example.com/shop", cfg.Module)
	assert.Equal(t, []string{"Pet"}, cfg.Include)
	assert.Equal(t, []string{"sku", "RED"}, cfg.Initialisms)
	assert.Contains(t, cfg.String(), "package=shop")
}

func TestLoadConfig_AbsolutePathsAreKept(t *testing.T) {
	dir := t.TempDir()
	spec := filepath.Join(dir, "elsewhere", "shop.yaml")
	path := writeFile(t, filepath.Join(dir, "sdkgen.yaml"), "spec: "+spec+"\noutput: out\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, spec, cfg.Spec)
	assert.Equal(t, filepath.Join(dir, "out"), cfg.Output)
	assert.Empty(t, cfg.Package, "package defaults when generating")
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		option  string
	}{
		{"invalid yaml", "spec: [\n", "config"},
		{"missing spec", "output: out\n", "spec"},
		{"missing output", "spec: shop.yaml\n", "output"},
		{"bad package", "spec: shop.yaml\noutput: out\npackage: my-models\n", "package"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, filepath.Join(dir, tt.name+".yaml"), tt.content)
			_, err := LoadConfig(path)
			require.Error(t, err)

			var cfgErr *oaserrors.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.option, cfgErr.Option)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "nope.yaml"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrConfig))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestWithConfigFile_Generates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module example.com/shop\n\ngo 1.24\n")
	writeFile(t, filepath.Join(dir, "api", "shop.yaml"), shopSpec)
	path := writeFile(t, filepath.Join(dir, "api", "sdkgen.yaml"), "spec: shop.yaml\noutput: ../shop\npackage: shop\ninclude: [Owner]\n")

	logger := &recordingLogger{}
	result, err := Generate(context.Background(), WithConfigFile(path), WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, logger.messages("debug"), "using configuration")

	assert.Equal(t, filepath.Join(dir, "shop"), result.OutputDir)
	assert.Equal(t, 2, result.ModelCount, "Unused is not reachable from Owner")

	pet := result.File("pet.go")
	require.NotNil(t, pet)
	assert.Contains(t, string(pet.Content), `"example.com/shop/nullable"`, "module path comes from go.mod")

	require.NoError(t, result.Write(result.OutputDir))
	assert.FileExists(t, filepath.Join(dir, "shop", "owner_builder.go"))
}
