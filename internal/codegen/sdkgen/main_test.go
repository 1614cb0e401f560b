package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petSpec = `openapi: 3.0.3
info:
  title: Pet API
  version: "1.0"
paths: {}
components:
  schemas:
    Pet:
      type: object
      required: [name]
      properties:
        name:
          type: string
        nickname:
          type: string
          nullable: true
    Blob:
      type: object
      properties:
        shape:
          type: object
          properties:
            side:
              type: number
`

func setup(t *testing.T) (config, out string) {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"go.mod":          "module example.com/pets\n\ngo 1.24\n",
		"api/pets.yaml":   petSpec,
		"api/sdkgen.yaml": "spec: pets.yaml\noutput: ../pets\npackage: pets\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return filepath.Join(dir, "api", "sdkgen.yaml"), filepath.Join(dir, "pets")
}

func TestRun_WriteThenCheck(t *testing.T) {
	config, out := setup(t)
	ctx := context.Background()

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run(ctx, []string{"-config", config}, &stdout, &stderr), stderr.String())
	assert.Contains(t, stdout.String(), "wrote 5 files")
	assert.Contains(t, stderr.String(), "components.schemas.Blob.properties.shape", "warnings are printed")
	assert.FileExists(t, filepath.Join(out, "pet_builder.go"))

	stdout.Reset()
	stderr.Reset()
	require.Equal(t, 0, run(ctx, []string{"-config", config, "-check"}, &stdout, &stderr), stderr.String())
	assert.Contains(t, stdout.String(), "is up to date")

	require.NoError(t, os.WriteFile(filepath.Join(out, "pet.go"), []byte("package pets\n"), 0o644))
	stderr.Reset()
	assert.Equal(t, 1, run(ctx, []string{"-config", config, "-check"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "is stale (pet.go)")
}

func TestRun_Strict(t *testing.T) {
	config, out := setup(t)

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run(context.Background(), []string{"-config", config, "-strict"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "generating from")
	assert.NoDirExists(t, out)
}

func TestRun_BadInvocation(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(context.Background(), []string{"-nope"}, &stdout, &stderr))
	assert.Equal(t, 1, run(context.Background(), []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "missing.yaml")
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run(context.Background(), []string{"-version"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "Go Version: ")
}
