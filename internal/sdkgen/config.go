package sdkgen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/commerce/internal/options"
	"github.com/erraggy/commerce/oaserrors"
	"go.yaml.in/yaml/v4"
)

// Config is the on-disk generator configuration, usually api/sdkgen.yaml.
type Config struct {
	// Spec is the path of the OpenAPI 3 document.
	Spec string `yaml:"spec"`
	// Output is the directory the generated package is written to.
	Output string `yaml:"output"`
	// Package is the Go package name of the generated files.
	Package string `yaml:"package"`
	// Module is the import path of the Go module that contains Output.
	// When empty it is read from the nearest go.mod.
	Module string `yaml:"module,omitempty"`
	// Include restricts generation to the named schemas and the schemas
	// they reference. Empty means every schema.
	Include []string `yaml:"include,omitempty"`
	// Initialisms are extra words rendered upper-case in Go names.
	Initialisms []string `yaml:"initialisms,omitempty"`
}

// LoadConfig reads a YAML configuration file. Relative Spec and Output
// paths are resolved against the directory of the file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "config", Value: path, Message: "cannot read file", Cause: err}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &oaserrors.ConfigError{Option: "config", Value: path, Message: "invalid YAML", Cause: err}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	cfg.Spec = resolve(dir, cfg.Spec)
	cfg.Output = resolve(dir, cfg.Output)
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Spec == "" {
		return &oaserrors.ConfigError{Option: "spec", Message: "required"}
	}
	if c.Output == "" {
		return &oaserrors.ConfigError{Option: "output", Message: "required"}
	}
	if c.Package != "" {
		return options.ValidatePackageName("package", c.Package)
	}
	return nil
}

// String summarizes the configuration for logs.
func (c *Config) String() string {
	return fmt.Sprintf("spec=%s output=%s package=%s", c.Spec, c.Output, c.Package)
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
