package sdkgen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/commerce/internal/naming"
	"github.com/erraggy/commerce/internal/options"
	"github.com/erraggy/commerce/oaserrors"
	"golang.org/x/mod/modfile"
)

// Option is a function that configures a Load or Generate call.
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// Input source (exactly one must be set)
	specPath *string
	specData []byte

	outputDir   string
	packageName string
	modulePath  string
	include     []string
	initialisms []string
	strictMode  bool
	logger      Logger

	// config is the configuration file contents, when one was applied.
	config *Config
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		packageName: "models",
		logger:      NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource("spec",
		"must specify an input source (use WithSpecPath, WithSpecData or WithConfigFile)",
		"must specify exactly one input source",
		cfg.specPath != nil, cfg.specData != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// source names the API description in errors and logs.
func (c *generateConfig) source() string {
	if c.specPath != nil {
		return *c.specPath
	}
	return "<data>"
}

// namer returns a Namer that knows the configured initialisms.
func (c *generateConfig) namer() *naming.Namer {
	return naming.NewNamer(c.initialisms...)
}

// resolveModule fills modulePath from the nearest go.mod above outputDir
// when it was not configured.
func (c *generateConfig) resolveModule() error {
	if c.modulePath != "" {
		return nil
	}
	start := c.outputDir
	if start == "" {
		start = "."
	}
	mod, err := findModulePath(start)
	if err != nil {
		return &oaserrors.ConfigError{Option: "module", Message: "cannot derive module path, set it explicitly", Cause: err}
	}
	c.modulePath = mod
	return nil
}

// findModulePath walks up from dir and returns the module path declared by
// the first go.mod it finds.
func findModulePath(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		data, err := os.ReadFile(filepath.Join(dir, "go.mod")) //nolint:gosec // fixed file name
		if err == nil {
			if mod := modfile.ModulePath(data); mod != "" {
				return mod, nil
			}
			return "", fmt.Errorf("%s has no module directive", filepath.Join(dir, "go.mod"))
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("no go.mod found")
		}
		dir = parent
	}
}

// WithConfig applies every setting of cfg. Options given after it override
// the matching setting.
func WithConfig(cfg *Config) Option {
	return func(c *generateConfig) error {
		if cfg == nil {
			return &oaserrors.ConfigError{Option: "config", Message: "nil configuration"}
		}
		if err := cfg.validate(); err != nil {
			return err
		}
		spec := cfg.Spec
		c.specPath = &spec
		c.outputDir = cfg.Output
		if cfg.Package != "" {
			c.packageName = cfg.Package
		}
		c.modulePath = cfg.Module
		c.include = append([]string(nil), cfg.Include...)
		c.initialisms = append([]string(nil), cfg.Initialisms...)
		c.config = cfg
		return nil
	}
}

// WithConfigFile loads a YAML configuration file and applies it like
// WithConfig.
func WithConfigFile(path string) Option {
	return func(c *generateConfig) error {
		cfg, err := LoadConfig(path)
		if err != nil {
			return err
		}
		return WithConfig(cfg)(c)
	}
}

// WithSpecPath specifies the API description file as the input source
func WithSpecPath(path string) Option {
	return func(c *generateConfig) error {
		c.specPath = &path
		return nil
	}
}

// WithSpecData specifies an in-memory API description as the input source
func WithSpecData(data []byte) Option {
	return func(c *generateConfig) error {
		if data == nil {
			data = []byte{}
		}
		c.specData = data
		return nil
	}
}

// WithOutputDir sets the directory Result.Write and Result.Diff default to
// and the starting point of the go.mod lookup.
func WithOutputDir(dir string) Option {
	return func(c *generateConfig) error {
		c.outputDir = dir
		return nil
	}
}

// WithPackageName specifies the Go package name for generated code
// Default: "models"
func WithPackageName(name string) Option {
	return func(c *generateConfig) error {
		if err := options.ValidatePackageName("package", name); err != nil {
			return err
		}
		c.packageName = name
		return nil
	}
}

// WithModulePath sets the import path of the module that provides the
// nullable and internal/clone packages used by generated code.
// Default: the module of the nearest go.mod above the output directory
func WithModulePath(path string) Option {
	return func(c *generateConfig) error {
		c.modulePath = path
		return nil
	}
}

// WithInclude restricts generation to the named schemas and everything
// they reference.
func WithInclude(schemas ...string) Option {
	return func(c *generateConfig) error {
		c.include = append(c.include, schemas...)
		return nil
	}
}

// WithInitialisms adds words rendered upper-case in Go names.
func WithInitialisms(words ...string) Option {
	return func(c *generateConfig) error {
		c.initialisms = append(c.initialisms, words...)
		return nil
	}
}

// WithStrictMode makes warning issues fail the operation.
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(c *generateConfig) error {
		c.strictMode = enabled
		return nil
	}
}

// WithLogger sets the logger for generator events.
// Default: NopLogger
func WithLogger(l Logger) Option {
	return func(c *generateConfig) error {
		if l == nil {
			l = NopLogger{}
		}
		c.logger = l
		return nil
	}
}
