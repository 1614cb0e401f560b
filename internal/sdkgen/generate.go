package sdkgen

import (
	"context"

	"github.com/erraggy/commerce/internal/issues"
)

// Generate loads the configured API description and renders the models
// package. Nothing is written; use Result.Write or Result.Diff.
//
// Warning issues are logged and returned in Result.Issues. Error and
// critical issues, and warnings in strict mode, fail with an
// *oaserrors.UnsupportedError; the partial Result is still returned so
// callers can report the issues.
func Generate(ctx context.Context, opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	log := cfg.logger.With("source", cfg.source())
	if cfg.config != nil {
		log.Debug("using configuration", "config", cfg.config.String())
	}

	spec, err := load(ctx, cfg)
	if err != nil {
		return nil, err
	}
	list := issues.List(spec.Issues)
	result := &Result{
		Title:         spec.Title,
		Version:       spec.Version,
		Package:       cfg.packageName,
		OutputDir:     cfg.outputDir,
		Issues:        spec.Issues,
		ModelCount:    len(spec.Models),
		EnumCount:     len(spec.Enums),
		InfoCount:     list.Count(SeverityInfo),
		WarningCount:  list.Count(SeverityWarning),
		ErrorCount:    list.Count(SeverityError),
		CriticalCount: list.Count(SeverityCritical),
	}
	for _, issue := range list {
		switch issue.Severity {
		case SeverityInfo:
			log.Debug(issue.Message, "path", issue.Path)
		case SeverityWarning:
			log.Warn(issue.Message, "path", issue.Path)
		default:
			log.Error(issue.Message, "path", issue.Path, "severity", issue.Severity)
		}
	}
	if err := checkIssues(spec.Issues, cfg.strictMode); err != nil {
		return result, err
	}

	if err := cfg.resolveModule(); err != nil {
		return nil, err
	}
	files, err := Render(ctx, spec, cfg.packageName, cfg.modulePath)
	if err != nil {
		return nil, err
	}
	result.Files = files
	log.Info("rendered package", "package", cfg.packageName, "module", cfg.modulePath,
		"models", result.ModelCount, "enums", result.EnumCount, "files", len(files))
	return result, nil
}
