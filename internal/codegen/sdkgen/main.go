// Command sdkgen generates the models package from the commerce API
// description.
//
// Usage:
//
//	go run ./internal/codegen/sdkgen -config api/sdkgen.yaml
//	go run ./internal/codegen/sdkgen -config api/sdkgen.yaml -check
//
// The models package runs it through go generate:
//
//	//go:generate go run ../internal/codegen/sdkgen -config ../api/sdkgen.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/erraggy/commerce"
	"github.com/erraggy/commerce/internal/cliutil"
	"github.com/erraggy/commerce/internal/sdkgen"
	"github.com/erraggy/commerce/internal/severity"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sdkgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "api/sdkgen.yaml", "Path to the generator configuration file")
	check := fs.Bool("check", false, "Compare generated output with existing files and exit non-zero if stale")
	strict := fs.Bool("strict", false, "Fail on warnings as well as errors")
	verbose := fs.Bool("v", false, "Log every converted schema")
	showVersion := fs.Bool("version", false, "Print build information and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *showVersion {
		cliutil.Writef(stdout, "sdkgen\n%s\n", commerce.BuildInfo())
		return 0
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})

	result, err := sdkgen.Generate(ctx,
		sdkgen.WithConfigFile(*configPath),
		sdkgen.WithStrictMode(*strict),
		sdkgen.WithLogger(sdkgen.NewSlogAdapter(slog.New(handler))),
	)
	if result != nil {
		cliutil.WriteIssues(stderr, result.Issues, severity.SeverityWarning)
	}
	if err != nil {
		return fail(stderr, "generating from %s: %v", *configPath, err)
	}

	if *check {
		stale, err := result.Diff(result.OutputDir)
		if err != nil {
			return fail(stderr, "checking %s: %v", result.OutputDir, err)
		}
		if len(stale) > 0 {
			return fail(stderr, "%s is stale (%s); run 'go generate ./models' to regenerate",
				result.OutputDir, strings.Join(stale, ", "))
		}
		cliutil.Writef(stdout, "%s is up to date\n", result.OutputDir)
		return 0
	}

	if err := result.Write(result.OutputDir); err != nil {
		return fail(stderr, "writing %s: %v", result.OutputDir, err)
	}
	cliutil.Writef(stdout, "wrote %d files to %s (%d models, %d enums)\n",
		len(result.Files), result.OutputDir, result.ModelCount, result.EnumCount)
	return 0
}

func fail(w io.Writer, format string, args ...any) int {
	_, _ = fmt.Fprintf(w, format+"\n", args...)
	return 1
}
