package sdkgen

import (
	"context"
	"runtime"
	"slices"
	"strings"

	"github.com/erraggy/commerce/internal/naming"
	"github.com/erraggy/commerce/oaserrors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// GeneratedHeader is the first line of every generated file.
const GeneratedHeader = "// Code generated by internal/codegen/sdkgen; DO NOT EDIT."

// DeepCopyFile is the name of the file holding every DeepCopy method.
const DeepCopyFile = "zz_generated_deepcopy.go"

// importSet is the import block of one file, grouped the way goimports
// groups it.
type importSet struct {
	Std   []string
	Third []string
}

func newImportSet(std, third []string) *importSet {
	if len(std) == 0 && len(third) == 0 {
		return nil
	}
	slices.Sort(std)
	slices.Sort(third)
	return &importSet{Std: std, Third: third}
}

type fileView struct {
	Package string
	Imports *importSet
}

type modelView struct {
	fileView
	*Model
}

type enumView struct {
	fileView
	*Enum
}

type deepcopyView struct {
	fileView
	Models []*Model
}

// job renders one file.
type job struct {
	name     string
	template string
	data     any
}

// Render renders spec into Go source files for package pkg. modulePath is
// the import path of the module that provides the nullable and
// internal/clone packages. Files are rendered concurrently and returned
// sorted by name.
func Render(ctx context.Context, spec *Spec, pkg, modulePath string) ([]File, error) {
	jobs := planJobs(spec, pkg, modulePath)
	files := make([]File, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := executeTemplate(j.template, j.data)
			if err != nil {
				return &oaserrors.RenderError{File: j.name, Template: j.template, Cause: err}
			}
			formatted, err := imports.Process(j.name, src, nil)
			if err != nil {
				return &oaserrors.RenderError{File: j.name, Template: j.template, Cause: err}
			}
			files[i] = File{Name: j.name, Content: formatted}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	slices.SortFunc(files, func(a, b File) int { return strings.Compare(a.Name, b.Name) })
	return files, nil
}

func planJobs(spec *Spec, pkg, modulePath string) []job {
	nullableImport := modulePath + "/nullable"
	cloneImport := modulePath + "/internal/clone"

	var jobs []job
	for _, m := range spec.Models {
		var std, third []string
		if slices.ContainsFunc(m.Fields, func(f *Field) bool { return f.Type.UsesTime() }) {
			std = append(std, "time")
		}
		if m.HasNullable() {
			third = append(third, nullableImport)
		}
		jobs = append(jobs, job{
			name:     naming.FileName(m.Name, ""),
			template: modelTemplate,
			data:     modelView{fileView{pkg, newImportSet(std, third)}, m},
		})

		// Builder files never mention nullable: nullable setters take the
		// value type.
		var builderStd []string
		if len(std) > 0 {
			builderStd = []string{"time"}
		}
		jobs = append(jobs, job{
			name:     naming.FileName(m.Name, "_builder"),
			template: builderTemplate,
			data:     modelView{fileView{pkg, newImportSet(builderStd, nil)}, m},
		})
	}

	for _, e := range spec.Enums {
		jobs = append(jobs, job{
			name:     naming.FileName(e.Name, ""),
			template: enumTemplate,
			data:     enumView{fileView{pkg, nil}, e},
		})
	}

	var std, third []string
	if copiesTime(spec.Models) {
		std = append(std, "time")
	}
	if usesClone(spec.Models) {
		third = append(third, cloneImport)
	}
	jobs = append(jobs, job{
		name:     DeepCopyFile,
		template: deepcopyTemplate,
		data:     deepcopyView{fileView{pkg, newImportSet(std, third)}, spec.Models},
	})
	return jobs
}

func usesClone(models []*Model) bool {
	for _, m := range models {
		for _, f := range m.Fields {
			if strings.Contains(copyStmt(f), "clone.") {
				return true
			}
		}
	}
	return false
}

// copiesTime reports whether a pointer copy allocates a time.Time.
func copiesTime(models []*Model) bool {
	for _, m := range models {
		for _, f := range m.Fields {
			if f.IsPointer() && f.Type.UsesTime() {
				return true
			}
		}
	}
	return false
}
