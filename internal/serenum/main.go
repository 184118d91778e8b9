package serenuminternal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/Embers-of-the-Fire/serenum/internal/codefmt"
	"github.com/Embers-of-the-Fire/serenum/internal/serenum/parse"
)

var Version string

// Main is the main entry point for Serenum. It is used by the command-line tool
// directly.
//
// ctx is the context for loading packages. wd is the path of the working
// directory. env is the environment variables to use when running the tool.
// tags is the extra build tags to use when loading packages. tests indicates
// whether to include test files. outFile is the name of the output file to
// generate in each package. And patterns are the package patterns to process.
//
// It returns a map of output file paths to their contents. If any error occurs,
// it returns a non-nil error.
func Main(ctx context.Context, wd string, env []string, tags string, tests bool, outFile string, patterns []string) (map[string][]byte, error) {
	pkgs, err := load(ctx, wd, env, tags, tests, patterns)
	if err != nil {
		return nil, err
	}

	outs := make(map[string][]byte)
	var errs error

	for _, pkg := range pkgs {
		if len(pkg.Errors) != 0 {
			err := fmt.Errorf("pkg %q has errors", pkg.Name)
			errs = errors.Join(errs, err)
			continue
		}

		se, err := New(pkg)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		if err := se.Build(); err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		code := se.Generate()
		if len(code) == 0 {
			continue
		}

		outDir := filepath.Dir(pkg.GoFiles[0])
		if rel, err := filepath.Rel(wd, outDir); err == nil {
			outDir = rel
		}
		out := filepath.Join(outDir, outFile)
		outs[out] = code
	}
	if errs != nil {
		return nil, reorderErrors(errs)
	}

	return outs, nil
}

// load loads packages with the serenum build tag. Type errors in files without
// the tag are dropped because they usually refer to declarations which are
// not generated yet, such as the String method of an enum.
func load(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:       packages.NeedDeps | packages.NeedFiles | packages.NeedImports | packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Context:    ctx,
		Dir:        wd,
		Env:        env,
		BuildFlags: []string{"-tags=serenum"},
		Tests:      tests,
	}
	if tags != "" {
		cfg.BuildFlags[0] += "," + tags
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	var errs error
	for _, pkg := range pkgs {
		tagged := serenumFileNames(pkg)

		var kept []packages.Error
		for _, err := range pkg.Errors {
			path, rowcol, _ := strings.Cut(err.Pos, ":")
			if err.Kind == packages.TypeError && !tagged[path] {
				continue
			}
			kept = append(kept, err)

			if err.Pos == "" {
				errs = errors.Join(errs, errors.New(err.Msg))
				continue
			}
			if rel, relErr := filepath.Rel(wd, path); relErr == nil {
				err.Pos = rel + ":" + rowcol
			}
			errs = errors.Join(errs, err)
		}
		pkg.Errors = kept
	}
	if errs != nil {
		return nil, errs
	}

	return pkgs, nil
}

// serenumFileNames returns the set of file names in the package which have the
// "//go:build serenum" constraint.
func serenumFileNames(pkg *packages.Package) map[string]bool {
	names := make(map[string]bool)
	for _, file := range pkg.Syntax {
		if parse.HasGoBuildSerenum(file) {
			names[pkg.Fset.File(file.Pos()).Name()] = true
		}
	}
	return names
}

func reorderErrors(errs error) error {
	if errs == nil {
		return nil
	}

	list := codefmt.Flatten(errs)

	// Sort errors by message
	sort.Slice(list, func(i, j int) bool {
		return list[i].Error() < list[j].Error()
	})
	return errors.Join(list...)
}
