package serenuminternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"io"
	"maps"
	"path/filepath"
	"slices"
	"sort"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"

	"github.com/Embers-of-the-Fire/serenum/internal/codefmt"
	"github.com/Embers-of-the-Fire/serenum/internal/serenum/gen"
	"github.com/Embers-of-the-Fire/serenum/internal/serenum/parse"
)

// Serenum generates string enum code for the target package. Call [Build] and
// then [Generate] to get the generated code. All potential errors are returned
// by [Build]. Once [Build] succeeds, [Generate] never fails.
type Serenum struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer

	enums map[token.Pos]*gen.Enum
}

// New creates a new [Serenum] for the given package. The package must have its
// Syntax, Types and TypesInfo. And it must not have any errors.
func New(pkg *packages.Package) (*Serenum, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &Serenum{
		p:   parser,
		ns:  codefmt.NewNS(pkg.Types.Scope()),
		buf: &buf,
		w:   codefmt.NewWriter(&buf, pkg),
	}, nil
}

// Build parses the directives and builds the enums. All potential errors are
// returned by this method. It must be called before [Generate].
func (se *Serenum) Build() error {
	mods, errs := se.p.ParseModules()

	errs = errors.Join(errs, se.p.Validate(mods))

	dirs, err := se.p.ParseDirectives(mods)
	errs = errors.Join(errs, err)

	if errs != nil {
		return errs
	}
	if len(dirs) == 0 {
		return nil
	}

	se.enums = make(map[token.Pos]*gen.Enum)
	for _, dir := range dirs {
		e, err := gen.Build(dir, se.ns)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		se.enums[dir.Pos()] = e
	}

	return errs
}

// Generate generates the code for the package. It must be called after
// [Build] succeeds. It returns nil if the package has no file tagged with
// "//go:build serenum".
func (se *Serenum) Generate() []byte {
	if len(se.p.SerenumGoFiles()) == 0 {
		return nil
	}
	se.writeEnumCode()
	se.mergeCode()
	return se.frameCode()
}

// writeEnumCode writes the declarations of the enums in the order of their
// directives.
func (se *Serenum) writeEnumCode() {
	enums := slices.Collect(maps.Values(se.enums))
	slices.SortFunc(enums, func(a, b *gen.Enum) int {
		return int(a.Pos() - b.Pos())
	})

	for _, e := range enums {
		se.w.Printf("// serenum: %s\n\n", e.Parse)

		local := maps.Clone(se.ns)
		w := se.w.WithNS(local)
		e.WriteDefineCode(w)
	}
}

// mergeCode copies non-serenum code from the source files tagged with
// "//go:build serenum". It erases serenum directives to remove any references
// to the serenum package.
func (se *Serenum) mergeCode() {
	files := se.p.SerenumGoFiles()
	sort.SliceStable(files, func(i, j int) bool {
		return se.fileName(files[i]) < se.fileName(files[j])
	})

	for _, file := range files {
		first := true

		for _, decl := range file.Decls {
			if gd, ok := decl.(*ast.GenDecl); ok && gd.Tok == token.IMPORT {
				// Required imports are collected from their usage.
				continue
			}

			decl = se.eraseModules(decl)
			decl = se.eraseDirectives(decl)

			if gd, ok := decl.(*ast.GenDecl); ok && len(gd.Specs) == 0 {
				continue
			}

			if first {
				fmt.Fprintf(se.buf, "// %s:\n\n", se.fileName(file))
				first = false
			}

			// Prevent import name conflicts when merging multiple files into one
			decl = codefmt.RewriteImports(se.w, decl)

			printer.Fprint(se.buf, se.p.Pkg().Fset, &printer.CommentedNode{
				Node:     decl,
				Comments: file.Comments,
			})
			fmt.Fprintf(se.buf, "\n\n")
		}
	}
}

func (se *Serenum) fileName(file *ast.File) string {
	return filepath.Base(se.p.Pkg().Fset.File(file.Pos()).Name())
}

// eraseModules replaces serenum.Module calls with empty structs.
func (se *Serenum) eraseModules(decl ast.Decl) ast.Decl {
	return astutil.Apply(decl, func(c *astutil.Cursor) bool {
		call, ok := c.Node().(*ast.CallExpr)
		if !ok || !se.p.IsDirective(call, "Module") {
			return true
		}
		// printer.Fprint does not validate the name of an Ident node, so the
		// comment is written as a part of the name.
		c.Replace(&ast.Ident{Name: "struct{}{} // serenum module erased"})
		return false
	}, nil).(ast.Decl)
}

// eraseDirectives removes the variables holding enum directives. Their names
// are taken by the generated parse functions.
func (se *Serenum) eraseDirectives(decl ast.Decl) ast.Decl {
	return astutil.Apply(decl, func(c *astutil.Cursor) bool {
		spec, ok := c.Node().(*ast.ValueSpec)
		if !ok {
			return true
		}

		var names []*ast.Ident
		var values []ast.Expr
		for i := range spec.Names {
			if i >= len(spec.Values) {
				// Constants may omit values
				names = append(names, spec.Names[i])
				continue
			}

			if _, ok := se.enums[ast.Unparen(spec.Values[i]).Pos()]; !ok {
				names = append(names, spec.Names[i])
				values = append(values, spec.Values[i])
			}
		}

		switch {
		case len(names) == len(spec.Names):
			// Nothing to erase
		case len(names) == 0:
			// Input:  var ( ParseOrder = serenum.Enum[Order](nil) )
			// Output: var ()
			c.Delete()
		default:
			// Input:  var ( ParseOrder, n = serenum.Enum[Order](nil), 42 )
			// Output: var ( n = 42 )
			c.Replace(&ast.ValueSpec{
				Doc:     spec.Doc,
				Names:   names,
				Type:    spec.Type,
				Values:  values,
				Comment: spec.Comment,
			})
		}
		return false
	}, nil).(ast.Decl)
}

func (se *Serenum) frameCode() []byte {
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !serenum\n\n")
	fmt.Fprintf(&buf, "// Code generated by %s%s. DO NOT EDIT.\n\n", parse.ImportPath, versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", se.p.Pkg().Name)

	imports := se.w.Imports()
	if len(imports) != 0 {
		names := slices.Sorted(maps.Keys(imports))
		fmt.Fprintf(&buf, "import (\n")
		for _, name := range names {
			imp := imports[name]
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", name, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, se.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
