package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"iter"

	"github.com/Embers-of-the-Fire/serenum/internal/codefmt"
)

// Module holds default options shared by the enums declared with it.
type Module struct {
	// Name is the variable name of the module. It is empty for nil and inline
	// modules.
	Name string

	Config Config
}

// ParseModules finds and parses package-level serenum.Module calls. The
// modules are keyed by the position of their variables.
func (p *Parser) ParseModules() (map[token.Pos]*Module, error) {
	var errs error
	mods := make(map[token.Pos]*Module)

	for _, file := range p.SerenumGoFiles() {
		for id, call := range p.FindModules(file) {
			name := id.Name
			if name == "_" {
				name = ""
			}

			mod, err := p.ParseModule(call, name)
			mods[id.Pos()] = mod
			errs = errors.Join(errs, err)
		}
	}

	return mods, errs
}

// FindModules iterates package-level serenum.Module calls with the
// identifiers they are assigned to.
func (p *Parser) FindModules(file *ast.File) iter.Seq2[*ast.Ident, *ast.CallExpr] {
	return func(yield func(*ast.Ident, *ast.CallExpr) bool) {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.VAR {
				continue
			}

			for _, spec := range gen.Specs {
				val := spec.(*ast.ValueSpec)
				for i, id := range val.Names {
					if len(val.Values) <= i {
						break
					}

					call, ok := ast.Unparen(val.Values[i]).(*ast.CallExpr)
					if !ok || !p.IsDirective(call, "Module") {
						continue
					}

					if !yield(id, call) {
						return
					}
				}
			}
		}
	}
}

// ParseModule parses a serenum.Module call.
func (p *Parser) ParseModule(call *ast.CallExpr, name string) (*Module, error) {
	var cfg Config
	err := p.ParseConfig(&cfg, call.Args, nil)
	return &Module{Name: name, Config: cfg}, err
}

// ParseModuleArg parses the module argument of an enum directive.
func (p *Parser) ParseModuleArg(expr ast.Expr, mods map[token.Pos]*Module) (*Module, error) {
	expr = ast.Unparen(expr)

	// Inline module:
	//
	//	var ParseOrder = serenum.Enum[Order](serenum.Module(...))
	if call, ok := expr.(*ast.CallExpr); ok && p.IsDirective(call, "Module") {
		return p.ParseModule(call, "")
	}

	id, ok := expr.(*ast.Ident)
	if !ok {
		return nil, codefmt.Errorf(p, expr, "module must be serenum.Module() or package-level variable")
	}

	// Nil module has no options:
	//
	//	var ParseOrder = serenum.Enum[Order](nil)
	if _, ok := p.Pkg().TypesInfo.ObjectOf(id).(*types.Nil); ok {
		return NilModule(), nil
	}

	// Package-level module shared by enums:
	//
	//	var (
	//		mod          = serenum.Module(...)
	//		ParseOrder   = serenum.Enum[Order](mod)
	//		ParseChannel = serenum.Enum[Channel](mod)
	//	)
	obj := p.Pkg().TypesInfo.ObjectOf(id)
	if obj == nil {
		return nil, codefmt.Errorf(p, expr, "cannot resolve module %q", id.Name)
	}
	mod, ok := mods[obj.Pos()]
	if !ok {
		return nil, codefmt.Errorf(p, expr, "cannot find %q module declared by serenum.Module", id.Name)
	}
	return mod, nil
}

// NilModule returns a new module with no options.
func NilModule() *Module {
	return &Module{}
}
