package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"strconv"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/Embers-of-the-Fire/serenum/internal/codefmt"
)

// Validate checks usages of directives which are not covered by parsing. It
// collects all errors instead of stopping at the first one.
func (p *Parser) Validate(mods map[token.Pos]*Module) error {
	var errs error
	for _, file := range p.Pkg().Syntax {
		errs = errors.Join(errs, p.validateConstraint(file))
		errs = errors.Join(errs, p.validateAssignedDirectives(file))
	}
	errs = errors.Join(errs, p.validateModuleUsages(mods))
	return errs
}

// validateConstraint checks whether a file importing the directive package
// has the "//go:build serenum" constraint. Otherwise the import would remain
// in the normal build.
func (p *Parser) validateConstraint(file *ast.File) error {
	var imp *ast.ImportSpec
	for _, spec := range file.Imports {
		path, _ := strconv.Unquote(spec.Path.Value)
		if IsSerenumImport(path) {
			imp = spec
			break
		}
	}
	if imp == nil {
		return nil
	}

	if HasGoBuildSerenum(file) {
		return nil
	}

	return codefmt.Errorf(p, imp, `file must have "//go:build serenum" constraint when importing serenum`)
}

// validateAssignedDirectives rejects options assigned to variables. Only
// modules and enum directives are erased at code generation, so any other
// directive held by a variable would leave a reference to the directive
// package.
func (p *Parser) validateAssignedDirectives(file *ast.File) error {
	if !HasGoBuildSerenum(file) {
		return nil
	}

	var errs error
	ast.Inspect(file, func(node ast.Node) bool {
		switch node := node.(type) {
		case *ast.ValueSpec, *ast.AssignStmt:
			ast.Inspect(node, func(node ast.Node) bool {
				call, ok := node.(*ast.CallExpr)
				if !ok {
					return true
				}

				directive, ok := p.GetDirective(call)
				if !ok {
					return true
				}

				switch directive {
				case "Module", "Enum", "EnumErr":
					return false
				}

				err := codefmt.Errorf(p, call, "cannot assign serenum.%s to variable", directive)
				errs = errors.Join(errs, err)
				return false
			})
			return false
		}
		return true
	})
	return errs
}

// validateModuleUsages rejects references to modules other than the module
// argument of directives. Modules are erased at code generation.
func (p *Parser) validateModuleUsages(mods map[token.Pos]*Module) error {
	var errs error
	blanks := p.findBlankValues()
	for _, file := range p.Pkg().Syntax {
		astutil.Apply(file, func(c *astutil.Cursor) bool {
			if call, ok := c.Node().(*ast.CallExpr); ok {
				if p.IsDirective(call, "") {
					return false
				}
				return true
			}

			id, ok := c.Node().(*ast.Ident)
			if !ok {
				return true
			}

			if _, ok := blanks[id.Pos()]; ok {
				return false
			}

			obj := p.pkg.TypesInfo.ObjectOf(id)
			if obj == nil {
				return false
			}

			mod, ok := mods[obj.Pos()]
			if !ok {
				return false
			}

			if id.IsExported() {
				err := codefmt.Errorf(p, id, "cannot export module %q; removed at code generation", mod.Name)
				errs = errors.Join(errs, err)
				return false
			}

			if id.Pos() == obj.Pos() {
				// Declaration of the module
				return false
			}

			err := codefmt.Errorf(p, id, "cannot use module %q outside serenum directives; removed at code generation", mod.Name)
			errs = errors.Join(errs, err)
			return false
		}, nil)
	}
	return errs
}

// findBlankValues finds the positions of expressions assigned to the blank
// identifier.
func (p *Parser) findBlankValues() map[token.Pos]struct{} {
	blanks := make(map[token.Pos]struct{})
	for _, file := range p.Pkg().Syntax {
		ast.Inspect(file, func(node ast.Node) bool {
			switch node := node.(type) {
			case *ast.ValueSpec:
				if len(node.Names) == len(node.Values) {
					// var a, b = c, d
					for i, name := range node.Names {
						if name.Name == "_" {
							blanks[node.Values[i].Pos()] = struct{}{}
						}
					}
				} else if len(node.Values) == 1 {
					// var a, b = f()
					for _, name := range node.Names {
						if name.Name == "_" {
							blanks[node.Values[0].Pos()] = struct{}{}
						}
					}
				}
			case *ast.AssignStmt:
				if len(node.Lhs) == len(node.Rhs) {
					// a, b := c, d
					for i, lh := range node.Lhs {
						if id, ok := lh.(*ast.Ident); ok && id.Name == "_" {
							blanks[node.Rhs[i].Pos()] = struct{}{}
						}
					}
				} else if len(node.Rhs) == 1 {
					// a, b := f()
					for _, lh := range node.Lhs {
						if id, ok := lh.(*ast.Ident); ok && id.Name == "_" {
							blanks[node.Rhs[0].Pos()] = struct{}{}
						}
					}
				}
			}
			return true
		})
	}
	return blanks
}
