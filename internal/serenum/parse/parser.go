package parse

import (
	"fmt"
	"go/ast"
	"go/build/constraint"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

// ImportPath is the import path of the directive package.
const ImportPath = "github.com/Embers-of-the-Fire/serenum"

// IsSerenumImport reports whether the import path refers to the directive
// package, possibly vendored.
func IsSerenumImport(path string) bool {
	const vendorPart = "vendor/"
	if i := strings.LastIndex(path, vendorPart); i != -1 && (i == 0 || path[i-1] == '/') {
		path = path[i+len(vendorPart):]
	}
	return path == ImportPath
}

// Parser parses the AST of a package to collect enum directives.
type Parser struct{ pkg *packages.Package }

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser]. The package must be loaded with its syntax and
// type information.
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg}, nil
}

// GetDirective returns the name of the directive function if the call calls
// one.
func (p *Parser) GetDirective(call *ast.CallExpr) (string, bool) {
	callee := typeutil.Callee(p.Pkg().TypesInfo, call)
	if callee == nil {
		return "", false
	}

	pkg := callee.Pkg()
	if pkg == nil {
		// Built-in functions like panic()
		return "", false
	}

	if !IsSerenumImport(pkg.Path()) {
		return "", false
	}

	return callee.Name(), true
}

// IsDirective reports whether the call calls the directive function with the
// given name. An empty name matches any directive.
func (p *Parser) IsDirective(call *ast.CallExpr, name string) bool {
	calleeName, ok := p.GetDirective(call)
	if !ok {
		return false
	}
	return name == "" || calleeName == name
}

// isEnumDirective reports whether the call is serenum.Enum or serenum.EnumErr.
func (p *Parser) isEnumDirective(call *ast.CallExpr) bool {
	name, ok := p.GetDirective(call)
	return ok && (name == "Enum" || name == "EnumErr")
}

// SerenumGoFiles returns the Go files with the "//go:build serenum" constraint.
func (p *Parser) SerenumGoFiles() []*ast.File {
	var files []*ast.File
	for _, file := range p.Pkg().Syntax {
		if HasGoBuildSerenum(file) {
			files = append(files, file)
		}
	}
	return files
}

// HasGoBuildSerenum reports whether the file has a build constraint which
// requires the serenum tag, like "//go:build serenum".
func HasGoBuildSerenum(file *ast.File) bool {
	for _, group := range file.Comments {
		if group.Pos() > file.Package {
			break
		}
		for _, comment := range group.List {
			if !constraint.IsGoBuild(comment.Text) {
				continue
			}
			expr, err := constraint.Parse(comment.Text)
			if err != nil {
				continue
			}

			// The file needs the tag if it is excluded without the tag.
			mentioned := false
			satisfied := expr.Eval(func(tag string) bool {
				if tag == "serenum" {
					mentioned = true
					return false
				}
				return true
			})
			return mentioned && !satisfied
		}
	}
	return false
}
