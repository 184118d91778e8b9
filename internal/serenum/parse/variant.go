package parse

import (
	"go/ast"
	"go/token"
	"go/types"
	"slices"

	"github.com/Embers-of-the-Fire/serenum/internal/codefmt"
	"github.com/Embers-of-the-Fire/serenum/internal/typeinfo"
)

// ParseVariant parses an expression referring to a constant of the enum type.
// The constant may be qualified by its package name.
func (p *Parser) ParseVariant(expr ast.Expr, enum typeinfo.Type) (*types.Const, error) {
	expr = ast.Unparen(expr)

	if sel, ok := expr.(*ast.SelectorExpr); ok {
		id, ok := sel.X.(*ast.Ident)
		if !ok {
			return nil, codefmt.Errorf(p, expr, "variant must be package-level constant; got %c", expr)
		}
		if _, ok := p.Pkg().TypesInfo.ObjectOf(id).(*types.PkgName); !ok {
			return nil, codefmt.Errorf(p, expr, "variant must be package-level constant; got %c", expr)
		}
		expr = sel.Sel
	}

	id, ok := expr.(*ast.Ident)
	if !ok {
		return nil, codefmt.Errorf(p, expr, "variant must be package-level constant; got %c", expr)
	}

	obj := p.Pkg().TypesInfo.ObjectOf(id)
	if obj == nil {
		return nil, codefmt.Errorf(p, expr, "cannot resolve %c", expr)
	}

	con, ok := obj.(*types.Const)
	if !ok || con.Parent() != con.Pkg().Scope() {
		return nil, codefmt.Errorf(p, expr, "variant must be package-level constant; got %c", expr)
	}

	if !types.Identical(con.Type(), enum.Type()) {
		return nil, codefmt.Errorf(p, expr, "%c is not variant of %t; belongs to %t", expr, enum, con.Type())
	}

	return con, nil
}

// DiscoverVariants returns the package-level constants of the enum type in
// declaration order. Unexported constants are included when unexported is
// true or when they appear in refs.
func (p *Parser) DiscoverVariants(enum typeinfo.Type, unexported bool, refs []*types.Const) []*types.Const {
	scope := enum.Pkg().Scope()

	var vs []*types.Const
	for _, name := range scope.Names() {
		con, ok := scope.Lookup(name).(*types.Const)
		if !ok || !types.Identical(con.Type(), enum.Type()) {
			continue
		}
		if !con.Exported() && !unexported && !slices.Contains(refs, con) {
			continue
		}
		vs = append(vs, con)
	}

	slices.SortFunc(vs, func(a, b *types.Const) int {
		return comparePos(p.Pkg().Fset, a.Pos(), b.Pos())
	})
	return vs
}

// comparePos orders positions by file name and then by offset. Positions of
// different files are not ordered by token.Pos because the file set order
// depends on loading.
func comparePos(fset *token.FileSet, a, b token.Pos) int {
	pa, pb := fset.Position(a), fset.Position(b)
	if pa.Filename != pb.Filename {
		if pa.Filename < pb.Filename {
			return -1
		}
		return 1
	}
	return pa.Offset - pb.Offset
}
