package parse

import (
	"errors"
	"go/ast"
	"go/constant"
	"go/token"
	"strconv"

	"github.com/Embers-of-the-Fire/serenum/internal/codefmt"
)

type arg interface {
	bool | string
}

func parseArgExpr[T arg](p *Parser, expr ast.Expr) (T, error) {
	var v T
	switch any(v).(type) {
	case bool:
		tv := p.Pkg().TypesInfo.Types[expr]
		if tv.Value == nil || tv.Value.Kind() != constant.Bool {
			return v, codefmt.Errorf(p, expr, "%c is not bool literal", expr)
		}
		v = any(constant.BoolVal(tv.Value)).(T)

	case string:
		lit, ok := ast.Unparen(expr).(*ast.BasicLit)
		if !ok || lit.Kind != token.STRING {
			return v, codefmt.Errorf(p, expr, "%c is not string literal", expr)
		}
		x, _ := strconv.Unquote(lit.Value)
		v = any(x).(T)

	default:
		panic("unreachable")
	}
	return v, nil
}

func parseArgs1[T arg](p *Parser, call *ast.CallExpr) (T, error) {
	var v T
	expr, err := needArgs1(p, call)
	if err != nil {
		return v, err
	}
	return parseArgExpr[T](p, expr)
}

func parseArgs2[T1, T2 arg](p *Parser, call *ast.CallExpr) (T1, T2, error) {
	var v1 T1
	var v2 T2

	expr1, expr2, err := needArgs2(p, call)
	if err != nil {
		return v1, v2, err
	}

	var errs error

	v1, err = parseArgExpr[T1](p, expr1)
	errs = errors.Join(errs, err)

	v2, err = parseArgExpr[T2](p, expr2)
	errs = errors.Join(errs, err)

	return v1, v2, errs
}

func needArgs0(p *Parser, call *ast.CallExpr) error {
	if len(call.Args) != 0 {
		return codefmt.Errorf(p, call, "need no parameters")
	}
	return nil
}

func needArgs1(p *Parser, call *ast.CallExpr) (ast.Expr, error) {
	if len(call.Args) != 1 {
		return nil, codefmt.Errorf(p, call, "need 1 parameter")
	}
	return call.Args[0], nil
}

func needArgs2(p *Parser, call *ast.CallExpr) (ast.Expr, ast.Expr, error) {
	if len(call.Args) != 2 {
		return nil, nil, codefmt.Errorf(p, call, "need 2 parameters")
	}
	return call.Args[0], call.Args[1], nil
}
