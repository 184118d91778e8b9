package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"iter"

	"golang.org/x/tools/go/packages"

	"github.com/Embers-of-the-Fire/serenum/internal/codefmt"
	"github.com/Embers-of-the-Fire/serenum/internal/typeinfo"
)

// Directive is an enum declared by serenum.Enum or serenum.EnumErr.
type Directive struct {
	// Enum is the enum type.
	Enum typeinfo.Type

	Config Config

	// Err indicates serenum.EnumErr. The parse function returns an error
	// instead of a bool.
	Err bool

	// Name is the name of the variable holding the directive. It becomes the
	// name of the parse function.
	Name string

	// Variants are the constants of the enum type in declaration order,
	// including skipped ones.
	Variants []*types.Const

	// Doc and Comment are the doc and the trailing comment of the variable.
	Doc     *ast.CommentGroup
	Comment *ast.CommentGroup

	pkg *packages.Package
	pos token.Pos
}

// Pkg returns the package where the directive is called. Directive implements
// [codefmt.Pkger] by this method.
func (d Directive) Pkg() *packages.Package { return d.pkg }

// Pos returns the position where the directive is called. Directive implements
// [codefmt.Poser] by this method.
func (d Directive) Pos() token.Pos { return d.pos }

// TypeInfo returns the enum type. Directive can be formatted by %t by this
// method.
func (d Directive) TypeInfo() typeinfo.Type { return d.Enum }

// String returns the directive expression like "serenum.Enum[Order]".
func (d Directive) String() string {
	name := "Enum"
	if d.Err {
		name = "EnumErr"
	}
	return codefmt.Sprintf(d, "serenum.%s[%t]", name, d.Enum)
}

// ParseDirectives parses all enum directives in the package.
func (p *Parser) ParseDirectives(mods map[token.Pos]*Module) ([]Directive, error) {
	var errs error
	var dirs []Directive

	reg := typeinfo.NewRegistry[Directive]()
	for _, file := range p.SerenumGoFiles() {
		for dir, err := range p.parseDirectivesInFile(file, mods) {
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}

			if prev, ok := reg.Put(dir.Enum, dir); !ok {
				err := codefmt.Errorf(p, dir, `duplicate directive for %t
	previous declaration at %b`, dir.Enum, prev.Pos())
				errs = errors.Join(errs, err)
				continue
			}

			dirs = append(dirs, dir)
		}
	}

	if errs != nil {
		return nil, errs
	}
	return dirs, nil
}

// parseDirectivesInFile parses and yields the directives assigned to
// package-level variables in the file. Directives called elsewhere are
// yielded as errors.
func (p *Parser) parseDirectivesInFile(file *ast.File, mods map[token.Pos]*Module) iter.Seq2[Directive, error] {
	return func(yield func(Directive, error) bool) {
		found := make(map[*ast.CallExpr]bool)

		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.VAR {
				continue
			}

			for _, spec := range gen.Specs {
				val := spec.(*ast.ValueSpec)
				if len(val.Names) != len(val.Values) {
					continue
				}

				for i := range val.Values {
					call, ok := ast.Unparen(val.Values[i]).(*ast.CallExpr)
					if !ok || !p.isEnumDirective(call) {
						continue
					}
					found[call] = true

					doc := val.Doc
					if doc == nil && !gen.Lparen.IsValid() {
						doc = gen.Doc
					}

					dir, err := p.parseDirective(val.Names[i], call, doc, val.Comment, mods)
					if !yield(dir, err) {
						return
					}
				}
			}
		}

		var errs []error
		ast.Inspect(file, func(node ast.Node) bool {
			call, ok := node.(*ast.CallExpr)
			if !ok || found[call] || !p.isEnumDirective(call) {
				return true
			}
			name, _ := p.GetDirective(call)
			errs = append(errs, codefmt.Errorf(p, call, "serenum.%s must be assigned to package-level variable", name))
			return false
		})
		for _, err := range errs {
			if !yield(Directive{}, err) {
				return
			}
		}
	}
}

// parseDirective parses a [Directive] from the variable and the call
// assigned to it.
func (p *Parser) parseDirective(id *ast.Ident, call *ast.CallExpr, doc, comment *ast.CommentGroup, mods map[token.Pos]*Module) (Directive, error) {
	name, _ := p.GetDirective(call)
	dir := Directive{
		Err:     name == "EnumErr",
		Name:    id.Name,
		Doc:     doc,
		Comment: comment,
		pkg:     p.Pkg(),
		pos:     call.Pos(),
	}

	if id.Name == "_" {
		return Directive{}, codefmt.Errorf(p, id, "cannot assign serenum.%s to blank identifier", name)
	}

	if len(call.Args) == 0 {
		return Directive{}, codefmt.Errorf(p, call, "need module parameter")
	}

	enum, err := p.parseEnumType(call)
	if err != nil {
		return Directive{}, err
	}
	dir.Enum = enum

	var errs error

	mod, err := p.ParseModuleArg(call.Args[0], mods)
	if err != nil {
		// Keep parsing options to report as many errors as possible.
		mod = NilModule()
		errs = errors.Join(errs, err)
	}

	cfg := mod.Config.Fork()
	errs = errors.Join(errs, p.ParseConfig(&cfg, call.Args[1:], &enum))
	dir.Config = cfg

	if errs != nil {
		return Directive{}, errs
	}

	var refs []*types.Const
	for _, opts := range [][]VariantOption{cfg.Texts, cfg.ConstNames, cfg.Skips} {
		for _, opt := range opts {
			refs = append(refs, opt.Const)
		}
	}
	dir.Variants = p.DiscoverVariants(enum, cfg.DiscoverUnexported, refs)
	if len(dir.Variants) == 0 {
		return Directive{}, codefmt.Errorf(p, call, "%t has no variants", enum)
	}

	return dir, nil
}

// parseEnumType reads the type argument of the directive call and checks
// whether it can be a string enum.
func (p *Parser) parseEnumType(call *ast.CallExpr) (typeinfo.Type, error) {
	sig, ok := p.Pkg().TypesInfo.TypeOf(call).(*types.Signature)
	if !ok || sig.Results().Len() == 0 {
		return typeinfo.Type{}, codefmt.Errorf(p, call, "cannot infer enum type") // unreachable
	}

	enum := typeinfo.TypeOf(sig.Results().At(0).Type())
	switch {
	case enum.IsGeneric(), enum.IsNamed() && enum.Named.TypeArgs().Len() != 0:
		return typeinfo.Type{}, codefmt.Errorf(p, call, "generic type %t cannot be enum", enum.Type())
	case !enum.IsEnum():
		return typeinfo.Type{}, codefmt.Errorf(p, call, "%t cannot be enum; need defined type of integer, float, or string", enum.Type())
	case enum.Pkg() != p.Pkg().Types:
		return typeinfo.Type{}, codefmt.Errorf(p, call, "%t cannot be enum; need type defined in package %s", enum.Type(), p.Pkg().Name)
	}
	return enum, nil
}
