// Package gen builds string enums from parsed directives and writes their
// generated code.
package gen

import (
	"errors"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/packages"

	"github.com/Embers-of-the-Fire/serenum/internal/codefmt"
	"github.com/Embers-of-the-Fire/serenum/internal/serenum/match"
	"github.com/Embers-of-the-Fire/serenum/internal/serenum/parse"
	"github.com/Embers-of-the-Fire/serenum/internal/words"
)

// Variant is a variant with its text and the name of its string constant.
type Variant struct {
	Const     *types.Const
	Text      string
	ConstName string
}

// Enum is a built string enum ready to be written.
type Enum struct {
	dir parse.Directive

	// Variants exclude skipped constants.
	Variants []Variant

	// Names of generated declarations
	Parse     string // parse function, the variable name of the directive
	To        string // text method
	TextFunc  string // unexported lookup from variant to text
	ParseFunc string // unexported lookup from text to variant
	Values    string // optional
	Texts     string // optional
}

// Pkg implements [codefmt.Pkger].
func (e *Enum) Pkg() *packages.Package { return e.dir.Pkg() }

// Pos implements [codefmt.Poser].
func (e *Enum) Pos() token.Pos { return e.dir.Pos() }

// Build decides the texts and the names of the enum declared by the directive.
// Generated package-level names are claimed in ns, so building all enums of a
// package with the same ns detects conflicts between them.
func Build(dir parse.Directive, ns codefmt.NS) (*Enum, error) {
	matches, err := match.FromDirective(dir).Match()
	if err != nil {
		return nil, err
	}

	e := &Enum{
		dir:   dir,
		Parse: dir.Name,
		To:    dir.Config.ToName(),
	}

	var errs error

	constNames := make(map[*types.Const]parse.VariantOption)
	for _, opt := range dir.Config.ConstNames {
		constNames[opt.Const] = opt
	}

	for _, m := range matches {
		v := Variant{Const: m.Variant, Text: m.Text}

		at := dir.Pos()
		if opt, ok := constNames[m.Variant]; ok {
			v.ConstName, at = opt.Value, opt.At
		} else {
			v.ConstName = dir.Config.ConstPrefix + words.UpperSnake(m.Variant.Name())
		}

		if !token.IsIdentifier(v.ConstName) {
			err := codefmt.Errorf(e, codefmt.Pos(at), "invalid constant name %q for %o", v.ConstName, m.Variant)
			errs = errors.Join(errs, err)
			continue
		}
		if err := e.claim(ns, v.ConstName, at, "constant"); err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		e.Variants = append(e.Variants, v)
	}

	if dir.Config.ValuesName != "" {
		e.Values = dir.Config.ValuesName
		errs = errors.Join(errs, e.claim(ns, e.Values, dir.Config.ValuesAt, "function"))
	}
	if dir.Config.TextsName != "" {
		e.Texts = dir.Config.TextsName
		errs = errors.Join(errs, e.claim(ns, e.Texts, dir.Config.TextsAt, "function"))
	}

	errs = errors.Join(errs, e.checkMethods())

	if errs != nil {
		return nil, errs
	}

	// Lookup helpers never conflict because they get unique names.
	base := words.LowerCamel(dir.Enum.Name())
	e.TextFunc = ns.Name(base + "Text")
	e.ParseFunc = ns.Name(base + "FromText")
	return e, nil
}

// claim claims a package-level name declared at pos.
func (e *Enum) claim(ns codefmt.NS, name string, pos token.Pos, kind string) error {
	prev, ok := ns.Claim(name, pos)
	if ok {
		return nil
	}
	if !prev.IsValid() {
		return codefmt.Errorf(e, codefmt.Pos(pos), "%s name %s of %t conflicts with another name", kind, name, e.dir.Enum)
	}
	return codefmt.Errorf(e, codefmt.Pos(pos), `%s name %s of %t conflicts with existing declaration
	previous declaration at %b`, kind, name, e.dir.Enum, prev)
}

// Methods returns the names of the methods to generate on the enum type.
func (e *Enum) Methods() []string {
	cfg := e.dir.Config
	methods := []string{e.To}
	if cfg.MarshalText {
		methods = append(methods, "MarshalText", "UnmarshalText")
	}
	if cfg.MarshalJSON {
		methods = append(methods, "MarshalJSON", "UnmarshalJSON")
	}
	if cfg.SQL {
		methods = append(methods, "Value", "Scan")
	}
	return methods
}

// checkMethods checks the generated methods conflict with neither each
// other nor the existing methods.
func (e *Enum) checkMethods() error {
	at := e.dir.Pos()
	if e.dir.Config.ToAt.IsValid() {
		at = e.dir.Config.ToAt
	}

	var errs error
	seen := make(map[string]bool)
	for _, name := range e.Methods() {
		if seen[name] {
			err := codefmt.Errorf(e, codefmt.Pos(at), "method %s of %t is generated twice", name, e.dir.Enum)
			errs = errors.Join(errs, err)
			continue
		}
		seen[name] = true

		if prev, ok := e.dir.Enum.Method(name); ok {
			err := codefmt.Errorf(e, codefmt.Pos(at), `method %s of %t conflicts with existing method
	previous declaration at %b`, name, e.dir.Enum, prev.Pos())
			errs = errors.Join(errs, err)
		}
	}
	return errs
}
