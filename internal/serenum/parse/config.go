package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/tools/go/types/typeutil"

	"github.com/Embers-of-the-Fire/serenum/internal/codefmt"
	"github.com/Embers-of-the-Fire/serenum/internal/typeinfo"
	"github.com/Embers-of-the-Fire/serenum/internal/words"
)

// DefaultTo is the default name of the method returning the text of a variant.
const DefaultTo = "String"

// VariantOption is an option given for a specific variant, such as
// serenum.Text or serenum.ConstName.
type VariantOption struct {
	Const *types.Const
	Value string
	At    token.Pos
}

// Config holds the options of an enum or a module.
type Config struct {
	To          string
	ToAt        token.Pos
	ConstPrefix string

	MarshalText bool
	MarshalJSON bool
	SQL         bool

	DiscoverUnexported bool

	// Renamers derive texts from variant names. A renamer takes the name and
	// the common part found by the finder at the same index, if any.
	Renamers      []func(string, string) string
	CommonFinders []func([]string) string

	// Enum-only options
	Texts      []VariantOption
	ConstNames []VariantOption
	Skips      []VariantOption
	ValuesName string
	ValuesAt   token.Pos
	TextsName  string
	TextsAt    token.Pos
}

// Fork copies the config of a module for an enum. Renaming rules are cloned so
// that the enum can extend them independently.
func (cfg Config) Fork() Config {
	cfg.Renamers = slices.Clone(cfg.Renamers)
	cfg.CommonFinders = slices.Clone(cfg.CommonFinders)

	cfg.Texts = nil
	cfg.ConstNames = nil
	cfg.Skips = nil
	cfg.ValuesName, cfg.ValuesAt = "", token.NoPos
	cfg.TextsName, cfg.TextsAt = "", token.NoPos
	return cfg
}

// ToName returns the name of the text method.
func (cfg Config) ToName() string {
	if cfg.To == "" {
		return DefaultTo
	}
	return cfg.To
}

// ParseConfig parses options into cfg. enum is the type of the enum directive
// the options belong to. It is nil for module options.
func (p *Parser) ParseConfig(cfg *Config, args []ast.Expr, enum *typeinfo.Type) error {
	var errs error
	for _, arg := range args {
		if _, ok := ast.Unparen(arg).(*ast.Ident); ok {
			err := codefmt.Errorf(p, arg, "option must be inlined, not assigned to variable")
			errs = errors.Join(errs, err)
			continue
		}

		call, ok := ast.Unparen(arg).(*ast.CallExpr)
		if !ok {
			// Option types are unexported, so an option is either a
			// directive call or a variable caught above.
			err := codefmt.Errorf(p, arg, "cannot use %c as option", arg)
			errs = errors.Join(errs, err)
			continue
		}

		if err := p.ParseOption(cfg, call, enum); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}

// ParseOption parses a single option call into cfg.
func (p *Parser) ParseOption(cfg *Config, call *ast.CallExpr, enum *typeinfo.Type) error { // nolint: gocyclo
	callee := typeutil.Callee(p.Pkg().TypesInfo, call)
	if callee == nil || callee.Pkg() == nil || !IsSerenumImport(callee.Pkg().Path()) {
		return codefmt.Errorf(p, call, "option must be serenum directive")
	}

	name := callee.Name()
	switch name {
	case "Text", "ConstName", "Skip", "Values", "Texts":
		if enum == nil {
			return codefmt.Errorf(p, call.Fun, "serenum.%s is not supported by module", name)
		}
	}

	switch name {
	case "Text":
		return p.ParseOptionText(cfg, call, *enum)
	case "ConstName":
		return p.ParseOptionConstName(cfg, call, *enum)
	case "Skip":
		return p.ParseOptionSkip(cfg, call, *enum)
	case "Values":
		return p.ParseOptionListFunc(&cfg.ValuesName, &cfg.ValuesAt, call)
	case "Texts":
		return p.ParseOptionListFunc(&cfg.TextsName, &cfg.TextsAt, call)

	case "To":
		return p.ParseOptionTo(cfg, call)
	case "ConstPrefix":
		return p.ParseOptionConstPrefix(cfg, call)
	case "MarshalText":
		return p.ParseOptionBool(&cfg.MarshalText, call)
	case "MarshalJSON":
		return p.ParseOptionBool(&cfg.MarshalJSON, call)
	case "SQL":
		return p.ParseOptionBool(&cfg.SQL, call)
	case "DiscoverUnexported":
		return p.ParseOptionBool(&cfg.DiscoverUnexported, call)

	case "RenameReplace":
		return p.ParseOptionRenameReplace(cfg, call)
	case "RenameReplaceRegexp":
		return p.ParseOptionRenameReplaceRegexp(cfg, call)
	case "RenameToLower":
		return p.ParseOptionRename(cfg, call, strings.ToLower)
	case "RenameToUpper":
		return p.ParseOptionRename(cfg, call, strings.ToUpper)
	case "RenameToSnake":
		return p.ParseOptionRename(cfg, call, words.Snake)
	case "RenameToKebab":
		return p.ParseOptionRename(cfg, call, words.Kebab)
	case "RenameTrimPrefix":
		return p.ParseOptionRenameString(cfg, call, strings.TrimPrefix)
	case "RenameTrimSuffix":
		return p.ParseOptionRenameString(cfg, call, strings.TrimSuffix)
	case "RenameTrimCommonPrefix":
		return p.ParseOptionRenameCommon(cfg, call, words.CommonPrefix, strings.TrimPrefix)
	case "RenameTrimCommonSuffix":
		return p.ParseOptionRenameCommon(cfg, call, words.CommonSuffix, strings.TrimSuffix)
	case "RenameTrimCommonWordPrefix":
		return p.ParseOptionRenameCommon(cfg, call, words.CommonWordPrefix, strings.TrimPrefix)
	case "RenameTrimCommonWordSuffix":
		return p.ParseOptionRenameCommon(cfg, call, words.CommonWordSuffix, strings.TrimSuffix)
	case "RenameReset":
		return p.ParseOptionRenameReset(cfg, call)
	}

	return codefmt.Errorf(p, call.Fun, "%s is not supported option", name)
}

func (p *Parser) ParseOptionText(c *Config, call *ast.CallExpr, enum typeinfo.Type) error {
	opt, err := p.parseVariantOption(call, enum, c.Texts)
	if err != nil {
		return err
	}
	c.Texts = append(c.Texts, *opt)
	return nil
}

func (p *Parser) ParseOptionConstName(c *Config, call *ast.CallExpr, enum typeinfo.Type) error {
	opt, err := p.parseVariantOption(call, enum, c.ConstNames)
	if err != nil {
		return err
	}
	if !isIdent(opt.Value) {
		return codefmt.Errorf(p, call.Args[1], "invalid constant name %q", opt.Value)
	}
	c.ConstNames = append(c.ConstNames, *opt)
	return nil
}

// parseVariantOption parses an option taking a variant and a string. prev
// holds the same options given so far to reject a second one for a variant.
func (p *Parser) parseVariantOption(call *ast.CallExpr, enum typeinfo.Type, prev []VariantOption) (*VariantOption, error) {
	variantExpr, valueExpr, err := needArgs2(p, call)
	if err != nil {
		return nil, err
	}

	var errs error
	con, err := p.ParseVariant(variantExpr, enum)
	errs = errors.Join(errs, err)
	value, err := parseArgExpr[string](p, valueExpr)
	errs = errors.Join(errs, err)
	if errs != nil {
		return nil, errs
	}

	for _, opt := range prev {
		if opt.Const == con {
			return nil, codefmt.Errorf(p, call, `duplicate %c for %o
	previous option at %b`, call.Fun, con, opt.At)
		}
	}

	return &VariantOption{Const: con, Value: value, At: call.Pos()}, nil
}

func (p *Parser) ParseOptionSkip(c *Config, call *ast.CallExpr, enum typeinfo.Type) error {
	expr, err := needArgs1(p, call)
	if err != nil {
		return err
	}

	con, err := p.ParseVariant(expr, enum)
	if err != nil {
		return err
	}

	for _, opt := range c.Skips {
		if opt.Const == con {
			return codefmt.Errorf(p, call, `duplicate serenum.Skip for %o
	previous option at %b`, con, opt.At)
		}
	}

	c.Skips = append(c.Skips, VariantOption{Const: con, At: call.Pos()})
	return nil
}

func (p *Parser) ParseOptionListFunc(name *string, at *token.Pos, call *ast.CallExpr) error {
	value, err := parseArgs1[string](p, call)
	if err != nil {
		return err
	}

	if *at != token.NoPos {
		return codefmt.Errorf(p, call, `%c already configured
	previous option at %b`, call.Fun, *at)
	}
	if !isIdent(value) {
		return codefmt.Errorf(p, call.Args[0], "invalid function name %q", value)
	}

	*name, *at = value, call.Pos()
	return nil
}

func (p *Parser) ParseOptionTo(c *Config, call *ast.CallExpr) error {
	value, err := parseArgs1[string](p, call)
	if err != nil {
		return err
	}

	if !isIdent(value) {
		return codefmt.Errorf(p, call.Args[0], "invalid method name %q", value)
	}

	c.To, c.ToAt = value, call.Pos()
	return nil
}

func (p *Parser) ParseOptionConstPrefix(c *Config, call *ast.CallExpr) error {
	value, err := parseArgs1[string](p, call)
	if err != nil {
		return err
	}

	c.ConstPrefix = value
	return nil
}

func (p *Parser) ParseOptionBool(field *bool, call *ast.CallExpr) error {
	value, err := parseArgs1[bool](p, call)
	if err != nil {
		return err
	}

	*field = value
	return nil
}

func (p *Parser) ParseOptionRename(c *Config, call *ast.CallExpr, rename func(string) string) error {
	if err := needArgs0(p, call); err != nil {
		return err
	}

	c.Renamers = append(c.Renamers, func(s, _ string) string { return rename(s) })
	c.CommonFinders = append(c.CommonFinders, nil)
	return nil
}

func (p *Parser) ParseOptionRenameString(c *Config, call *ast.CallExpr, rename func(string, string) string) error {
	value, err := parseArgs1[string](p, call)
	if err != nil {
		return err
	}

	c.Renamers = append(c.Renamers, func(s, _ string) string { return rename(s, value) })
	c.CommonFinders = append(c.CommonFinders, nil)
	return nil
}

func (p *Parser) ParseOptionRenameCommon(c *Config, call *ast.CallExpr, find func([]string) string, rename func(string, string) string) error {
	if err := needArgs0(p, call); err != nil {
		return err
	}

	c.Renamers = append(c.Renamers, rename)
	c.CommonFinders = append(c.CommonFinders, find)
	return nil
}

func (p *Parser) ParseOptionRenameReplace(c *Config, call *ast.CallExpr) error {
	old, new, err := parseArgs2[string, string](p, call)
	if err != nil {
		return err
	}

	c.Renamers = append(c.Renamers, func(s, _ string) string { return strings.ReplaceAll(s, old, new) })
	c.CommonFinders = append(c.CommonFinders, nil)
	return nil
}

func (p *Parser) ParseOptionRenameReplaceRegexp(c *Config, call *ast.CallExpr) error {
	pattern, repl, err := parseArgs2[string, string](p, call)
	if err != nil {
		return err
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return codefmt.Errorf(p, call.Args[0], "invalid regexp pattern: %s", pattern)
	}

	c.Renamers = append(c.Renamers, func(s, _ string) string { return re.ReplaceAllString(s, repl) })
	c.CommonFinders = append(c.CommonFinders, nil)
	return nil
}

func (p *Parser) ParseOptionRenameReset(c *Config, call *ast.CallExpr) error {
	if err := needArgs0(p, call); err != nil {
		return err
	}

	c.Renamers = nil
	c.CommonFinders = nil
	return nil
}

// isIdent reports whether name can be declared as a Go identifier.
func isIdent(name string) bool {
	return token.IsIdentifier(name) && name != "_"
}
