// Package serenum provides directives for string enum code generation.
//
// A string enum is a defined type whose constants each stand for a fixed
// string. Serenum generates the boilerplate around such a type: a named string
// constant per variant, a method to get the string of a variant, a function to
// parse a string back to a variant, and optional adapters to marshal the enum
// as its string rather than its underlying value.
//
// To start with Serenum, add a build constraint to files containing Serenum
// directives:
//
//	//go:build serenum
//
// Then declare an enum with [Enum]. The variable holding the directive becomes
// the parse function:
//
//	// source:
//	type Order int
//
//	const (
//		Full Order = iota
//		Short
//	)
//
//	var ParseOrder = serenum.Enum[Order](nil,
//		serenum.Text(Full, "full"),
//		serenum.Text(Short, "short"),
//	)
//
//	// generated: (simplified)
//	const (
//		FULL  = "full"
//		SHORT = "short"
//	)
//
//	func ParseOrder(text string) (Order, bool) {
//		switch text {
//		case FULL:
//			return Full, true
//		case SHORT:
//			return Short, true
//		}
//		return 0, false
//	}
//
//	func (o Order) String() string {
//		switch o {
//		case Full:
//			return FULL
//		case Short:
//			return SHORT
//		}
//		return fmt.Sprintf("Order(%#v)", int(o))
//	}
//
// After declaring enums, run the serenum command. It will generate
// serenum_gen.go for your package:
//
//	go run github.com/Embers-of-the-Fire/serenum/cmd/serenum
//
// # Texts
//
// Every variant needs a text. When a variant has no [Text], Serenum reports it
// at generation time:
//
//	main.go:14:18: invalid texts of Order
//		ok:   Full  -> "full"
//		FAIL: Short -> ? // missing text
//
// Texts can also be derived from variant names by renaming rules. For
// example, with [RenameTrimCommonWordPrefix] and [RenameToSnake], the variants
// OrderFull and OrderHalfDone become "full" and "half_done":
//
//	var ParseOrder = serenum.Enum[Order](nil,
//		serenum.RenameTrimCommonWordPrefix(),
//		serenum.RenameToSnake(),
//	)
//
// An explicit [Text] always wins over renaming rules. A constant of the type
// which is not a variant, like a sentinel or an alias, can be excluded by
// [Skip].
//
// # Modules
//
// [Module] holds default options shared by many enums:
//
//	var (
//		mod          = serenum.Module(serenum.MarshalJSON(true), serenum.RenameToLower())
//		ParseOrder   = serenum.Enum[Order](mod)
//		ParseChannel = serenum.Enum[Channel](mod)
//	)
//
// # Errors
//
// [EnumErr] is the error-returning variant of [Enum]. Its parse function
// returns an error wrapping serenumerrors.ErrNoMatch instead of false.
package serenum

// module provides default options for enums. This is unexported so there is
// no way to create a module other than [Module].
type module *struct{}

type (
	canUseFor interface{ canUseFor() }
	yes       interface{ canUseFor }
	no        interface{ canUseFor }

	// option for [Module]
	moduleOption interface{ moduleOption() yes }

	// option for [Enum] and [EnumErr]
	enumOption interface{ enumOption() yes }
)

// Module provides default options for the enums declared with it. Pass a
// module as the first argument of an enum directive, then the enum inherits
// its options:
//
//	var mod = serenum.Module(serenum.MarshalText(true))
//	var ParseOrder = serenum.Enum[Order](mod, serenum.Text(Full, "full"))
//
// A module must be assigned to an unexported package-level variable. It is
// removed at code generation.
func Module(opts ...moduleOption) module {
	panic("serenum: not generated")
}

// Enum directive generates string enum code for T. The variable that holds the
// directive is rewritten to a parse function which reports whether the text
// matches a variant:
//
//	// source:
//	var ParseOrder = serenum.Enum[Order](nil, serenum.Text(Full, "full"))
//
//	// generated: (simplified)
//	func ParseOrder(text string) (Order, bool)
//
// T must be a defined type in the current package with an integer, float, or
// string underlying type. Variants are the package-level constants of T.
// Unexported constants are ignored unless [DiscoverUnexported] is enabled or
// they are referred by an option.
func Enum[T any](mod module, opts ...enumOption) func(string) (T, bool) {
	panic("serenum: not generated")
}

// EnumErr is the error-returning variant of [Enum]. The parse function returns
// (zero, *serenumerrors.NoMatchError) when the text matches no variant.
func EnumErr[T any](mod module, opts ...enumOption) func(string) (T, error) {
	panic("serenum: not generated")
}

// Option configures how an enum is generated. The type parameters of Option
// indicate which directives accept the option. For example, Option[yes, yes]
// can be passed to both [Module] and [Enum], while Option[no, yes] can be
// passed to [Enum] and [EnumErr] only.
type Option[Module, Enum canUseFor] interface {
	moduleOption() Module
	enumOption() Enum
}

// Variant parameters indicate a constant of the enum type:
//
//	Full
//	orders.Full
type Variant = any

// Text sets the string representation of a variant. It takes precedence over
// any renaming rule.
func Text(variant Variant, text string) Option[no, yes] {
	panic("serenum: not generated")
}

// ConstName sets the name of the string constant generated for a variant. By
// default, the name is the UPPER_SNAKE_CASE of the variant name prefixed with
// [ConstPrefix]:
//
//	// source:
//	serenum.Enum[Order](nil,
//		serenum.Text(Full, "full"),
//		serenum.ConstName(Full, "OrderFullText"),
//	)
//
//	// generated:
//	const OrderFullText = "full"
func ConstName(variant Variant, name string) Option[no, yes] {
	panic("serenum: not generated")
}

// Skip excludes a constant of the enum type from the variants. Skipped
// constants have no text: the generated code treats them as unknown values.
func Skip(variant Variant) Option[no, yes] {
	panic("serenum: not generated")
}

// Values generates a function with the given name that returns all variants in
// declaration order:
//
//	// generated:
//	func OrderValues() []Order { return []Order{Full, Short} }
func Values(name string) Option[no, yes] {
	panic("serenum: not generated")
}

// Texts generates a function with the given name that returns the texts of all
// variants in declaration order.
func Texts(name string) Option[no, yes] {
	panic("serenum: not generated")
}

// To sets the name of the method that returns the text of a variant. The
// default is String so that the enum implements fmt.Stringer.
//
// When this option is specified multiple times, the last one takes effect.
func To(name string) Option[yes, yes] {
	panic("serenum: not generated")
}

// ConstPrefix prepends a prefix to the default constant names. It does not
// affect names set by [ConstName].
//
// When this option is specified multiple times, the last one takes effect.
func ConstPrefix(prefix string) Option[yes, yes] {
	panic("serenum: not generated")
}

// MarshalText generates MarshalText and UnmarshalText methods so that the enum
// implements encoding.TextMarshaler and encoding.TextUnmarshaler with its
// text. Many encoders, including encoding/json for map keys, respect them.
func MarshalText(enable bool) Option[yes, yes] {
	panic("serenum: not generated")
}

// MarshalJSON generates MarshalJSON and UnmarshalJSON methods that encode the
// enum as a JSON string of its text.
func MarshalJSON(enable bool) Option[yes, yes] {
	panic("serenum: not generated")
}

// SQL generates Value and Scan methods so that the enum is stored as its text
// by database/sql.
func SQL(enable bool) Option[yes, yes] {
	panic("serenum: not generated")
}

// DiscoverUnexported enables discovery of unexported constants as variants.
//
// When this option is specified multiple times, the last one takes effect.
func DiscoverUnexported(enable bool) Option[yes, yes] {
	panic("serenum: not generated")
}

// RenameReplace is a renaming rule that replaces old with new in variant names
// to derive texts.
func RenameReplace(old, new string) Option[yes, yes] {
	panic("serenum: not generated")
}

// RenameReplaceRegexp is a renaming rule that replaces matches of the regular
// expression with repl. repl may refer to submatches like regexp.ReplaceAllString.
func RenameReplaceRegexp(regexp, repl string) Option[yes, yes] {
	panic("serenum: not generated")
}

// RenameToLower is a renaming rule that converts variant names to lowercase.
func RenameToLower() Option[yes, yes] {
	panic("serenum: not generated")
}

// RenameToUpper is a renaming rule that converts variant names to uppercase.
func RenameToUpper() Option[yes, yes] {
	panic("serenum: not generated")
}

// RenameToSnake is a renaming rule that converts variant names to snake_case:
// InProgress becomes in_progress.
func RenameToSnake() Option[yes, yes] {
	panic("serenum: not generated")
}

// RenameToKebab is a renaming rule that converts variant names to kebab-case:
// InProgress becomes in-progress.
func RenameToKebab() Option[yes, yes] {
	panic("serenum: not generated")
}

// RenameTrimPrefix is a renaming rule that trims a prefix from variant names.
func RenameTrimPrefix(prefix string) Option[yes, yes] {
	panic("serenum: not generated")
}

// RenameTrimSuffix is a renaming rule that trims a suffix from variant names.
func RenameTrimSuffix(suffix string) Option[yes, yes] {
	panic("serenum: not generated")
}

// RenameTrimCommonPrefix is a renaming rule that trims the longest common
// prefix of all variant names.
func RenameTrimCommonPrefix() Option[yes, yes] {
	panic("serenum: not generated")
}

// RenameTrimCommonSuffix is a renaming rule that trims the longest common
// suffix of all variant names.
func RenameTrimCommonSuffix() Option[yes, yes] {
	panic("serenum: not generated")
}

// RenameTrimCommonWordPrefix is a renaming rule that trims the longest common
// prefix of all variant names based on word boundaries. StatusActive and
// StatusInactive become Active and Inactive.
func RenameTrimCommonWordPrefix() Option[yes, yes] {
	panic("serenum: not generated")
}

// RenameTrimCommonWordSuffix is a renaming rule that trims the longest common
// suffix of all variant names based on word boundaries.
func RenameTrimCommonWordSuffix() Option[yes, yes] {
	panic("serenum: not generated")
}

// RenameReset clears all the renaming rules registered so far, including the
// ones inherited from the module.
func RenameReset() Option[yes, yes] {
	panic("serenum: not generated")
}
