package typeinfo

import (
	"go/token"
	"go/types"
)

// Type describes a type information. It holds information of [types.Type] that
// is necessary from the Serenum's perspective.
type Type struct {
	T types.Type

	Basic   *types.Basic
	Pointer *types.Pointer
	Named   *types.Named

	Elem *Type
}

func (t Type) Type() types.Type { return t.T }
func (t Type) String() string   { return t.T.String() }

func (t Type) IsBasic() bool   { return t.Basic != nil }
func (t Type) IsPointer() bool { return t.Pointer != nil }
func (t Type) IsNamed() bool   { return t.Named != nil }

func (t Type) Identical(u Type) bool { return types.Identical(t.T, u.T) }

// TypeOf inspects the given type and returns a new [Type]. Unlike basic,
// pointer, and named types, the other types are recorded without details.
func TypeOf(t types.Type) Type {
	switch tt := types.Unalias(t).(type) {
	case *types.Basic:
		return Type{T: t, Basic: tt}
	case *types.Pointer:
		elem := TypeOf(tt.Elem())
		return Type{T: t, Pointer: tt, Elem: &elem}
	case *types.Named:
		info := TypeOf(tt.Underlying())
		info.T = t
		info.Named = tt
		return info
	}
	return Type{T: t}
}

// IsEnum reports whether the type can be a string enum. A string enum must be
// a named type whose underlying type is a typed integer, float, or string.
func (t Type) IsEnum() bool {
	if !t.IsNamed() || !t.IsBasic() {
		return false
	}
	info := t.Basic.Info()
	if info&types.IsUntyped != 0 {
		return false
	}
	return info&(types.IsInteger|types.IsFloat|types.IsString) != 0
}

// IsString reports whether the underlying type is a string.
func (t Type) IsString() bool {
	return t.IsBasic() && t.Basic.Info()&types.IsString != 0
}

// Name returns the name of the named type. It returns an empty string if the
// type is not a named type.
func (t Type) Name() string {
	if !t.IsNamed() {
		return ""
	}
	return t.Named.Obj().Name()
}

// Pkg returns the package where the type is defined. It returns nil if the type
// is not a named type.
func (t Type) Pkg() *types.Package {
	if !t.IsNamed() {
		return nil
	}
	return t.Named.Obj().Pkg()
}

// Pos returns the position where the type is defined. It returns token.NoPos if
// the type is not a named type.
func (t Type) Pos() token.Pos {
	if t.IsNamed() {
		return t.Named.Obj().Pos()
	}
	if t.IsPointer() {
		return t.Deref().Pos()
	}
	return token.NoPos
}

// Ref returns the pointer type of the type. For type of X, it returns type of
// *X.
func (t Type) Ref() Type {
	return TypeOf(types.NewPointer(t.T))
}

// Deref returns the element type if the type is a pointer. For type of *X, it
// returns type of X. If the type is not a pointer, it returns the type itself.
func (t Type) Deref() Type {
	if t.IsPointer() {
		return (*t.Elem).Deref()
	}
	return t
}

// Method returns the method declared with the given name, regardless of its
// receiver kind. If the type is not a named type or the method does not exist,
// it returns nil and false.
func (t Type) Method(name string) (*types.Func, bool) {
	if !t.IsNamed() {
		return nil, false
	}

	for method := range t.Named.Methods() {
		if method.Name() == name {
			return method, true
		}
	}

	return nil, false
}

// IsGeneric reports whether the type is generic or has any generic type
// parameters. Even though the type has type parameters, if all type arguments
// are concrete types, it returns false.
func (t Type) IsGeneric() bool {
	return isGeneric(t.T)
}

func isGeneric(t types.Type) bool {
	switch t := types.Unalias(t).(type) {
	case *types.Named:
		if t.TypeParams().Len() == 0 {
			return false
		}

		targs := t.TypeArgs()
		if targs.Len() == 0 {
			// Have type parameters but no arguments
			// e.g., Foo[T]
			return true
		}

		for i := 0; i < targs.Len(); i++ {
			if isGeneric(targs.At(i)) {
				// Some type argument is generic
				// e.g., Foo[int, T]
				return true
			}
		}
	case *types.Signature:
		return t.TypeParams().Len() != 0
	case *types.TypeParam:
		return true
	}
	return false
}
