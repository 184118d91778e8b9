package typeinfo

import "golang.org/x/tools/go/types/typeutil"

// Registry indexes values by their types. Identical types share the same
// entry even if their [types.Type] instances differ.
type Registry[T any] struct {
	m *typeutil.Map
}

// NewRegistry creates a new [Registry].
func NewRegistry[T any]() *Registry[T] {
	m := new(typeutil.Map)
	m.SetHasher(typeutil.MakeHasher())
	return &Registry[T]{m}
}

// Put registers v for the type t. If t is already registered, it returns the
// previous value and false without overwriting.
func (r *Registry[T]) Put(t Type, v T) (T, bool) {
	if old, ok := r.m.At(t.Type()).(T); ok {
		return old, false
	}
	r.m.Set(t.Type(), v)
	return *new(T), true
}
