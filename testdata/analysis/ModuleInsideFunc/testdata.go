//go:build serenum

package testdata

import "github.com/Embers-of-the-Fire/serenum"

var (
	mod = serenum.Module() // ok
	_   = mod
)

func F1() {
	mod := serenum.Module() // ok
	_ = mod
}

func F2() {
	func() {
		mod := serenum.Module(serenum.RenameToLower()) // ok
		_ = mod
	}()
}

type T struct{}

func (T) F3() {
	mod := serenum.Module() // ok
	_ = mod
}

var F4 = func() {
	mod := serenum.Module() // ok
	_ = mod
}

// A module held by a local variable is erased at code generation like a
// package-level one, so it is allowed.
