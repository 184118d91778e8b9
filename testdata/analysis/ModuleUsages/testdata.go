//go:build serenum

package testdata

import (
	"fmt"

	"github.com/Embers-of-the-Fire/serenum"
)

type Color int

const (
	Red Color = iota
	Blue
)

var mod = serenum.Module(serenum.RenameToLower()) // ok

var ParseColor = serenum.Enum[Color](mod) // ok

var Mod = serenum.Module() // want `cannot export module "Mod"; removed at code generation`

var _ = serenum.Module() // ok, blank identifier is harmless

var mod2 = mod // want `cannot use module "mod" outside serenum directives; removed at code generation`

var mod3 = &mod // want `cannot use module "mod" outside serenum directives; removed at code generation`

var _ = mod // ok, blank identifier is harmless

func F1() {
	fmt.Println(mod)  // want `cannot use module "mod" outside serenum directives; removed at code generation`
	fmt.Println(mod2) // ok, mod2 is already invalid
	fmt.Println(mod3) // ok, mod3 is already invalid
}

var (
	modSlice = []any{mod} // want `cannot use module "mod" outside serenum directives; removed at code generation`
	_        = modSlice
)

func F2() {
	fmt.Println(map[int]any{0: mod}) // want `cannot use module "mod" outside serenum directives; removed at code generation`
}

func F3() any {
	return mod // want `cannot use module "mod" outside serenum directives; removed at code generation`
}

func F4() {
	Mod := mod // want `cannot use module "mod" outside serenum directives; removed at code generation`
	_ = Mod
}

func F5() {
	mod := serenum.Module() // ok, will be removed
	_ = mod                 // ok, will be removed also
}
