//go:build serenum

package testdata

import "github.com/Embers-of-the-Fire/serenum"

type Level int

const (
	Low Level = iota
	High
)

var (
	_          = serenum.Module()                              // ok
	ParseLevel = serenum.Enum[Level](nil, serenum.RenameToLower()) // ok
)

var (
	ToLower = serenum.RenameToLower()   // want `cannot assign serenum.RenameToLower to variable`
	LowText = serenum.Text(Low, "low")  // want `cannot assign serenum.Text to variable`
	JSON    = serenum.MarshalJSON(true) // want `cannot assign serenum.MarshalJSON to variable`
)

func F() {
	skip := serenum.Skip(High) // want `cannot assign serenum.Skip to variable`
	_ = skip
}
