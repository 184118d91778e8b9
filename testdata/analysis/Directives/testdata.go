//go:build serenum

package testdata

import (
	"time"

	"github.com/Embers-of-the-Fire/serenum"
)

type Generic[T any] int

var ParseGeneric = serenum.Enum[Generic[int]](nil) // want `generic type Generic\[int\] cannot be enum`

type Struct struct{}

var ParseStruct = serenum.Enum[Struct](nil) // want `Struct cannot be enum; need defined type of integer, float, or string`

var ParseInt = serenum.Enum[int](nil) // want `int cannot be enum; need defined type of integer, float, or string`

var ParseMonth = serenum.Enum[time.Month](nil) // want `time.Month cannot be enum; need type defined in package testdata`

type Empty int

var ParseEmpty = serenum.Enum[Empty](nil) // want `Empty has no variants`

type Blank int

const BlankA Blank = 0

var _ = serenum.Enum[Blank](nil) // want `cannot assign serenum.Enum to blank identifier`

type Local int

const LocalA Local = 0

func F() {
	parse := serenum.EnumErr[Local](nil) // want `serenum.EnumErr must be assigned to package-level variable`
	_ = parse
}

type Dup int

const DupA Dup = 0

var ParseDup1 = serenum.Enum[Dup](nil, serenum.RenameToLower())

var ParseDup2 = serenum.Enum[Dup](nil, serenum.RenameToLower()) // want `duplicate directive for Dup`
