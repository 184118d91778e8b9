//go:build serenum

package testdata

import "github.com/Embers-of-the-Fire/serenum"

var renameToLower = serenum.RenameToLower() // want `cannot assign serenum.RenameToLower to variable`

func asis[T any](v T) T { return v }

var _ = serenum.Module(
	renameToLower, // want `option must be inlined, not assigned to variable`

	asis(serenum.RenameToUpper()), // want `option must be serenum directive`

	serenum.RenameToLower(),   // ok
	(serenum.RenameToLower()), // ok
)

type Size int

const (
	Small Size = iota
	Medium
	Large
)

var (
	enabled = true
	large   = "large"
)

var ParseSize = serenum.Enum[Size](nil,
	serenum.Text(Small, "small"),                 // ok
	serenum.Text(Small, "tiny"),                  // want `duplicate serenum.Text for Small`
	serenum.Text(Large, large),                   // want `large is not string literal`
	serenum.Skip(Medium),                         // ok
	serenum.Skip(Medium),                         // want `duplicate serenum.Skip for Medium`
	serenum.ConstName(Small, "small text"),       // want `invalid constant name "small text"`
	serenum.MarshalJSON(enabled),                 // want `enabled is not bool literal`
	serenum.MarshalText(true),                    // ok
	serenum.To("to string"),                      // want `invalid method name "to string"`
	serenum.Values("SizeValues"),                 // ok
	serenum.Values("AllSizes"),                   // want `serenum.Values already configured`
	serenum.Texts("_"),                           // want `invalid function name "_"`
	serenum.RenameReplaceRegexp(`(`, ""),         // want `invalid regexp pattern: \(`
)
