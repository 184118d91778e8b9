//go:build serenum

package testdata

import "github.com/Embers-of-the-Fire/serenum"

type (
	A int
	B int
	C int
	D int
	E int
	F int
	G int
)

const (
	A1 A = 1
	B1 B = 1
	C1 C = 1
	D1 D = 1
	E1 E = 1
	F1 F = 1
	G1 G = 1
)

var ParseA = serenum.Enum[A](
	nil, // ok
	serenum.RenameToLower(),
)

var ParseB = serenum.Enum[B](
	serenum.Module(serenum.RenameToLower()), // ok
)

var mod = serenum.Module(serenum.RenameToLower())

var ParseC = serenum.Enum[C](
	mod, // ok
)

var ParseD = serenum.Enum[D](
	(mod), // ok
)

func asis[T any](v T) T { return v }

var ParseE = serenum.Enum[E](
	asis(serenum.Module()), // want `module must be serenum.Module\(\) or package-level variable`
)

var ParseF = serenum.Enum[F](
	(*struct{})(nil), // want `module must be serenum.Module\(\) or package-level variable`
)

var fake *struct{}

var ParseG = serenum.Enum[G](
	fake, // want `cannot find "fake" module declared by serenum.Module`
)
