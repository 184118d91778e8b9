//go:build serenum

package main

import "github.com/Embers-of-the-Fire/serenum"

type Order int

const (
	Full Order = iota
	Half
	Empty
)

var ParseOrder = serenum.Enum[Order](nil,
	serenum.Text(Full, "full"),
	serenum.Text(Empty, "full"),
)

func main() {
	panic("serenum will fail")
}
