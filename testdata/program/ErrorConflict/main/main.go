//go:build serenum

package main

import "github.com/Embers-of-the-Fire/serenum"

type Size int

const (
	Small Size = iota
	Large
)

const SMALL = "small"

func (s Size) String() string { return "size" }

var ParseSize = serenum.Enum[Size](nil, serenum.RenameToLower())

func main() {
	panic("serenum will fail")
}
