//go:build serenum

package main

import "github.com/Embers-of-the-Fire/serenum"

type Level int

const (
	Low Level = iota
	High
)

var Mod = serenum.Module(serenum.RenameToLower())

var ParseLevel = serenum.Enum[Level](Mod,
	serenum.Values("LevelValues"),
	serenum.Values("AllLevels"),
)

func main() {
	panic("serenum will fail")
}
