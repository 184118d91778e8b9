//go:build serenum

package main

import (
	"fmt"

	"github.com/Embers-of-the-Fire/serenum"
)

type Event int

const (
	EventUserCreated Event = iota
	EventUserDeleted
	EventOrderPlaced
)

var ParseEvent = serenum.Enum[Event](nil,
	serenum.RenameTrimCommonWordPrefix(),
	serenum.RenameToSnake(),
	serenum.RenameReplace("_", "."),
	serenum.RenameReplaceRegexp(`^(\w+)\.(\w+)$`, "$2:$1"),
)

type Level int

const (
	LevelLow Level = iota
	LevelHigh
)

type Pet int

const (
	CatPet Pet = iota
	DogPet
)

var mod = serenum.Module(
	serenum.RenameTrimCommonWordPrefix(),
	serenum.RenameTrimCommonSuffix(),
	serenum.RenameToLower(),
)

var (
	ParseLevel = serenum.Enum[Level](mod, serenum.RenameReset(), serenum.RenameToUpper())
	ParsePet   = serenum.Enum[Pet](mod, serenum.RenameToKebab())
)

type Mode int

const (
	ModeRead Mode = iota
	ModeWrite
)

type Unit int

const (
	SecondUnit Unit = iota
	MinuteUnit
)

type Size int

const (
	SizeSmall Size = iota
	SizeSlim
)

type Shape int

const (
	CircleShape Shape = iota
	SquareShape
)

var (
	ParseMode  = serenum.Enum[Mode](nil, serenum.RenameTrimPrefix("Mode"), serenum.RenameToLower())
	ParseUnit  = serenum.Enum[Unit](nil, serenum.RenameTrimSuffix("Unit"), serenum.RenameToSnake())
	ParseSize  = serenum.Enum[Size](nil, serenum.RenameTrimCommonPrefix(), serenum.RenameToLower())
	ParseShape = serenum.Enum[Shape](nil, serenum.RenameTrimCommonWordSuffix(), serenum.RenameToKebab())
)

func main() {
	fmt.Println(EventUserCreated, EventUserDeleted, EventOrderPlaced)
	fmt.Println(ParseEvent("placed:order"))
	fmt.Println(LevelLow, LevelHigh)
	fmt.Println(CatPet, DogPet)
	fmt.Println(ModeRead, ModeWrite)
	fmt.Println(SecondUnit, MinuteUnit)
	fmt.Println(SizeSmall, SizeSlim)
	fmt.Println(CircleShape, SquareShape)
	fmt.Println(ParseSize("lim"))
}
