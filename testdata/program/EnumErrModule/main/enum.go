//go:build serenum

package main

import "github.com/Embers-of-the-Fire/serenum"

type Status int

const (
	StatusActive Status = iota + 1
	StatusOnHold
	StatusArchived
)

var mod = serenum.Module(
	serenum.RenameTrimCommonWordPrefix(),
	serenum.RenameToSnake(),
)

var ParseStatus = serenum.EnumErr[Status](mod, serenum.Values("StatusValues"))
