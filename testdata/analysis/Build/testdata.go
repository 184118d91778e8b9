//go:build serenum

package testdata

import "github.com/Embers-of-the-Fire/serenum"

type Status int

const (
	StatusActive Status = iota
	StatusArchived
	StatusDeleted
)

var ParseStatus = serenum.Enum[Status](nil, // want `invalid texts of Status`
	serenum.Text(StatusActive, "active"),
	serenum.Text(StatusArchived, "active"),
)

type Shape int

const (
	Circle Shape = iota
	Square
)

const CIRCLE = "exists"

var ParseShape = serenum.Enum[Shape](nil, serenum.RenameToLower()) // want `constant name CIRCLE of Shape conflicts with existing declaration`

type Mode int

const (
	Read Mode = iota
	Write
)

func (Mode) String() string { return "" }

var ParseMode = serenum.Enum[Mode](nil, serenum.RenameToLower()) // want `method String of Mode conflicts with existing method`

type Kind int

const (
	KindA Kind = iota
	KindB
)

var ParseKind = serenum.Enum[Kind](nil,
	serenum.RenameToLower(),
	serenum.MarshalText(true),
	serenum.To("MarshalText"), // want `method MarshalText of Kind is generated twice`
)

type Unit int

const (
	Meter Unit = iota
	Mile
	meter
)

var ParseUnit = serenum.Enum[Unit](nil, // want `invalid texts of Unit`
	serenum.RenameToLower(),
	serenum.DiscoverUnexported(true),
)

type Edge int

const (
	EdgeFirst Edge = 0
	EdgeStart Edge = 0
)

var ParseEdge = serenum.Enum[Edge](nil, serenum.RenameToLower()) // want `invalid texts of Edge`

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

var ParseAxis = serenum.Enum[Axis](nil,
	serenum.RenameToLower(),
	serenum.ConstName(AxisX, "X"),
	serenum.ConstName(AxisY, "X"), // want `constant name X of Axis conflicts with existing declaration`
)
