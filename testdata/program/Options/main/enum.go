//go:build serenum

package main

import "github.com/Embers-of-the-Fire/serenum"

type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	numWeekdays
)

var ParseWeekday = serenum.Enum[Weekday](nil,
	serenum.RenameToLower(),
	serenum.DiscoverUnexported(true),
	serenum.Skip(numWeekdays),
	serenum.ConstPrefix("WEEKDAY_"),
	serenum.ConstName(Tuesday, "TUE"),
	serenum.To("Name"),
	serenum.Texts("WeekdayTexts"),
)

type planet int

const (
	mercury planet = iota
	venus
)

// Unexported variants need texts given explicitly or DiscoverUnexported.
var parsePlanet = serenum.Enum[planet](nil,
	serenum.Text(mercury, "Mercury"),
	serenum.Text(venus, "Venus"),
	serenum.Values("planets"),
)
