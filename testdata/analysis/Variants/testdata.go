//go:build serenum

package testdata

import "github.com/Embers-of-the-Fire/serenum"

type Fruit int

const (
	Apple Fruit = iota
	Banana
)

type Veg int

const Carrot Veg = 0

var banana = Banana

var ParseFruit = serenum.Enum[Fruit](nil,
	serenum.Text(Apple, "apple"),     // ok
	(serenum.Text((Apple), "APPLE")), // want `duplicate serenum.Text for Apple`
	serenum.Text(Carrot, "carrot"),   // want `Carrot is not variant of Fruit; belongs to Veg`
	serenum.Text(Fruit(1), "banana"), // want `variant must be package-level constant; got Fruit\(1\)`
	serenum.Text(banana, "banana"),   // want `variant must be package-level constant; got banana`
)
