//go:build serenum

package main

import (
	"fmt"

	"github.com/Embers-of-the-Fire/serenum"
)

type Order int

const (
	Full Order = iota
	Short
)

// ParseOrder parses the text of an order.
var ParseOrder = serenum.Enum[Order](nil,
	serenum.Text(Full, "full"),
	serenum.Text(Short, "short"),
)

type Suit string

const (
	Hearts Suit = "H"
	Spades Suit = "S"
)

var ParseSuit = serenum.Enum[Suit](nil, serenum.RenameToLower())

type Ratio float64

const (
	Half    Ratio = 0.5
	Quarter Ratio = 0.25
)

var ParseRatio = serenum.Enum[Ratio](nil,
	serenum.Text(Half, "1/2"),
	serenum.Text(Quarter, "1/4"),
)

func main() {
	fmt.Println(Full, Short, Order(42))
	fmt.Println(ParseOrder("short"))
	fmt.Println(ParseOrder("long"))

	fmt.Println(Hearts, Spades, Suit("X"))
	fmt.Println(ParseSuit("spades"))

	fmt.Println(Half, Quarter, Ratio(0.75))
	fmt.Println(ParseRatio("1/4"))
}
