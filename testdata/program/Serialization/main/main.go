//go:build serenum

package main

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"fmt"

	"github.com/Embers-of-the-Fire/serenum"
)

type Color int

const (
	Red Color = iota + 1
	Green
)

var ParseColor = serenum.Enum[Color](nil,
	serenum.RenameToLower(),
	serenum.MarshalJSON(true),
	serenum.MarshalText(true),
	serenum.SQL(true),
)

type Paint struct {
	Color Color         `json:"color"`
	Mix   map[Color]int `json:"mix"`
}

func main() {
	b, err := json.Marshal(Paint{Color: Green, Mix: map[Color]int{Red: 1}})
	fmt.Println(string(b), err)

	var p Paint
	err = json.Unmarshal([]byte(`{"color":"red","mix":{"green":2}}`), &p)
	fmt.Println(p.Color, p.Mix, err)

	_, err = json.Marshal(Paint{Color: Color(7)})
	fmt.Println(err)

	err = json.Unmarshal([]byte(`{"color":"blue"}`), &p)
	fmt.Println(err)

	var v any = Red
	value, err := v.(driver.Valuer).Value()
	fmt.Println(value, err)

	var c Color
	err = any(&c).(sql.Scanner).Scan([]byte("green"))
	fmt.Println(c, err)

	err = any(&c).(sql.Scanner).Scan(42)
	fmt.Println(err)

	err = any(&c).(sql.Scanner).Scan(nil)
	fmt.Println(err)

	p = Paint{Color: Green}
	err = json.Unmarshal([]byte(`{"color":null}`), &p)
	fmt.Println(p.Color, err)

	err = any(&c).(encoding.TextUnmarshaler).UnmarshalText([]byte("blue"))
	fmt.Println(err)

	_, err = any(Color(7)).(encoding.TextMarshaler).MarshalText()
	fmt.Println(err)
}
