package main

import (
	"errors"
	"fmt"

	"github.com/Embers-of-the-Fire/serenum/pkg/serenumerrors"
)

// This file uses declarations generated from enum.go. They are missing while
// generating, which must not stop the generation.

func main() {
	for _, s := range StatusValues() {
		fmt.Println(int(s), s)
	}

	s, err := ParseStatus("on_hold")
	fmt.Println(s, err)

	_, err = ParseStatus("OnHold")
	fmt.Println(err)
	fmt.Println(errors.Is(err, serenumerrors.ErrNoMatch))
}
