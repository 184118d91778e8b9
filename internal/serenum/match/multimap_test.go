package match

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiMapEmpty(t *testing.T) {
	m := newMultiMap[string, token.Pos]()
	for range m.All() {
		t.Fatal("unexpected pair")
	}
}

func TestMultiMapAll(t *testing.T) {
	m := newMultiMap[string, token.Pos]()
	m.Add("b", 3)
	m.Add("a", 1)
	m.Add("b", 2)
	m.Add("a", 1)

	var ks []string
	var vs []token.Pos
	for k, v := range m.All() {
		ks = append(ks, k)
		vs = append(vs, v)
	}

	assert.Equal(t, []string{"b", "b", "a"}, ks)
	assert.Equal(t, []token.Pos{3, 2, 1}, vs)
}

func TestMultiMapAllBreak(t *testing.T) {
	m := newMultiMap[string, token.Pos]()
	m.Add("full", 10)
	m.Add("full", 20)

	var n int
	for range m.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}
