package codefmt

import (
	"fmt"
	"go/token"
	"go/types"
	"iter"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NS tracks the names declared in a Go scope together with the positions
// where they were declared. Names claimed by generated code have the position
// of the directive that generates them.
type NS map[string]token.Pos

// NewNS creates a namespace holding all names of the given scope.
func NewNS(scope *types.Scope) NS {
	ns := make(NS)
	for _, name := range scope.Names() {
		ns[name] = scope.Lookup(name).Pos()
	}
	return ns
}

// Reserve marks a name as used without a position. It returns false if the
// name is already used.
func (ns NS) Reserve(name string) bool {
	_, ok := ns.Claim(name, token.NoPos)
	return ok
}

// Claim marks a name as declared at pos. If the name is already used, it
// returns the previous position and false.
func (ns NS) Claim(name string, pos token.Pos) (token.Pos, bool) {
	if prev, ok := ns[name]; ok {
		return prev, false
	}
	ns[name] = pos
	return token.NoPos, true
}

// Name returns a unique name in the namespace derived from the given name. A
// numbering suffix is added on conflicts. The returned name is reserved.
//
// Panics if the name is empty.
func (ns NS) Name(name string) string {
	name = NormalizeName(name)
	if ns == nil {
		return name
	}
	for name := range DisambiguateName(name) {
		if token.Lookup(name).IsKeyword() {
			continue
		}
		if ok := ns.Reserve(name); ok {
			return name
		}
	}
	panic("unreachable")
}

// NormalizeName drops characters not allowed in identifiers and joins the
// remaining chunks in camel case: "order-text" becomes "orderText".
func NormalizeName(name string) string {
	if name == "" {
		panic("empty name")
	}

	chunks := strings.FieldsFunc(name, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
	})

	for i := 1; i < len(chunks); i++ {
		chunks[i] = cases.Title(language.English).String(chunks[i])
	}
	return strings.Join(chunks, "")
}

// DisambiguateName yields the name itself and then numbered alternatives.
func DisambiguateName(name string) iter.Seq[string] {
	if name == "" {
		panic("empty name")
	}

	return func(yield func(string) bool) {
		if !yield(name) {
			return
		}

		// "answer42_2" reads better than "answer422".
		sep := ""
		if last := name[len(name)-1]; last >= '0' && last <= '9' {
			sep = "_"
		}

		for i := 2; ; i++ {
			if !yield(fmt.Sprintf("%s%s%d", name, sep, i)) {
				return
			}
		}
	}
}
