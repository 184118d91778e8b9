package match

import (
	"go/constant"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"golang.org/x/tools/go/packages"

	"github.com/Embers-of-the-Fire/serenum/internal/codefmt"
	"github.com/Embers-of-the-Fire/serenum/internal/serenum/parse"
)

type (
	renameFunc     = func(string, string) string
	findCommonFunc = func([]string) string

	// variant is a constant of an enum type. *types.Const implements it.
	variant interface {
		Name() string
		Pos() token.Pos
		Val() constant.Value
	}
)

// Matcher decides the text of each variant of an enum. A text is given
// explicitly or derived from the variant name by renaming rules. The matcher
// validates that every variant has a unique text.
type Matcher[T variant] struct {
	pkg  *packages.Package
	pos  token.Pos
	enum string

	variants *linkedhashmap.Map // token.Pos -> T in declaration order
	texts    map[token.Pos]text // explicit texts
	skipped  map[token.Pos]token.Pos

	renamers      []renameFunc
	commonFinders []findCommonFunc
}

type text struct {
	s  string
	at token.Pos
}

// NewMatcher creates a matcher for the enum named enum. The renaming rules
// apply to variants without explicit texts.
func NewMatcher[T variant](pkg *packages.Package, pos token.Pos, enum string, renamers []renameFunc, commonFinders []findCommonFunc) *Matcher[T] {
	return &Matcher[T]{
		pkg:  pkg,
		pos:  pos,
		enum: enum,

		variants: linkedhashmap.New(),
		texts:    make(map[token.Pos]text),
		skipped:  make(map[token.Pos]token.Pos),

		renamers:      renamers,
		commonFinders: commonFinders,
	}
}

// FromDirective creates a matcher filled with the variants and the options of
// the directive.
func FromDirective(dir parse.Directive) *Matcher[*types.Const] {
	enum := codefmt.Sprintf(dir, "%t", dir.Enum)
	m := NewMatcher[*types.Const](dir.Pkg(), dir.Pos(), enum, dir.Config.Renamers, dir.Config.CommonFinders)
	for _, v := range dir.Variants {
		m.Add(v)
	}
	for _, opt := range dir.Config.Texts {
		m.Text(opt.Const.Pos(), opt.Value, opt.At)
	}
	for _, opt := range dir.Config.Skips {
		m.Skip(opt.Const.Pos(), opt.At)
	}
	return m
}

// Pkg returns the package of the enum to satisfy [codefmt.Pkger].
func (m *Matcher[T]) Pkg() *packages.Package { return m.pkg }

// Pos returns the position of the directive to satisfy [codefmt.Poser].
func (m *Matcher[T]) Pos() token.Pos { return m.pos }

// Add adds a variant. Variants should be added in declaration order.
func (m *Matcher[T]) Add(v T) { m.variants.Put(v.Pos(), v) }

// Text sets the text of the variant at pos explicitly.
func (m *Matcher[T]) Text(pos token.Pos, s string, at token.Pos) {
	m.texts[pos] = text{s, at}
}

// Skip excludes the variant at pos.
func (m *Matcher[T]) Skip(pos, at token.Pos) {
	m.skipped[pos] = at
}

// Match is a variant with its text.
type Match[T any] struct {
	Variant T
	Text    string
}

// Match returns the variants with their texts in declaration order. Skipped
// variants are excluded. If any variant has no valid text, it returns an
// error with the visualized table.
func (m *Matcher[T]) Match() ([]Match[T], error) {
	matches, vis := m.matchVisualize()

	if !vis.IsValid() {
		var b strings.Builder
		for _, line := range strings.SplitAfter(vis.String(), "\n") {
			b.WriteString("\t")
			b.WriteString(line)
		}
		return nil, codefmt.Errorf(m, m, "invalid texts of %s\n%s", m.enum, b.String())
	}

	return matches, nil
}

// Visualize returns the table of the matching result.
func (m *Matcher[T]) Visualize() string {
	_, vis := m.matchVisualize()
	return vis.String()
}

func (m *Matcher[T]) matchVisualize() ([]Match[T], *visualizer) {
	vis := newVisualizer()
	keys := m.renamedKeys()
	byText := newMultiMap[string, token.Pos]()

	// Apply rules (order matters)
	for _, v := range m.all() {
		m.ruleText(v, keys, byText, vis)
	}
	m.ruleDuplicateText(byText, vis)
	m.ruleDuplicateValue(vis)

	var matches []Match[T]
	for _, v := range m.all() {
		if r, ok := vis.get(v.Pos()); ok && !r.skipped {
			matches = append(matches, Match[T]{Variant: v, Text: r.text})
		}
	}
	return matches, vis
}

// all returns the variants in declaration order.
func (m *Matcher[T]) all() []T {
	vs := make([]T, 0, m.variants.Size())
	for it := m.variants.Iterator(); it.Next(); {
		vs = append(vs, it.Value().(T))
	}
	return vs
}

// renamedKeys applies the renaming rules to the names of variants which are
// not skipped. Common parts are found among those variants.
func (m *Matcher[T]) renamedKeys() map[token.Pos]string {
	if len(m.renamers) == 0 {
		return nil
	}

	var vs []T
	for _, v := range m.all() {
		if _, ok := m.skipped[v.Pos()]; !ok {
			vs = append(vs, v)
		}
	}

	keys := make([]string, len(vs))
	for i, v := range vs {
		keys[i] = v.Name()
	}

	for i, rename := range m.renamers {
		var common string
		if find := m.commonFinders[i]; find != nil && len(keys) > 1 {
			common = find(keys)
		}
		for j := range keys {
			keys[j] = rename(keys[j], common)
		}
	}

	byPos := make(map[token.Pos]string, len(vs))
	for i, v := range vs {
		byPos[v.Pos()] = keys[i]
	}
	return byPos
}

// ruleText decides the text of a variant:
//   - serenum.Skip -> ok: skipped, or FAIL if a text is also given
//   - serenum.Text -> ok: explicit text
//   - renaming rules -> ok: renamed text, or FAIL if it is empty
//   - otherwise -> FAIL: missing text
func (m *Matcher[T]) ruleText(v T, keys map[token.Pos]string, byText *multiMap[string, token.Pos], vis *visualizer) {
	pos := v.Pos()

	if at, ok := m.skipped[pos]; ok {
		if t, ok := m.texts[pos]; ok {
			reason := codefmt.Sprintf(m, "ineffective skip at %b", at)
			vis.put(pos, row{name: v.Name(), text: t.s, hasText: true, skipped: true, reason: reason})
			return
		}
		reason := codefmt.Sprintf(m, "skipped at %b", at)
		vis.put(pos, row{name: v.Name(), ok: true, skipped: true, reason: reason})
		return
	}

	if t, ok := m.texts[pos]; ok {
		vis.put(pos, row{name: v.Name(), text: t.s, hasText: true, ok: true})
		byText.Add(t.s, pos)
		return
	}

	if key, ok := keys[pos]; ok {
		if key == "" {
			vis.put(pos, row{name: v.Name(), hasText: true, reason: "empty text"})
			return
		}
		vis.put(pos, row{name: v.Name(), text: key, hasText: true, ok: true})
		byText.Add(key, pos)
		return
	}

	vis.put(pos, row{name: v.Name(), reason: "missing text"})
}

// ruleDuplicateText fails variants sharing a text with a preceding variant.
// Parsing a text must result in a single variant.
func (m *Matcher[T]) ruleDuplicateText(byText *multiMap[string, token.Pos], vis *visualizer) {
	first := make(map[string]string)
	for s, pos := range byText.All() {
		r, _ := vis.get(pos)
		name, ok := first[s]
		if !ok {
			first[s] = r.name
			continue
		}
		r.ok = false
		r.reason = "duplicate text of " + name
		vis.put(pos, r)
	}
}

// ruleDuplicateValue fails variants having the same value as a preceding
// variant. Such variants are indistinguishable at run time.
func (m *Matcher[T]) ruleDuplicateValue(vis *visualizer) {
	first := linkedhashmap.New() // exact value -> variant name
	for _, v := range m.all() {
		r, ok := vis.get(v.Pos())
		if !ok || r.skipped || v.Val() == nil {
			continue
		}

		val := v.Val().ExactString()
		name, ok := first.Get(val)
		if !ok {
			first.Put(val, v.Name())
			continue
		}
		if !r.ok {
			continue
		}
		r.ok = false
		r.reason = "same value as " + name.(string)
		vis.put(v.Pos(), r)
	}
}

// quote formats a text for the table.
func quote(s string) string { return strconv.Quote(s) }
