package words

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"
)

// CommonPrefix returns the longest common prefix of the strings in ss.
func CommonPrefix(ss []string) string {
	if len(ss) == 0 {
		return ""
	}

	// The common prefix of the lexicographically smallest and largest strings
	// is the common prefix of all.
	lo, hi := slices.Min(ss), slices.Max(ss)
	for i, r := range lo {
		if s, _ := utf8.DecodeRuneInString(hi[i:]); r != s {
			return lo[:i]
		}
	}
	return lo
}

// CommonSuffix returns the longest common suffix of the strings in ss.
func CommonSuffix(ss []string) string {
	reversed := make([]string, len(ss))
	for i, s := range ss {
		reversed[i] = reverse(s)
	}
	return reverse(CommonPrefix(reversed))
}

func reverse(s string) string {
	rs := []rune(s)
	slices.Reverse(rs)
	return string(rs)
}

// CommonWordPrefix returns the longest common prefix of the strings in ss based
// on word boundaries detected by [Split].
func CommonWordPrefix(ss []string) string {
	wss := make([][]string, len(ss))
	for i, s := range ss {
		wss[i] = Split(s)
	}
	return strings.Join(commonWords(wss), "")
}

// CommonWordSuffix returns the longest common suffix of the strings in ss based
// on word boundaries detected by [Split].
func CommonWordSuffix(ss []string) string {
	wss := make([][]string, len(ss))
	for i, s := range ss {
		ws := Split(s)
		slices.Reverse(ws)
		wss[i] = ws
	}
	suffix := commonWords(wss)
	slices.Reverse(suffix)
	return strings.Join(suffix, "")
}

// commonWords returns the longest common leading words of word lists.
func commonWords(wss [][]string) []string {
	if len(wss) == 0 {
		return nil
	}

	compare := func(a, b []string) int {
		for i := range min(len(a), len(b)) {
			if c := cmp.Compare(a[i], b[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(a), len(b))
	}

	lo := slices.MinFunc(wss, compare)
	hi := slices.MaxFunc(wss, compare)
	for i := range lo {
		if lo[i] != hi[i] {
			return lo[:i]
		}
	}
	return lo
}
