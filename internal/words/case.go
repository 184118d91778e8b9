package words

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	lower = cases.Lower(language.Und)
	upper = cases.Upper(language.Und)
)

// join splits s into words, drops underscore separators, converts each word
// by conv, and joins them with sep.
func join(s, sep string, conv cases.Caser) string {
	var parts []string
	for _, w := range Split(s) {
		if isSeparator(w) {
			continue
		}
		parts = append(parts, conv.String(w))
	}
	return strings.Join(parts, sep)
}

// Snake converts an identifier to snake_case: "InProgress" -> "in_progress".
func Snake(s string) string { return join(s, "_", lower) }

// Kebab converts an identifier to kebab-case: "InProgress" -> "in-progress".
func Kebab(s string) string { return join(s, "-", lower) }

// UpperSnake converts an identifier to UPPER_SNAKE_CASE: "InProgress" ->
// "IN_PROGRESS".
func UpperSnake(s string) string { return join(s, "_", upper) }

// LowerCamel lowercases the first word of an identifier: "HTTPMethod" ->
// "httpMethod".
func LowerCamel(s string) string {
	ws := Split(s)
	if len(ws) == 0 {
		return s
	}
	ws[0] = lower.String(ws[0])
	return strings.Join(ws, "")
}
