// Package words splits identifiers into words and derives names from them.
// It is used by renaming rules and by default constant names.
package words

// Split splits a string into words based on character transitions. It detects
// word boundaries at:
//   - Uppercase letter after lowercase letter: "getID" -> "get" + "ID"
//   - Uppercase letter before lowercase letter: "JSONParser" -> "JSON" + "Parser"
//   - Around underscores: "send_nowait" -> "send" + "_" + "nowait"
//   - Around digits: "file2name" -> "file" + "2" + "name"
func Split(s string) []string {
	var words []string
	i := 0
	for i < len(s) {
		split := false

		j := i + 1
		for ; j < len(s); j++ {
			var next byte
			if j != len(s)-1 {
				next = s[j+1]
			}

			if isBoundary(s[j-1], s[j], next) {
				words = append(words, s[i:j])
				i = j
				split = true
				break
			}
		}

		if !split {
			words = append(words, s[i:])
			break
		}
	}
	return words
}

func isLower(c byte) bool  { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool  { return c >= 'A' && c <= 'Z' }
func isLetter(c byte) bool { return isLower(c) || isUpper(c) }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }

// isBoundary detects word boundaries based on character transitions.
func isBoundary(prev, curr, next byte) bool {
	switch {
	case isLower(prev) && isUpper(curr):
		// getID
		//    ^
		return true
	case isUpper(curr) && isLower(next):
		// JSONParser
		//     ^
		return true
	case prev != '_' && curr == '_', prev == '_' && curr != '_':
		// send_nowait
		//     ^^
		return true
	case isLetter(prev) && isDigit(curr), isDigit(prev) && isLetter(curr):
		// file2name
		//     ^^
		return true
	}
	return false
}

// isSeparator reports whether the word consists of underscores only.
func isSeparator(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] != '_' {
			return false
		}
	}
	return true
}
