package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent lowercases s and drops separators, so that "created_date",
// "createdDate" and "CreatedDate" compare equal.
func NormalizeIdent(s string) string {
	return strings.Map(func(r rune) rune {
		if isSeparator(r) {
			return -1
		}

		return unicode.ToLower(r)
	}, s)
}

// TokenizeIdent splits s on separators and case changes into lowercase
// words: "getHTTPResponse" gives get, http, response.
func TokenizeIdent(s string) []string {
	var tokens []string
	for _, word := range strings.FieldsFunc(s, isSeparator) {
		tokens = append(tokens, splitCamel(word)...)
	}

	return tokens
}

func splitCamel(word string) []string {
	runes := []rune(word)

	var out []string

	start := 0

	for i := 1; i < len(runes); i++ {
		if !unicode.IsUpper(runes[i]) {
			continue
		}

		// A new word starts after a lowercase rune, or at the last capital
		// of an acronym ("XMLParser").
		nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
		if !unicode.IsUpper(runes[i-1]) || nextLower {
			out = append(out, strings.ToLower(string(runes[start:i])))
			start = i
		}
	}

	return append(out, strings.ToLower(string(runes[start:])))
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
