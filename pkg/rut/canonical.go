package rut

import (
	"strings"
	"unicode"
)

// clean is the single filtering primitive behind Canonicalize, Format and
// Validate: it drops every rune for which drop reports true and uppercases
// the rest.
func clean(s string, drop func(r rune) bool) string {
	return strings.Map(func(r rune) rune {
		if drop(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, s)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func notSignificant(r rune) bool {
	return !isDigit(r) && r != 'K' && r != 'k'
}

func isSeparator(r rune) bool {
	return r == '.' || r == '-'
}

// Canonicalize reduces input to its significant characters: ASCII digits and
// K. Any k is uppercased. The result is not validated and may be empty, lack
// a verifier or have a short body.
//
// Example:
//
//	Canonicalize("12.345.678-k") // "12345678K"
func Canonicalize(input string) string {
	return clean(input, notSignificant)
}
