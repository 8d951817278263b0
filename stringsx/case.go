package stringsx

import (
	"unicode"
	"unicode/utf8"
)

// ToLowerInitial lowercases the first rune of s and leaves the rest
// unchanged. Multi-byte leading runes are handled correctly. The empty
// string is returned as-is.
func ToLowerInitial(s string) string {
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToLower(r)) + s[size:]
}

// ToUpperInitial uppercases the first rune of s and leaves the rest
// unchanged. Mirror of ToLowerInitial.
func ToUpperInitial(s string) string {
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToUpper(r)) + s[size:]
}
