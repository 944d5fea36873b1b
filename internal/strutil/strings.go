package strutil

import (
	"strings"
	"unicode"
)

// RemoveExtraSpaces collapses runs of whitespace into one space and trims the string.
// For example RemoveExtraSpaces("\n  hello  world  ") return "hello world"
func RemoveExtraSpaces(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}
