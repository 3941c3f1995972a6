package normalization

import (
	"strings"
)

func ParseInputString(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// ParseDisplayString trims but keeps casing, for names and free-form
// profile fields.
func ParseDisplayString(input string) string {
	return strings.TrimSpace(input)
}
