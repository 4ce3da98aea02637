package contactutil

import (
	"slices"
	"strings"
)

// NormalizeEmail lowercases an e-mail and trims surrounding whitespace.
// It does not validate the format, it only normalizes.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeE164 normalizes a phone in E.164 form — trim only.
// Validation and formatting are expected to happen further up the stack.
func NormalizeE164(s string) string {
	return strings.TrimSpace(s)
}

// SortUnique sorts values ascending and removes adjacent duplicates in
// place. The returned slice aliases the input.
func SortUnique(values []string) []string {
	slices.Sort(values)
	return slices.Compact(values)
}
