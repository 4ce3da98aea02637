package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// FoldNFKC applies NFKC compatibility normalization, mapping fullwidth and
// other compatibility variants of letters, digits and punctuation to their
// canonical ASCII forms.
func FoldNFKC(s string) string {
	return norm.NFKC.String(s)
}

// CollapseSpace trims s and collapses every run of Unicode whitespace into
// a single space.
func CollapseSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevSpace := false
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsSpace(r) {
			if !prevSpace {
				b.WriteByte(' ')
				prevSpace = true
			}
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
