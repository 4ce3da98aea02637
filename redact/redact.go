// Package redact masks contact details in running text while preserving
// the surrounding formatting.
package redact

import "regexp"

// Redaction works on the raw text for both kinds: unlike detection, masking
// wants maximum recall for phones too, so both patterns scan the whole text.
var (
	emailRE = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRE = regexp.MustCompile(`(?:\+?1)?[\s.]?(?:[2-9]\d{2}|\([2-9]\d{2}\))[\s.-]?[2-9]\d{2}[\s.-]?\d{4}`)
)

// Text masks every email address and phone-shaped substring in text.
// Emails keep the first and last rune of the local part and the full
// domain; phone numbers keep their separators and the last four digits.
// Everything else is returned unchanged.
func Text(text string) string {
	out := emailRE.ReplaceAllStringFunc(text, MaskEmail)
	// maskDigits instead of MaskPhone: a match may start with a separator
	// that must survive the replacement.
	return phoneRE.ReplaceAllStringFunc(out, maskDigits)
}
