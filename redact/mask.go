package redact

import (
	"strings"
	"unicode"
)

// MaskEmail hides the middle of an e-mail local part while keeping minimal
// visibility. The first and last rune of the local part stay visible, the
// domain is untouched.
//
//	"user@example.com" -> "u**r@example.com"
//	"ab@example.com"   -> "a*@example.com"
//	"u@example.com"    -> "u@example.com"  (single rune, nothing to hide)
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}

	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return maskToken(email)
	}

	local := []rune(email[:at])
	domain := email[at:] // includes '@'
	switch len(local) {
	case 1:
		return string(local) + domain
	case 2:
		return string(local[0]) + "*" + domain
	}

	var b strings.Builder
	b.Grow(at + len(domain))
	b.WriteRune(local[0])
	for range local[1 : len(local)-1] {
		b.WriteByte('*')
	}
	b.WriteRune(local[len(local)-1])
	b.WriteString(domain)
	return b.String()
}

// MaskPhone hides all but the trailing digits of a phone value, preserving
// separators and formatting symbols. Values with more than four digits keep
// the last four, shorter ones keep a single digit.
//
//	"+1234567890"      -> "+******7890"
//	"1 (800) 233-2010" -> "* (***) ***-2010"
//	"123"              -> "**3"
func MaskPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}
	return maskDigits(phone)
}

// maskDigits masks all digits except the last four (or the last one when
// the value has four digits or fewer). Non-digit runes pass through.
func maskDigits(s string) string {
	runes := []rune(s)

	totalDigits := 0
	for _, r := range runes {
		if unicode.IsDigit(r) {
			totalDigits++
		}
	}
	if totalDigits == 0 {
		return maskToken(s)
	}

	keep := 4
	if totalDigits <= 4 {
		keep = 1
	}

	seen := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if unicode.IsDigit(runes[i]) {
			seen++
			if seen > keep {
				runes[i] = '*'
			}
		}
	}
	return string(runes)
}

// maskToken masks letters and digits of a token without contact structure,
// keeping the last significant rune visible.
func maskToken(s string) string {
	runes := []rune(s)

	total := 0
	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			total++
		}
	}
	if total == 0 {
		return string(runes)
	}

	seen := 0
	for i := len(runes) - 1; i >= 0; i-- {
		r := runes[i]
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			seen++
			if seen > 1 {
				runes[i] = '*'
			}
		}
	}
	return string(runes)
}
