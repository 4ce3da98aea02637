// Package verify offers precision-mode checks over extractor candidates.
//
// The extract package trades precision for recall on purpose. Callers that
// need the opposite tradeoff can pass its output through these filters.
package verify

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

var nonDigitRE = regexp.MustCompile(`\D`)

// Email reports whether s is a well-formed e-mail address.
func Email(s string) bool {
	return v.Var(s, "required,email") == nil
}

// E164 reports whether s is a strict E.164 phone number: a '+' followed by
// up to fifteen digits.
func E164(s string) bool {
	return v.Var(s, "required,e164") == nil
}

// FilterEmails keeps only the well-formed addresses, preserving order.
func FilterEmails(candidates []string) []string {
	var out []string
	for _, c := range candidates {
		if Email(c) {
			out = append(out, c)
		}
	}
	return out
}

// FilterPhoneNums keeps only candidates whose digits form a valid E.164
// number, preserving order and original formatting. Ten-digit candidates
// are assumed to be NANP numbers.
func FilterPhoneNums(candidates []string) []string {
	var out []string
	for _, c := range candidates {
		if E164(toE164(c)) {
			out = append(out, c)
		}
	}
	return out
}

// toE164 strips formatting and prefixes the country code: ten digits get
// "+1", longer runs keep their own leading code.
func toE164(s string) string {
	digits := nonDigitRE.ReplaceAllString(s, "")
	switch {
	case digits == "":
		return ""
	case len(digits) == 10:
		return "+1" + digits
	default:
		return "+" + digits
	}
}
