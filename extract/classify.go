package extract

import (
	"regexp"
	"strings"
)

// Classification patterns are compiled once at package init and shared by
// every caller. Compiled patterns are immutable and safe for concurrent use.
var (
	// emailSuffixRE checks the domain-side shape of a token: an '@'
	// followed by word characters, a dot and a final word-character run
	// anchored at the end of the token. The local part is not validated,
	// so bare "@example.com" tokens pass.
	emailSuffixRE = regexp.MustCompile(`@\w+\.\w+$`)

	// phoneRE matches a North-American number anywhere inside a token:
	// optional +1 country code, a 3-digit area code optionally in
	// parentheses, a 3-digit exchange code and a 4-digit subscriber
	// number, with optional space, dot or hyphen separators.
	phoneRE = regexp.MustCompile(`(?:\+?1)?[\s.]?(?:[2-9]\d{2}|\([2-9]\d{2}\))[\s.-]?[2-9]\d{2}[\s.-]?\d{4}`)
)

// IsEmail reports whether token plausibly holds an email address. A token
// with more than one '@' is never an email; otherwise only the domain
// suffix shape is checked.
func IsEmail(token string) bool {
	if strings.Count(token, "@") > 1 {
		return false
	}
	return emailSuffixRE.MatchString(token)
}

// IsPhone reports whether token contains a North-American-style phone
// number. Extra leading or trailing characters around the number do not
// disqualify the token.
func IsPhone(token string) bool {
	return phoneRE.MatchString(token)
}
