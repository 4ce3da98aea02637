package extract

import "regexp"

// emailScanRE recognizes email-shaped substrings in running text. It is
// broader on the local part than the token check and does not depend on
// whitespace boundaries, which lets it pick up addresses glued to
// punctuation.
var emailScanRE = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// ScanEmails returns every email-shaped substring of text in match order,
// duplicates included. Callers that need set semantics should pass the
// result through contactutil.SortUnique.
func ScanEmails(text string) []string {
	return emailScanRE.FindAllString(text, -1)
}
