// Package extract finds probable email addresses and North-American phone
// numbers in unstructured text.
//
// Both lookups are pure functions over their input: no state survives a
// call, any string is accepted, and text without matches yields an empty
// result rather than an error.
package extract

import (
	"strings"

	"github.com/vortex-fintech/contact-extract/foundation/contactutil"
)

// FindEmails returns the distinct email-shaped substrings of text,
// lowercased and sorted ascending.
//
// Two passes feed the result: a strict per-token check over the
// whitespace-split text, and a whole-text scan that catches addresses the
// token check misses (trailing punctuation, unusual local parts). The
// union is lowercased before the final sort so case-insensitive duplicates
// collapse.
func FindEmails(text string) []string {
	var emails []string
	for _, token := range strings.Fields(text) {
		if IsEmail(token) {
			emails = append(emails, token)
		}
	}

	emails = append(emails, contactutil.SortUnique(ScanEmails(text))...)

	for i, e := range emails {
		emails[i] = strings.ToLower(e)
	}
	return contactutil.SortUnique(emails)
}

// FindPhoneNums returns the distinct whitespace-delimited tokens of text
// that contain a phone-number shape, sorted ascending. Tokens keep their
// original punctuation and spacing. There is no whole-text second pass for
// phone numbers.
func FindPhoneNums(text string) []string {
	var nums []string
	for _, token := range strings.Fields(text) {
		if IsPhone(token) {
			nums = append(nums, token)
		}
	}
	return contactutil.SortUnique(nums)
}
