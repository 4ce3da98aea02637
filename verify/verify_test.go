package verify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vortex-fintech/contact-extract/verify"
)

func TestEmail(t *testing.T) {
	assert.True(t, verify.Email("user@example.com"))
	assert.True(t, verify.Email("my.email+1@example.com"))

	// Shapes the permissive extractor accepts but strict validation rejects.
	assert.False(t, verify.Email("@example.com"))
	assert.False(t, verify.Email("wrong@email@example.com"))
	assert.False(t, verify.Email("no-at-sign.example.com"))
	assert.False(t, verify.Email(""))
}

func TestE164(t *testing.T) {
	assert.True(t, verify.E164("+18005551234"))
	assert.True(t, verify.E164("+868005551234"))

	assert.False(t, verify.E164("18005551234"))
	assert.False(t, verify.E164("+800"))
	assert.False(t, verify.E164(""))
}

func TestFilterEmails(t *testing.T) {
	in := []string{"@example.com", "alice@a.com", "zed@z.com"}
	assert.Equal(t, []string{"alice@a.com", "zed@z.com"}, verify.FilterEmails(in))

	assert.Empty(t, verify.FilterEmails(nil))
	assert.Empty(t, verify.FilterEmails([]string{"@example.com"}))
}

func TestFilterPhoneNums(t *testing.T) {
	in := []string{"1 (800) 233-2010", "(800)", "+86 800 555 1234"}
	assert.Equal(t, []string{"1 (800) 233-2010", "+86 800 555 1234"}, verify.FilterPhoneNums(in))

	assert.Empty(t, verify.FilterPhoneNums(nil))
	assert.Empty(t, verify.FilterPhoneNums([]string{"abc", ""}))
}
