package redact

import "testing"

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "standard", in: "user@example.com", want: "u**r@example.com"},
		{name: "two-char local", in: "ab@example.com", want: "a*@example.com"},
		{name: "three-char local", in: "bob@corp.io", want: "b*b@corp.io"},
		{name: "long local", in: "john.doe@example.com", want: "j******e@example.com"},
		{name: "single-char local", in: "u@example.com", want: "u@example.com"},
		{name: "trim spaces", in: "  user@example.com  ", want: "u**r@example.com"},
		{name: "no at sign", in: "weird", want: "****d"},
		{name: "bare domain", in: "@example.com", want: "@*******.**m"},
		{name: "empty", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskEmail(tt.in); got != tt.want {
				t.Fatalf("MaskEmail(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMaskPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain digits", in: "+1234567890", want: "+******7890"},
		{name: "formatted", in: "1 (800) 233-2010", want: "* (***) ***-2010"},
		{name: "exactly four digits", in: "1234", want: "***4"},
		{name: "three digits", in: "123", want: "**3"},
		{name: "one digit", in: "1", want: "1"},
		{name: "trim spaces", in: "  +1234  ", want: "+***4"},
		{name: "no digits", in: "AB-CD", want: "**-*D"},
		{name: "only separators", in: "()-", want: "()-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskPhone(tt.in); got != tt.want {
				t.Fatalf("MaskPhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
