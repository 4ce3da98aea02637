package redact

import "testing"

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "email and phone",
			in:   "ping bob@corp.io or 18005551234.",
			want: "ping b*b@corp.io or *******1234.",
		},
		{
			name: "phone with separators kept",
			in:   "call 800 233 2010 now",
			want: "call *** *** 2010 now",
		},
		{
			name: "email glued to punctuation",
			in:   "see (john.doe@example.com)!",
			want: "see (j******e@example.com)!",
		},
		{
			name: "nothing to mask",
			in:   "no contacts here",
			want: "no contacts here",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.in); got != tt.want {
				t.Fatalf("Text(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
