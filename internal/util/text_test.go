package util

import "testing"

func TestCleanField(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain utf8",
			input: "Arnhem",
			want:  "Arnhem",
		},
		{
			name:  "surrounding whitespace",
			input: "  6812AR \t",
			want:  "6812AR",
		},
		{
			name:  "contains null byte",
			input: "S\x001",
			want:  "S1",
		},
		{
			name:  "contains invalid utf8",
			input: string([]byte{'a', 0xff, 'b'}),
			want:  "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanField(tt.input)
			if got != tt.want {
				t.Fatalf("unexpected cleaned value: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripQuotes(t *testing.T) {
	if got := StripQuotes("'871234560000000001"); got != "871234560000000001" {
		t.Fatalf("got %q", got)
	}
	if got := StripQuotes("'190'000'"); got != "190'000" {
		t.Fatalf("got %q", got)
	}
}

func TestStripHouseNumberSuffix(t *testing.T) {
	tests := map[string]string{
		"12 ELP":  "12",
		"12a ELP": "12a",
		"12":      "12",
		"ELP":     "ELP",
	}
	for in, want := range tests {
		if got := StripHouseNumberSuffix(in); got != want {
			t.Fatalf("StripHouseNumberSuffix(%q) = %q, want %q", in, got, want)
		}
	}
}
