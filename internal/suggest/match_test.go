package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchDomain(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		text   string
		want   string
	}{
		{
			name:   "prefix of bare domain",
			domain: "example.com",
			text:   "exa",
			want:   "example.com/",
		},
		{
			name:   "full second-level label",
			domain: "mozilla.org",
			text:   "mozilla",
			want:   "mozilla.org/",
		},
		{
			name:   "bare TLD never completes",
			domain: "com",
			text:   "com",
			want:   "",
		},
		{
			name:   "TLD suffix alone is rejected",
			domain: "example.com",
			text:   "com",
			want:   "",
		},
		{
			name:   "text after www prefix",
			domain: "www.example.com",
			text:   "exa",
			want:   "example.com/",
		},
		{
			name:   "text including www prefix",
			domain: "www.example.com",
			text:   "www.exa",
			want:   "www.example.com/",
		},
		{
			name:   "match starts at a later label",
			domain: "mail.google.com",
			text:   "google",
			want:   "google.com/",
		},
		{
			name:   "mid-label text does not match",
			domain: "google.com",
			text:   "oogle",
			want:   "",
		},
		{
			name:   "case-insensitive text",
			domain: "example.com",
			text:   "EXA",
			want:   "example.com/",
		},
		{
			name:   "domain casing preserved in completion",
			domain: "Example.COM",
			text:   "exa",
			want:   "Example.COM/",
		},
		{
			name:   "domain with path returned as-is",
			domain: "example.com/news",
			text:   "exa",
			want:   "example.com/news",
		},
		{
			name:   "text spanning a label boundary",
			domain: "example.com",
			text:   "example.c",
			want:   "example.com/",
		},
		{
			name:   "no occurrence",
			domain: "example.com",
			text:   "xyz",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchDomain(tt.domain, tt.text))
		})
	}
}
