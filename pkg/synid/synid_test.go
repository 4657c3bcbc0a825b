package synid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsID(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"syn123", true},
		{"syn1", true},
		{"syn", false},
		{"syn12a", false},
		{"xsyn12", false},
		{"123", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsID(tt.in))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{name: "plain", in: "syn42", want: "syn42", wantOK: true},
		{name: "versioned", in: "syn42.3", want: "syn42", wantOK: true},
		{name: "padded", in: "  syn7 ", want: "syn7", wantOK: true},
		{name: "not_an_id", in: "folder", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWikiLink(t *testing.T) {
	assert.Equal(t, "syn1/wiki/5", WikiLink("syn1", "5"))
	assert.True(t, WikiLinkPattern.MatchString(WikiLink("syn1", "5")))
}
