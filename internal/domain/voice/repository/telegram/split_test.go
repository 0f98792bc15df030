package telegram

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSplitMessage(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{
			name:  "short text is untouched",
			text:  "hallo welt",
			limit: 20,
			want:  []string{"hallo welt"},
		},
		{
			name:  "splits on lines",
			text:  "erste zeile\nzweite zeile\ndritte",
			limit: 25,
			want:  []string{"erste zeile\nzweite zeile", "dritte"},
		},
		{
			name:  "splits long line on spaces",
			text:  "aaaa bbbb cccc dddd",
			limit: 10,
			want:  []string{"aaaa bbbb", "cccc dddd"},
		},
		{
			name:  "hard split without spaces",
			text:  "abcdefghij",
			limit: 4,
			want:  []string{"abcd", "efgh", "ij"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitMessage(tt.text, tt.limit))
		})
	}
}

func TestSplitMessage_KeepsRunesIntact(t *testing.T) {
	text := strings.Repeat("ä", 10)

	parts := splitMessage(text, 3)

	assert.Len(t, parts, 4)
	for _, p := range parts {
		assert.True(t, utf8.ValidString(p))
		assert.LessOrEqual(t, utf8.RuneCountInString(p), 3)
	}
	assert.Equal(t, text, strings.Join(parts, ""))
}
