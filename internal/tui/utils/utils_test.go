package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		width    int
		expected string
	}{
		{"fits", "-l /tmp", 10, "-l /tmp"},
		{"exact", "abcde", 5, "abcde"},
		{"truncated", "abcdefgh", 5, "abcd…"},
		{"zero width", "abc", 0, ""},
		{"wide characters", "日本語テキスト", 7, "日本語…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateString(tt.s, tt.width))
		})
	}
}

func TestTruncateStart(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		width    int
		expected string
	}{
		{"fits", "abc", 3, "abc"},
		{"keeps the tail", "abcdefgh", 5, "…efgh"},
		{"width one", "abc", 1, "…"},
		{"zero width", "abc", 0, ""},
		{"wide characters", "日本語テキスト", 7, "…キスト"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateStart(tt.s, tt.width))
		})
	}
}
