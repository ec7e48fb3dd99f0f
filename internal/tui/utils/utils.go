// Package utils provides shared utility functions for the TUI.
package utils

import (
	"github.com/mattn/go-runewidth"
)

// TruncateString truncates a string to the given width, appending "…" if truncated.
// It handles wide characters correctly using runewidth.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// TruncateStart keeps the end of a string, prefixing "…" if truncated.
// Used for text being typed, where the end is what matters.
func TruncateStart(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}

	runes := []rune(s)
	w := 0
	i := len(runes)
	for i > 0 {
		rw := runewidth.RuneWidth(runes[i-1])
		if w+rw > width-1 { // -1 for ellipsis
			break
		}
		w += rw
		i--
	}
	return "…" + string(runes[i:])
}
