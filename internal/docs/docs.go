// Package docs fetches reference documentation for shell commands.
package docs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-shellwords"
)

// Unavailable is shown when no documentation could be found.
const Unavailable = "No Documentation Available"

// Lookup fetches reference documentation for a command name.
type Lookup interface {
	Fetch(ctx context.Context, command string) (string, error)
}

// ManLookup runs an external documentation command, "man -P cat" by default,
// with the command name appended as its last argument.
type ManLookup struct {
	Command string
}

// NewManLookup creates a ManLookup for the given command line.
func NewManLookup(command string) *ManLookup {
	return &ManLookup{Command: command}
}

// Fetch implements Lookup. Whatever the tool wrote to stdout is returned
// alongside any error, since pagers often exit non-zero after printing.
func (l *ManLookup) Fetch(ctx context.Context, command string) (string, error) {
	parts, err := shellwords.Parse(l.Command)
	if err != nil {
		return "", fmt.Errorf("failed to parse docs command %q: %w", l.Command, err)
	}
	if len(parts) == 0 {
		return "", errors.New("docs command is empty")
	}

	parts = append(parts, command)
	out, err := exec.CommandContext(ctx, parts[0], parts[1:]...).Output()
	text := Clean(string(out))
	if err != nil {
		return text, fmt.Errorf("%s: %w", strings.Join(parts, " "), err)
	}
	return text, nil
}

// FetchOrSentinel fetches documentation and substitutes Unavailable for empty
// output. Lookup errors are logged, never returned.
func FetchOrSentinel(ctx context.Context, lookup Lookup, command string) string {
	text, err := lookup.Fetch(ctx, command)
	if err != nil {
		log.Printf("documentation lookup for %q failed: %v", command, err)
	}
	if strings.TrimSpace(text) == "" {
		return Unavailable
	}
	return text
}

// Clean decodes raw tool output for display: invalid UTF-8 is replaced,
// escape sequences and overstrike formatting are removed.
func Clean(raw string) string {
	text := strings.ToValidUTF8(raw, "�")
	text = ansi.Strip(text)
	text = removeOverstrike(text)
	return strings.ReplaceAll(text, "\r\n", "\n")
}

// removeOverstrike drops the "x\bx" (bold) and "_\bx" (underline) sequences
// nroff emits when formatting for a printer.
func removeOverstrike(s string) string {
	if !strings.ContainsRune(s, '\b') {
		return s
	}

	runes := []rune(s)
	out := make([]rune, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		if i+2 < len(runes) && runes[i+1] == '\b' {
			out = append(out, runes[i+2])
			i += 2
			continue
		}
		if runes[i] == '\b' {
			continue
		}
		out = append(out, runes[i])
	}
	return string(out)
}
