// Package args groups raw command-line tokens into display-friendly arguments.
package args

import "strings"

// Normalize turns a flat argument list into logical argument groups.
//
// Every token is first split on interior spaces so that shell-quoted values are
// broken back into separate tokens. A flag (a token starting with "-") then
// absorbs the token immediately after it, provided that token is not a flag
// and the flag itself was not produced by a merge in the previous step:
//
//	["-f", "value"]       → ["-f value"]
//	["-f", "-g", "value"] → ["-f", "-g value"]
//	["a", "b"]            → ["a", "b"]
//
// The grouping is purely positional; it knows nothing about how many values a
// flag accepts. Values that contain literal spaces are split on every pass.
func Normalize(raw []string) []string {
	result := []string{}
	previousCollapsed := false

	for _, token := range split(raw) {
		if n := len(result); n > 0 {
			last := result[n-1]
			if !isFlag(token) && isFlag(last) && !previousCollapsed {
				result[n-1] = last + " " + token
				previousCollapsed = true
				continue
			}
		}

		previousCollapsed = false
		result = append(result, token)
	}

	return result
}

// Join renders a command and its arguments as a single command line.
func Join(name string, arguments []string) string {
	return name + " " + strings.Join(arguments, " ")
}

// Fields flattens display groups back into process arguments, so that
// "-l /tmp" is passed to the program as "-l" and "/tmp".
func Fields(arguments []string) []string {
	fields := split(arguments)
	if fields == nil {
		return []string{}
	}
	return fields
}

func split(raw []string) []string {
	var tokens []string
	for _, arg := range raw {
		for _, part := range strings.Split(arg, " ") {
			// Consecutive spaces would otherwise yield empty arguments.
			if part == "" {
				continue
			}
			tokens = append(tokens, part)
		}
	}
	return tokens
}

func isFlag(s string) bool {
	return strings.HasPrefix(s, "-")
}
