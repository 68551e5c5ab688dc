package models

import "strings"

// SplitSideEffects parses the comma-delimited side effects column into an
// ordered list: segments are trimmed and empty segments dropped. An empty or
// blank field yields an empty list.
func SplitSideEffects(s string) []string {
	effects := []string{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			effects = append(effects, part)
		}
	}
	return effects
}

// JoinSideEffects is the inverse of SplitSideEffects.
func JoinSideEffects(effects []string) string {
	return strings.Join(effects, ", ")
}
