package domain

import (
	"strings"
)

// NormalizeEmail trims whitespace and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeSet trims each value, drops empty ones and collapses duplicates,
// keeping the first occurrence order. Returns a non-nil slice.
func NormalizeSet(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// HasNUL reports whether s contains a NUL character, which text columns reject.
func HasNUL(s string) bool {
	return strings.IndexByte(s, 0) >= 0
}
