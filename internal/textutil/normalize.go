package textutil

import "strings"

// Normalize collapses any run of whitespace (spaces, tabs, newlines) inside
// s to a single space and trims leading and trailing whitespace. Applying it
// twice yields the same result as applying it once.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitList splits s on sep, normalizes every token, and drops tokens that
// normalize to the empty string. Order and duplicates are preserved; callers
// that need dedup do it at a later stage. An empty or all-separator input
// yields a nil slice, never an error.
func SplitList(s string, sep string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := Normalize(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}
