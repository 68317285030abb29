package duplicate

import "strings"

// Normalize canonicalizes a field name for comparison: lower-case, runs of
// whitespace collapsed to single spaces, leading/trailing whitespace
// trimmed. Every matcher compares normalized forms so exact equality and
// edit distance can never disagree about the same pair.
func Normalize(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
