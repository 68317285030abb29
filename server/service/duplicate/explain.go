package duplicate

import (
	"fmt"
	"math"
)

// Explain renders the human-readable reason for a match. The wording is
// derived only from kind and score so explanations stay stable and
// testable regardless of which backend scored the pair.
func Explain(kind MatchKind, score float64) string {
	percent := int(math.Round(score * 100))

	switch kind {
	case MatchKindExact:
		return "Exact match"
	case MatchKindTypo:
		return fmt.Sprintf("Similar name (possible typo), %d%% similar", percent)
	case MatchKindSemantic:
		return fmt.Sprintf("Similar meaning, %d%% confidence", percent)
	default:
		return ""
	}
}
