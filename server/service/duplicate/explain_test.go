package duplicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplain(t *testing.T) {
	tests := []struct {
		name  string
		kind  MatchKind
		score float64
		want  string
	}{
		{name: "Exact", kind: MatchKindExact, score: 1.0, want: "Exact match"},
		{name: "Typo", kind: MatchKindTypo, score: 0.95, want: "Similar name (possible typo), 95% similar"},
		{name: "TypoRoundsScore", kind: MatchKindTypo, score: 0.846, want: "Similar name (possible typo), 85% similar"},
		{name: "Semantic", kind: MatchKindSemantic, score: 0.72, want: "Similar meaning, 72% confidence"},
		{name: "None", kind: matchKindNone, score: 0.1, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Explain(tt.kind, tt.score))
		})
	}
}
