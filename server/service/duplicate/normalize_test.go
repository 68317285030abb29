package duplicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Lowercases", input: "Video Rating", want: "video rating"},
		{name: "TrimsWhitespace", input: "  Quality  ", want: "quality"},
		{name: "CollapsesRuns", input: "Video   \t Rating", want: "video rating"},
		{name: "EmptyIn", input: "", want: ""},
		{name: "WhitespaceOnly", input: " \t \n ", want: ""},
		{name: "AlreadyNormalized", input: "video rating", want: "video rating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}
