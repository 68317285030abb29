package duplicate

import (
	"time"

	"github.com/fieldsense/fieldsense/plugin/ai/timeout"
)

// Default thresholds. These are product-tuned values, kept on Config so
// deployments can adjust them without touching the engine.
const (
	// DefaultTypoFloor is the minimum edit-distance similarity for a name
	// to count as a likely typo. Below it, different wording is more
	// likely than a misspelling and semantic matching is the better signal.
	DefaultTypoFloor = 0.80

	// DefaultTypoCeiling caps the typo band. Edit-distance similarity
	// above it implies identity after normalization, which the exact
	// matcher already owns.
	DefaultTypoCeiling = 0.99

	// DefaultSemanticFloor is the minimum semantic score reported at all.
	// It doubles as the overall reporting floor for the ranked output.
	DefaultSemanticFloor = 0.60

	// DefaultMaxResults bounds the ranked output so a user typing a name
	// is not flooded with suggestions.
	DefaultMaxResults = 3
)

// Config contains the tunable knobs of the duplicate detector.
type Config struct {
	TypoFloor     float64
	TypoCeiling   float64
	SemanticFloor float64
	MaxResults    int

	// ProviderTimeout bounds each semantic similarity call.
	ProviderTimeout time.Duration

	// Concurrency limits parallel per-field scoring.
	Concurrency int64
}

// DefaultConfig returns the default detector configuration.
func DefaultConfig() Config {
	return Config{
		TypoFloor:       DefaultTypoFloor,
		TypoCeiling:     DefaultTypoCeiling,
		SemanticFloor:   DefaultSemanticFloor,
		MaxResults:      DefaultMaxResults,
		ProviderTimeout: timeout.SimilarityTimeout,
		Concurrency:     4,
	}
}
