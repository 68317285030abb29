// Package timeout defines centralized timeout constants for AI operations.
package timeout

import "time"

const (
	// SimilarityTimeout bounds a single semantic similarity call so a slow
	// provider degrades semantic results instead of stalling the check.
	SimilarityTimeout = 300 * time.Millisecond

	// EmbeddingTimeout is the timeout for embedding generation.
	EmbeddingTimeout = 30 * time.Second

	// EmbedConcurrency limits concurrent embedding requests against the API.
	EmbedConcurrency = 3
)
