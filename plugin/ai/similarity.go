package ai

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/fieldsense/fieldsense/plugin/ai/cache"
)

// SimilarityProvider scores the semantic closeness of two short texts.
// Implementations return a score in [0, 1]; callers must treat any error
// as "no score" rather than a failure of the overall check.
type SimilarityProvider interface {
	Similarity(ctx context.Context, a, b string) (float64, error)
}

// embeddingSimilarity computes similarity from embedding vectors via
// cosine similarity, normalized into [0, 1].
type embeddingSimilarity struct {
	embedder EmbeddingService
	vectors  *cache.VectorCache
}

// NewEmbeddingSimilarity creates a SimilarityProvider on top of an
// embedding service. Vectors are cached so repeated checks against the
// same names (a user typing, a stable field set) do not re-embed.
func NewEmbeddingSimilarity(embedder EmbeddingService) SimilarityProvider {
	return &embeddingSimilarity{
		embedder: embedder,
		vectors:  cache.NewVectorCache(512, 10*time.Minute),
	}
}

func (s *embeddingSimilarity) Similarity(ctx context.Context, a, b string) (float64, error) {
	va, err := s.embed(ctx, a)
	if err != nil {
		return 0, err
	}
	vb, err := s.embed(ctx, b)
	if err != nil {
		return 0, err
	}

	cos, err := CosineSimilarity(va, vb)
	if err != nil {
		return 0, err
	}

	// Cosine is in [-1, 1]; shift into [0, 1].
	return (cos + 1) / 2, nil
}

func (s *embeddingSimilarity) embed(ctx context.Context, text string) ([]float32, error) {
	if v, ok := s.vectors.Get(text); ok {
		return v, nil
	}
	v, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	s.vectors.Set(text, v)
	return v, nil
}

// CosineSimilarity computes the cosine similarity of two vectors.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, errors.New("vectors must be non-empty and of equal dimension")
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, errors.New("zero-magnitude vector")
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
