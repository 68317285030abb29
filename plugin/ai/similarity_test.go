package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   int
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.vectors[text]
	if !ok {
		return nil, errors.New("unknown text")
	}
	return v, nil
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	result := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := f.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		result[i] = v
	}
	return result, nil
}

func (f *fakeEmbedder) Model() string { return "fake-model" }

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name    string
		a, b    []float32
		want    float64
		wantErr bool
	}{
		{name: "Identical", a: []float32{1, 0}, b: []float32{1, 0}, want: 1},
		{name: "Orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, want: 0},
		{name: "Opposite", a: []float32{1, 0}, b: []float32{-1, 0}, want: -1},
		{name: "DimensionMismatch", a: []float32{1}, b: []float32{1, 0}, wantErr: true},
		{name: "Empty", a: nil, b: nil, wantErr: true},
		{name: "ZeroMagnitude", a: []float32{0, 0}, b: []float32{1, 0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CosineSimilarity(tt.a, tt.b)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEmbeddingSimilarity_NormalizesIntoUnitRange(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"video rating":  {1, 0},
		"overall score": {0, 1},
	}}
	provider := NewEmbeddingSimilarity(embedder)

	score, err := provider.Similarity(context.Background(), "video rating", "overall score")
	require.NoError(t, err)
	// Orthogonal vectors: cosine 0 maps to 0.5.
	assert.InDelta(t, 0.5, score, 1e-9)

	score, err = provider.Similarity(context.Background(), "video rating", "video rating")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestEmbeddingSimilarity_CachesVectors(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"a": {1, 0},
		"b": {0.5, 0.5},
	}}
	provider := NewEmbeddingSimilarity(embedder)

	_, err := provider.Similarity(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Equal(t, 2, embedder.calls)

	_, err = provider.Similarity(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Equal(t, 2, embedder.calls, "second call should be served from cache")
}

func TestEmbeddingSimilarity_PropagatesEmbedderError(t *testing.T) {
	embedder := &fakeEmbedder{err: errors.New("provider down")}
	provider := NewEmbeddingSimilarity(embedder)

	_, err := provider.Similarity(context.Background(), "a", "b")
	assert.Error(t, err)
}
