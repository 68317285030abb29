package store

import (
	"context"
)

// FieldEmbedding is a stored embedding vector for a field name.
// Existing fields are stable, so their vectors are computed once per
// model and reused across duplicate checks.
type FieldEmbedding struct {
	ID        int32
	FieldID   int32
	Embedding []float32
	Model     string
	CreatedTs int64
	UpdatedTs int64
}

// FindFieldEmbedding is the query filter for field embeddings.
type FindFieldEmbedding struct {
	FieldID *int32
	Model   *string
}

// FindFieldsWithoutEmbedding finds fields lacking a stored vector for a model.
type FindFieldsWithoutEmbedding struct {
	Model string
	Limit int
}

func (s *Store) UpsertFieldEmbedding(ctx context.Context, embedding *FieldEmbedding) (*FieldEmbedding, error) {
	return s.driver.UpsertFieldEmbedding(ctx, embedding)
}

func (s *Store) ListFieldEmbeddings(ctx context.Context, find *FindFieldEmbedding) ([]*FieldEmbedding, error) {
	return s.driver.ListFieldEmbeddings(ctx, find)
}

func (s *Store) DeleteFieldEmbedding(ctx context.Context, fieldID int32) error {
	return s.driver.DeleteFieldEmbedding(ctx, fieldID)
}

func (s *Store) FindFieldsWithoutEmbedding(ctx context.Context, find *FindFieldsWithoutEmbedding) ([]*FieldDefinition, error) {
	return s.driver.FindFieldsWithoutEmbedding(ctx, find)
}
