package sqlite

import (
	"context"

	"github.com/pkg/errors"

	"github.com/fieldsense/fieldsense/store"
)

// Embedding storage requires PostgreSQL with the pgvector extension.
// On SQLite the semantic matcher embeds field names on demand instead.

func (d *DB) UpsertFieldEmbedding(_ context.Context, _ *store.FieldEmbedding) (*store.FieldEmbedding, error) {
	return nil, errors.New("field embedding storage requires PostgreSQL with pgvector extension")
}

func (d *DB) ListFieldEmbeddings(_ context.Context, _ *store.FindFieldEmbedding) ([]*store.FieldEmbedding, error) {
	return nil, errors.New("field embedding storage requires PostgreSQL with pgvector extension")
}

func (d *DB) DeleteFieldEmbedding(_ context.Context, _ int32) error {
	// Return nil (success) so field deletion works without embeddings.
	return nil
}

func (d *DB) FindFieldsWithoutEmbedding(_ context.Context, _ *store.FindFieldsWithoutEmbedding) ([]*store.FieldDefinition, error) {
	return nil, errors.New("field embedding storage requires PostgreSQL with pgvector extension")
}
