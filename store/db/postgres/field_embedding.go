package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/pgvector/pgvector-go"
	"github.com/pkg/errors"

	"github.com/fieldsense/fieldsense/store"
)

// UpsertFieldEmbedding inserts or updates a field-name embedding.
func (d *DB) UpsertFieldEmbedding(ctx context.Context, embedding *store.FieldEmbedding) (*store.FieldEmbedding, error) {
	now := time.Now().Unix()
	embedding.CreatedTs = now
	embedding.UpdatedTs = now

	stmt := `
		INSERT INTO field_embedding (field_id, embedding, model, created_ts, updated_ts)
		VALUES (` + placeholders(5) + `)
		ON CONFLICT (field_id, model)
		DO UPDATE SET
			embedding = EXCLUDED.embedding,
			updated_ts = EXCLUDED.updated_ts
		RETURNING id, created_ts, updated_ts
	`

	vector := pgvector.NewVector(embedding.Embedding)
	if err := d.db.QueryRowContext(ctx, stmt,
		embedding.FieldID,
		vector,
		embedding.Model,
		embedding.CreatedTs,
		embedding.UpdatedTs,
	).Scan(&embedding.ID, &embedding.CreatedTs, &embedding.UpdatedTs); err != nil {
		return nil, errors.Wrap(err, "failed to upsert field embedding")
	}

	return embedding, nil
}

// ListFieldEmbeddings lists field embeddings.
func (d *DB) ListFieldEmbeddings(ctx context.Context, find *store.FindFieldEmbedding) ([]*store.FieldEmbedding, error) {
	where, args := []string{"1 = 1"}, []any{}

	if find.FieldID != nil {
		where, args = append(where, "field_id = "+placeholder(len(args)+1)), append(args, *find.FieldID)
	}
	if find.Model != nil {
		where, args = append(where, "model = "+placeholder(len(args)+1)), append(args, *find.Model)
	}

	query := `
		SELECT id, field_id, embedding, model, created_ts, updated_ts
		FROM field_embedding
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY created_ts DESC
	`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list field embeddings")
	}
	defer rows.Close()

	list := []*store.FieldEmbedding{}
	for rows.Next() {
		var embedding store.FieldEmbedding
		var vector pgvector.Vector
		if err := rows.Scan(
			&embedding.ID,
			&embedding.FieldID,
			&vector,
			&embedding.Model,
			&embedding.CreatedTs,
			&embedding.UpdatedTs,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan field embedding")
		}
		embedding.Embedding = vector.Slice()
		list = append(list, &embedding)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// DeleteFieldEmbedding deletes all embeddings for a field.
func (d *DB) DeleteFieldEmbedding(ctx context.Context, fieldID int32) error {
	stmt := `DELETE FROM field_embedding WHERE field_id = ` + placeholder(1)
	if _, err := d.db.ExecContext(ctx, stmt, fieldID); err != nil {
		return errors.Wrap(err, "failed to delete field embedding")
	}
	return nil
}

// FindFieldsWithoutEmbedding finds field definitions that don't have an
// embedding for the specified model.
func (d *DB) FindFieldsWithoutEmbedding(ctx context.Context, find *store.FindFieldsWithoutEmbedding) ([]*store.FieldDefinition, error) {
	limit := find.Limit
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT
			f.id, f.uid, f.collection_id, f.name, f.type, f.config, f.created_ts, f.updated_ts
		FROM field_definition f
		LEFT JOIN field_embedding e ON f.id = e.field_id AND e.model = ` + placeholder(1) + `
		WHERE e.id IS NULL
		ORDER BY f.created_ts ASC
		LIMIT ` + placeholder(2)

	rows, err := d.db.QueryContext(ctx, query, find.Model, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find fields without embedding")
	}
	defer rows.Close()

	list := []*store.FieldDefinition{}
	for rows.Next() {
		var field store.FieldDefinition
		if err := rows.Scan(
			&field.ID,
			&field.UID,
			&field.CollectionID,
			&field.Name,
			&field.Type,
			&field.Config,
			&field.CreatedTs,
			&field.UpdatedTs,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan field definition")
		}
		list = append(list, &field)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}
