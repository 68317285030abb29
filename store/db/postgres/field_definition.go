package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/fieldsense/fieldsense/store"
)

func (d *DB) CreateFieldDefinition(ctx context.Context, create *store.FieldDefinition) (*store.FieldDefinition, error) {
	now := time.Now().Unix()
	create.CreatedTs = now
	create.UpdatedTs = now

	stmt := `
		INSERT INTO field_definition (uid, collection_id, name, type, config, created_ts, updated_ts)
		VALUES (` + placeholders(7) + `)
		RETURNING id
	`
	if err := d.db.QueryRowContext(ctx, stmt,
		create.UID,
		create.CollectionID,
		create.Name,
		create.Type,
		create.Config,
		create.CreatedTs,
		create.UpdatedTs,
	).Scan(&create.ID); err != nil {
		return nil, errors.Wrap(err, "failed to create field definition")
	}

	return create, nil
}

func (d *DB) ListFieldDefinitions(ctx context.Context, find *store.FindFieldDefinition) ([]*store.FieldDefinition, error) {
	where, args := []string{"1 = 1"}, []any{}

	if find.ID != nil {
		where, args = append(where, "id = "+placeholder(len(args)+1)), append(args, *find.ID)
	}
	if find.UID != nil {
		where, args = append(where, "uid = "+placeholder(len(args)+1)), append(args, *find.UID)
	}
	if find.CollectionID != nil {
		where, args = append(where, "collection_id = "+placeholder(len(args)+1)), append(args, *find.CollectionID)
	}

	query := `
		SELECT id, uid, collection_id, name, type, config, created_ts, updated_ts
		FROM field_definition
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY created_ts ASC, id ASC
	`
	if find.Limit != nil {
		query += " LIMIT " + placeholder(len(args)+1)
		args = append(args, *find.Limit)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list field definitions")
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

func (d *DB) DeleteFieldDefinition(ctx context.Context, delete *store.DeleteFieldDefinition) error {
	stmt := `DELETE FROM field_definition WHERE id = ` + placeholder(1)
	if _, err := d.db.ExecContext(ctx, stmt, delete.ID); err != nil {
		return errors.Wrap(err, "failed to delete field definition")
	}
	return nil
}
