package store

import (
	"context"

	"github.com/pkg/errors"
)

// Field types form a small closed set. The type is carried through to
// check results for display; it never participates in scoring.
const (
	FieldTypeRating  = "rating"
	FieldTypeSelect  = "select"
	FieldTypeText    = "text"
	FieldTypeBoolean = "boolean"
)

// IsValidFieldType reports whether t is a known field type.
func IsValidFieldType(t string) bool {
	switch t {
	case FieldTypeRating, FieldTypeSelect, FieldTypeText, FieldTypeBoolean:
		return true
	}
	return false
}

// FieldDefinition is a custom metadata field defined within a collection.
type FieldDefinition struct {
	ID int32

	// UID is the opaque stable identifier exposed to callers.
	UID string

	// CollectionID scopes the field to one collection.
	CollectionID string

	// Name is the display name, the text compared during duplicate checks.
	Name string

	// Type is one of the FieldType constants.
	Type string

	// Config is opaque structured configuration (options list, max value)
	// stored as JSON. Carried through, never scored.
	Config string

	CreatedTs int64
	UpdatedTs int64
}

// FindFieldDefinition is the query filter for field definitions.
type FindFieldDefinition struct {
	ID           *int32
	UID          *string
	CollectionID *string
	Limit        *int
}

// DeleteFieldDefinition identifies a field definition to delete.
type DeleteFieldDefinition struct {
	ID int32
}

func (s *Store) CreateFieldDefinition(ctx context.Context, create *FieldDefinition) (*FieldDefinition, error) {
	if create.Name == "" {
		return nil, errors.New("field name must not be empty")
	}
	if !IsValidFieldType(create.Type) {
		return nil, errors.Errorf("invalid field type: %s", create.Type)
	}
	return s.driver.CreateFieldDefinition(ctx, create)
}

func (s *Store) ListFieldDefinitions(ctx context.Context, find *FindFieldDefinition) ([]*FieldDefinition, error) {
	return s.driver.ListFieldDefinitions(ctx, find)
}

// GetFieldDefinition returns a single field definition, or nil when absent.
func (s *Store) GetFieldDefinition(ctx context.Context, find *FindFieldDefinition) (*FieldDefinition, error) {
	list, err := s.driver.ListFieldDefinitions(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (s *Store) DeleteFieldDefinition(ctx context.Context, delete *DeleteFieldDefinition) error {
	if err := s.driver.DeleteFieldDefinition(ctx, delete); err != nil {
		return err
	}
	// Embeddings are per-field; drop them with the field.
	return s.driver.DeleteFieldEmbedding(ctx, delete.ID)
}
