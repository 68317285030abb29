package store

import (
	"context"
	"database/sql"
)

// Driver is an interface for store driver.
// It contains all methods that a store database driver should implement.
type Driver interface {
	GetDB() *sql.DB
	Close() error

	IsInitialized(ctx context.Context) (bool, error)
	Migrate(ctx context.Context) error

	// FieldDefinition model related methods.
	CreateFieldDefinition(ctx context.Context, create *FieldDefinition) (*FieldDefinition, error)
	ListFieldDefinitions(ctx context.Context, find *FindFieldDefinition) ([]*FieldDefinition, error)
	DeleteFieldDefinition(ctx context.Context, delete *DeleteFieldDefinition) error

	// FieldEmbedding model related methods.
	UpsertFieldEmbedding(ctx context.Context, embedding *FieldEmbedding) (*FieldEmbedding, error)
	ListFieldEmbeddings(ctx context.Context, find *FindFieldEmbedding) ([]*FieldEmbedding, error)
	DeleteFieldEmbedding(ctx context.Context, fieldID int32) error
	FindFieldsWithoutEmbedding(ctx context.Context, find *FindFieldsWithoutEmbedding) ([]*FieldDefinition, error)
}
