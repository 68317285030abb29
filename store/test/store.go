// Package teststore provides a sqlite-backed store for tests.
package teststore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fieldsense/fieldsense/internal/profile"
	"github.com/fieldsense/fieldsense/store"
	"github.com/fieldsense/fieldsense/store/db"
)

// NewTestingStore returns a store backed by a fresh sqlite database in a
// temporary directory.
func NewTestingStore(ctx context.Context, t *testing.T) *store.Store {
	testProfile := &profile.Profile{
		Mode:   "dev",
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "fieldsense_test.db"),
	}

	dbDriver, err := db.NewDBDriver(testProfile)
	require.NoError(t, err)
	require.NoError(t, dbDriver.Migrate(ctx))

	s := store.New(dbDriver, testProfile)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}
