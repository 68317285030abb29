package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileValidate(t *testing.T) {
	t.Run("DefaultsToDevMode", func(t *testing.T) {
		p := &Profile{Mode: "staging", Driver: "sqlite", Data: t.TempDir()}
		require.NoError(t, p.Validate())
		assert.Equal(t, "dev", p.Mode)
		assert.True(t, p.IsDev())
	})

	t.Run("SQLiteDSNDefaultsIntoDataDir", func(t *testing.T) {
		dir := t.TempDir()
		p := &Profile{Mode: "prod", Driver: "sqlite", Data: dir}
		require.NoError(t, p.Validate())
		assert.Contains(t, p.DSN, "fieldsense_prod.db")
	})

	t.Run("PostgresRequiresDSN", func(t *testing.T) {
		p := &Profile{Mode: "prod", Driver: "postgres", Data: t.TempDir()}
		assert.Error(t, p.Validate())
	})

	t.Run("UnknownDriverRejected", func(t *testing.T) {
		p := &Profile{Mode: "dev", Driver: "mysql", Data: t.TempDir()}
		assert.Error(t, p.Validate())
	})

	t.Run("MissingDataDirRejected", func(t *testing.T) {
		p := &Profile{Mode: "dev", Driver: "sqlite", Data: "/nonexistent/fieldsense"}
		assert.Error(t, p.Validate())
	})
}

func TestIsAIEnabled(t *testing.T) {
	p := &Profile{AIEnabled: true}
	assert.False(t, p.IsAIEnabled(), "enabled without API key should be off")

	p.AIAPIKey = "sk-test"
	assert.True(t, p.IsAIEnabled())

	p.AIEnabled = false
	assert.False(t, p.IsAIEnabled())
}
