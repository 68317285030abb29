// Package ai provides the embedding and semantic similarity services
// backing the duplicate field detector.
package ai

import (
	"fmt"

	"github.com/fieldsense/fieldsense/internal/profile"
)

// EmbeddingConfig holds the embedding provider configuration.
type EmbeddingConfig struct {
	APIKey     string
	BaseURL    string
	Model      string
	Dimensions int
}

// DefaultEmbeddingConfig returns the default embedding configuration.
func DefaultEmbeddingConfig() EmbeddingConfig {
	return EmbeddingConfig{
		BaseURL: "https://api.openai.com/v1",
		Model:   "text-embedding-3-small",
	}
}

// NewConfigFromProfile builds an embedding configuration from the server profile.
func NewConfigFromProfile(p *profile.Profile) EmbeddingConfig {
	cfg := DefaultEmbeddingConfig()
	cfg.APIKey = p.AIAPIKey
	if p.AIBaseURL != "" {
		cfg.BaseURL = p.AIBaseURL
	}
	if p.AIEmbeddingModel != "" {
		cfg.Model = p.AIEmbeddingModel
	}
	return cfg
}

// Validate checks that the configuration is usable.
func (c *EmbeddingConfig) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("embedding API key is required, set FIELDSENSE_AI_API_KEY")
	}
	if c.Model == "" {
		return fmt.Errorf("embedding model is required")
	}
	return nil
}
