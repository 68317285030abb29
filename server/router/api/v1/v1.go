// Package v1 exposes the fieldsense HTTP API.
package v1

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/fieldsense/fieldsense/internal/profile"
	"github.com/fieldsense/fieldsense/plugin/ai"
	"github.com/fieldsense/fieldsense/server/service/duplicate"
	"github.com/fieldsense/fieldsense/store"
)

type APIV1Service struct {
	Profile  *profile.Profile
	Store    *store.Store
	Detector *duplicate.Detector
}

// NewAPIV1Service wires the API service. When the profile enables AI, the
// detector gets an embedding-backed similarity provider; otherwise smart
// checks degrade to exact + typo matching.
func NewAPIV1Service(profile *profile.Profile, store *store.Store) *APIV1Service {
	var provider ai.SimilarityProvider
	if profile.IsAIEnabled() {
		cfg := ai.NewConfigFromProfile(profile)
		embeddingService, err := ai.NewEmbeddingService(&cfg)
		if err != nil {
			slog.Warn("embedding service unavailable, semantic matching disabled", "error", err)
		} else {
			provider = ai.NewEmbeddingSimilarity(embeddingService)
		}
	}

	return &APIV1Service{
		Profile:  profile,
		Store:    store,
		Detector: duplicate.NewDetector(provider, duplicate.DefaultConfig()),
	}
}

// Register registers the API routes with the given Echo instance.
func (s *APIV1Service) Register(echoServer *echo.Echo) {
	apiGroup := echoServer.Group("/api/v1")
	apiGroup.Use(middleware.CORS())

	apiGroup.GET("/collections/:collection/fields", s.ListFieldDefinitions)
	apiGroup.POST("/collections/:collection/fields", s.CreateFieldDefinition)
	apiGroup.DELETE("/collections/:collection/fields/:uid", s.DeleteFieldDefinition)
	apiGroup.POST("/collections/:collection/fields/check", s.CheckDuplicateFields)
}
