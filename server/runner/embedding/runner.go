// Package embedding keeps stored field-name embeddings up to date so
// duplicate checks do not re-embed stable existing fields.
package embedding

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/fieldsense/fieldsense/plugin/ai"
	"github.com/fieldsense/fieldsense/plugin/ai/timeout"
	"github.com/fieldsense/fieldsense/server/service/duplicate"
	"github.com/fieldsense/fieldsense/store"
)

type Runner struct {
	store            *store.Store
	embeddingService ai.EmbeddingService
	interval         time.Duration
	batchSize        int
}

// NewRunner creates a field embedding runner.
func NewRunner(store *store.Store, embeddingService ai.EmbeddingService) *Runner {
	return &Runner{
		store:            store,
		embeddingService: embeddingService,
		interval:         time.Minute,
		batchSize:        16,
	}
}

// Run starts the background task.
func (r *Runner) Run(ctx context.Context) {
	// Process once on startup.
	r.processNewFields(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.processNewFields(ctx)
		case <-ctx.Done():
			slog.Info("embedding runner stopped")
			return
		}
	}
}

// RunOnce processes pending fields once (for manual trigger).
func (r *Runner) RunOnce(ctx context.Context) {
	r.processNewFields(ctx)
}

func (r *Runner) processNewFields(ctx context.Context) {
	fields, err := r.store.FindFieldsWithoutEmbedding(ctx, &store.FindFieldsWithoutEmbedding{
		Model: r.embeddingService.Model(),
		Limit: r.batchSize * 10,
	})
	if err != nil {
		slog.Error("failed to find fields without embedding", "error", err)
		return
	}
	if len(fields) == 0 {
		return
	}

	slog.Info("processing fields for embedding", "count", len(fields))

	sem := semaphore.NewWeighted(timeout.EmbedConcurrency)
	var wg sync.WaitGroup
	for _, field := range fields {
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go func(f *store.FieldDefinition) {
			defer wg.Done()
			defer sem.Release(1)
			r.embedField(ctx, f)
		}(field)
	}
	// Wait for in-flight workers so a tick never overlaps the previous one.
	wg.Wait()
}

func (r *Runner) embedField(ctx context.Context, f *store.FieldDefinition) {
	embedCtx, cancel := context.WithTimeout(ctx, timeout.EmbeddingTimeout)
	defer cancel()

	// Embed the normalized name, the same form the detector compares.
	vector, err := r.embeddingService.Embed(embedCtx, duplicate.Normalize(f.Name))
	if err != nil {
		slog.Error("failed to embed field name", "field_uid", f.UID, "error", err)
		return
	}

	if _, err := r.store.UpsertFieldEmbedding(ctx, &store.FieldEmbedding{
		FieldID:   f.ID,
		Embedding: vector,
		Model:     r.embeddingService.Model(),
	}); err != nil {
		slog.Error("failed to upsert field embedding", "field_uid", f.UID, "error", err)
	}
}
