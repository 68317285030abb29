package embedding

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldsense/fieldsense/internal/profile"
	"github.com/fieldsense/fieldsense/store"
)

// fakeDriver serves canned fields and records upserted embeddings. The
// embedded Driver panics on anything the runner should never call.
type fakeDriver struct {
	store.Driver

	mu       sync.Mutex
	fields   []*store.FieldDefinition
	upserted []*store.FieldEmbedding
}

func (d *fakeDriver) FindFieldsWithoutEmbedding(_ context.Context, _ *store.FindFieldsWithoutEmbedding) ([]*store.FieldDefinition, error) {
	return d.fields, nil
}

func (d *fakeDriver) UpsertFieldEmbedding(_ context.Context, e *store.FieldEmbedding) (*store.FieldEmbedding, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.upserted = append(d.upserted, e)
	return e, nil
}

func (d *fakeDriver) upsertedCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.upserted)
}

// recordingEmbedder returns a fixed vector and records the embedded texts.
type recordingEmbedder struct {
	mu    sync.Mutex
	texts []string
}

func (e *recordingEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.texts = append(e.texts, text)
	return []float32{1, 0}, nil
}

func (e *recordingEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, 0, len(texts))
	for _, t := range texts {
		v, err := e.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		vectors = append(vectors, v)
	}
	return vectors, nil
}

func (e *recordingEmbedder) Model() string { return "fake-model" }

// blockingEmbedder signals each call on started, then holds until release
// is closed or the context is cancelled.
type blockingEmbedder struct {
	started chan struct{}
	release chan struct{}
}

func (e *blockingEmbedder) Embed(ctx context.Context, _ string) ([]float32, error) {
	e.started <- struct{}{}
	select {
	case <-e.release:
		return []float32{1, 0}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (e *blockingEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, 0, len(texts))
	for _, t := range texts {
		v, err := e.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		vectors = append(vectors, v)
	}
	return vectors, nil
}

func (e *blockingEmbedder) Model() string { return "fake-model" }

func testFields(names ...string) []*store.FieldDefinition {
	fields := make([]*store.FieldDefinition, 0, len(names))
	for i, name := range names {
		fields = append(fields, &store.FieldDefinition{
			ID:   int32(i + 1),
			UID:  name,
			Name: name,
			Type: store.FieldTypeText,
		})
	}
	return fields
}

func TestRunOnceEmbedsNormalizedNames(t *testing.T) {
	driver := &fakeDriver{fields: testFields("Video  Rating", "Author")}
	embedder := &recordingEmbedder{}
	r := NewRunner(store.New(driver, &profile.Profile{}), embedder)

	r.RunOnce(context.Background())

	require.Equal(t, 2, driver.upsertedCount())
	for _, e := range driver.upserted {
		assert.Equal(t, "fake-model", e.Model)
		assert.NotEmpty(t, e.Embedding)
	}
	assert.ElementsMatch(t, []string{"video rating", "author"}, embedder.texts)
}

func TestRunOnceSurvivesCancelWithWorkersInFlight(t *testing.T) {
	driver := &fakeDriver{fields: testFields("One", "Two", "Three")}
	embedder := &blockingEmbedder{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	r := NewRunner(store.New(driver, &profile.Profile{}), embedder)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		r.RunOnce(ctx)
	}()

	// Wait until every worker holds a semaphore token, then cancel while
	// they are all in flight and let them finish.
	for i := 0; i < 3; i++ {
		select {
		case <-embedder.started:
		case <-time.After(5 * time.Second):
			t.Fatal("embed workers did not start")
		}
	}
	cancel()
	close(embedder.release)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("RunOnce did not return after cancellation")
	}
}
