package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVectorCache_BasicOperations(t *testing.T) {
	c := NewVectorCache(100, time.Minute)

	t.Run("SetAndGet", func(t *testing.T) {
		c.Set("video rating", []float32{0.1, 0.2})

		v, ok := c.Get("video rating")
		assert.True(t, ok)
		assert.Equal(t, []float32{0.1, 0.2}, v)
	})

	t.Run("GetNonExistent", func(t *testing.T) {
		v, ok := c.Get("missing")
		assert.False(t, ok)
		assert.Nil(t, v)
	})

	t.Run("UpdateExisting", func(t *testing.T) {
		c.Set("quality", []float32{1})
		c.Set("quality", []float32{2})

		v, ok := c.Get("quality")
		assert.True(t, ok)
		assert.Equal(t, []float32{2}, v)
	})
}

func TestVectorCache_Expiration(t *testing.T) {
	c := NewVectorCache(100, 50*time.Millisecond)

	c.Set("expiring", []float32{1})

	_, ok := c.Get("expiring")
	assert.True(t, ok)

	time.Sleep(60 * time.Millisecond)

	_, ok = c.Get("expiring")
	assert.False(t, ok)
}

func TestVectorCache_Eviction(t *testing.T) {
	c := NewVectorCache(3, time.Minute)

	c.Set("a", []float32{1})
	c.Set("b", []float32{2})
	c.Set("c", []float32{3})
	assert.Equal(t, 3, c.Size())

	// Touch "a" so "b" becomes the LRU entry.
	c.Get("a")

	c.Set("d", []float32{4})
	assert.Equal(t, 3, c.Size())

	_, ok := c.Get("b")
	assert.False(t, ok)

	_, ok = c.Get("a")
	assert.True(t, ok)
}

func TestVectorCache_Clear(t *testing.T) {
	c := NewVectorCache(10, time.Minute)
	c.Set("a", []float32{1})
	c.Set("b", []float32{2})

	c.Clear()
	assert.Equal(t, 0, c.Size())
}
