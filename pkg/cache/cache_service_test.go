package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Total int    `json:"total"`
	Title string `json:"title"`
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	t.Run("miss", func(t *testing.T) {
		var p payload
		assert.ErrorIs(t, c.Get(ctx, "chapters:all", &p), ErrCacheMiss)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "chapters:all", payload{Total: 3, Title: "Dawn"}, time.Minute))

		var p payload
		require.NoError(t, c.Get(ctx, "chapters:all", &p))
		assert.Equal(t, payload{Total: 3, Title: "Dawn"}, p)
	})

	t.Run("expired entries miss", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "short", payload{}, -time.Second))

		var p payload
		assert.ErrorIs(t, c.Get(ctx, "short", &p), ErrCacheMiss)
	})

	t.Run("set overwrites and refreshes ttl", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "chapters:all", payload{Total: 1}, -time.Second))
		require.NoError(t, c.Set(ctx, "chapters:all", payload{Total: 4}, time.Minute))

		var p payload
		require.NoError(t, c.Get(ctx, "chapters:all", &p))
		assert.Equal(t, 4, p.Total)
	})
}
