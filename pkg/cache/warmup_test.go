package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWarmup(t *testing.T) {
	t.Run("succeeds after retry", func(t *testing.T) {
		calls := 0
		err := Warmup(context.Background(), "chapters", func(ctx context.Context) error {
			calls++
			if calls < 2 {
				return errors.New("db not ready")
			}
			return nil
		}, WarmupConfig{Attempts: 3, RetryDelay: time.Millisecond})

		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("gives up after attempts", func(t *testing.T) {
		boom := errors.New("boom")
		calls := 0
		err := Warmup(context.Background(), "chapters", func(ctx context.Context) error {
			calls++
			return boom
		}, WarmupConfig{Attempts: 2, RetryDelay: time.Millisecond})

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 2, calls)
	})

	t.Run("stops when context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		err := Warmup(ctx, "chapters", func(ctx context.Context) error {
			cancel()
			return errors.New("boom")
		}, WarmupConfig{Attempts: 5, RetryDelay: time.Hour})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
