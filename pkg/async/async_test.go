package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkeeper/pkg/async"
)

func TestAsyncReturnsValue(t *testing.T) {
	t.Parallel()

	future := async.Async(context.Background(), "alice", func(_ context.Context, key string) (string, error) {
		return "session:" + key, nil
	})

	v, err := future.Await()
	require.NoError(t, err)
	assert.Equal(t, "session:alice", v)
}

func TestAsyncReturnsError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	future := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
		return 7, boom
	})

	v, err := future.Await()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 7, v)
}

func TestAsyncAwaitContext(t *testing.T) {
	t.Parallel()

	t.Run("result wins over done context", func(t *testing.T) {
		t.Parallel()

		future := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
			return 42, nil
		})
		_, _ = future.Await()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		v, err := future.AwaitContext(ctx)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("context error when still running", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		defer close(release)
		future := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
			<-release
			return 42, nil
		})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		v, err := future.AwaitContext(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Zero(t, v)
	})

	t.Run("function sees cancellation of its context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		future := async.Async(ctx, 0, func(ctx context.Context, _ int) (int, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		})
		cancel()

		_, err := future.Await()
		assert.ErrorIs(t, err, context.Canceled)
	})
}
