package resilience_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkeeper/pkg/resilience"
)

func TestWithRetry(t *testing.T) {
	t.Parallel()

	t.Run("succeeds on first attempt", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int32

		v, err := resilience.WithRetry(context.Background(), 3, time.Millisecond, func(context.Context) (int, error) {
			calls.Add(1)
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, v)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("succeeds on third attempt", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int32

		v, err := resilience.WithRetry(context.Background(), 3, time.Millisecond, func(context.Context) (string, error) {
			if calls.Add(1) < 3 {
				return "", errors.New("flaky")
			}
			return "done", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "done", v)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("wraps last failure when exhausted", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int32

		_, err := resilience.WithRetry(context.Background(), 3, time.Millisecond, func(context.Context) (int, error) {
			n := calls.Add(1)
			return 0, errors.New("failure " + string(rune('0'+n)))
		})
		require.Error(t, err)
		assert.Equal(t, int32(3), calls.Load())
		assert.ErrorIs(t, err, resilience.ErrRetriesExhausted)

		var ex *resilience.ExhaustedError
		require.ErrorAs(t, err, &ex)
		assert.Equal(t, 3, ex.Attempts)
		assert.Contains(t, err.Error(), "failure 3")
		assert.NotContains(t, err.Error(), "failure 1")
	})

	t.Run("waits backoff between attempts", func(t *testing.T) {
		t.Parallel()

		start := time.Now()
		_, err := resilience.WithRetry(context.Background(), 3, 20*time.Millisecond, func(context.Context) (int, error) {
			return 0, errors.New("nope")
		})
		require.Error(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
	})

	t.Run("permanent error stops immediately", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int32
		denied := errors.New("denied")

		_, err := resilience.WithRetry(context.Background(), 3, time.Millisecond, func(context.Context) (int, error) {
			calls.Add(1)
			return 0, resilience.Permanent(denied)
		})
		assert.ErrorIs(t, err, denied)
		assert.NotErrorIs(t, err, resilience.ErrRetriesExhausted)
		assert.False(t, resilience.IsPermanent(err))
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("caller cancellation stops the loop", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		var calls atomic.Int32

		_, err := resilience.WithRetry(ctx, 5, 50*time.Millisecond, func(context.Context) (int, error) {
			calls.Add(1)
			cancel()
			return 0, errors.New("flaky")
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("non-positive attempts still calls once", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int32

		err := resilience.Retry(context.Background(), 0, 0, func(context.Context) error {
			calls.Add(1)
			return errors.New("nope")
		})
		assert.ErrorIs(t, err, resilience.ErrRetriesExhausted)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("logs intermediate failures", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		_ = resilience.Retry(context.Background(), 3, 0, func(context.Context) error {
			return errors.New("store offline")
		}, resilience.WithName("store.get"), resilience.WithLogger(log))

		out := buf.String()
		assert.Equal(t, 3, strings.Count(out, "attempt failed"))
		assert.Contains(t, out, "operation=store.get")
		assert.Contains(t, out, "store offline")
	})
}

func TestPermanent(t *testing.T) {
	t.Parallel()

	assert.NoError(t, resilience.Permanent(nil))

	base := errors.New("bad credentials")
	err := resilience.Permanent(base)
	assert.True(t, resilience.IsPermanent(err))
	assert.ErrorIs(t, err, base)
	assert.Equal(t, base.Error(), err.Error())
	assert.False(t, resilience.IsPermanent(base))
}
