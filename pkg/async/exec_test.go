package async_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrymomot/sessionkeeper/pkg/async"
)

func TestExecErrorPropagation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	expectedErr := errors.New("an error occurred in the exec function")

	future := async.Exec(ctx, 42, func(ctx context.Context, num int) error {
		time.Sleep(10 * time.Millisecond)
		return expectedErr
	})

	if err := future.Await(); !errors.Is(err, expectedErr) {
		t.Errorf("Expected error '%v', got: %v", expectedErr, err)
	}
}

func TestExecPreCancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	future := async.Exec(ctx, 1, func(ctx context.Context, _ int) error {
		called = true
		return nil
	})

	if err := future.Await(); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got: %v", err)
	}
	if called {
		t.Error("Expected function not to be called for a cancelled context")
	}
}

func TestExecConcurrentIncrement(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var mu sync.Mutex
	counter := 0

	futures := make([]*async.ExecFuture, 0, 1000)
	for range 1000 {
		futures = append(futures, async.Exec(ctx, 1, func(_ context.Context, delta int) error {
			mu.Lock()
			defer mu.Unlock()
			counter += delta
			return nil
		}))
	}

	for _, future := range futures {
		if err := future.Await(); err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	}

	if counter != 1000 {
		t.Errorf("Expected counter to be 1000, got %d", counter)
	}
}

func TestExecAwaitContext(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)
	future := async.Exec(context.Background(), 0, func(ctx context.Context, _ int) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := future.AwaitContext(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected context.DeadlineExceeded, got: %v", err)
	}
}
