// Package async runs functions on their own goroutine and hands back a future
// that can be awaited with or without a bound.
//
// Future[U] carries a value and an error, ExecFuture only an error. Both can be
// awaited unconditionally (Await) or until a context is done (AwaitContext). Abandoning a future never stops the
// goroutine behind it; callers that need the work to stop must cancel the
// context they passed to Async or Exec.
//
// Usage:
//
//	f := async.Async(ctx, userKey, func(ctx context.Context, key string) ([]byte, error) {
//		return store.Load(ctx, key)
//	})
//
//	data, err := f.AwaitContext(ctx)
//	if errors.Is(err, context.DeadlineExceeded) {
//		// the store did not answer in time; its result will be discarded
//	}
//
// If the context is already cancelled when Async or Exec is called, the
// function is not invoked and the future completes with the context's error.
package async
