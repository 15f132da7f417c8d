// Package resilience bounds and retries fallible operations.
//
// Two combinators compose into a Policy:
//
//   - WithTimeout runs an operation on its own goroutine and stops waiting for it
//     once the duration elapses, returning a *TimeoutError. The abandoned call
//     receives a cancelled context; whether it stops is up to the call.
//   - WithRetry re-invokes an operation up to a fixed number of attempts with a
//     fixed pause between them. Intermediate failures are logged, and once all
//     attempts fail a single *ExhaustedError carrying the last failure is returned.
//
// A Policy applies the timeout to every attempt, so the retry loop always gets a
// fresh, bounded call:
//
//	login := resilience.Policy{Name: "login", Attempts: 3, Backoff: 300 * time.Millisecond, Timeout: 90 * time.Second}
//	sess, err := resilience.Do(ctx, login, func(ctx context.Context) (session.Session, error) {
//		return auth.Login(ctx, userKey)
//	})
//	if errors.Is(err, resilience.ErrRetriesExhausted) {
//		// all three attempts failed or timed out
//	}
//
// Every error is retried except errors wrapped with Permanent and the
// cancellation of the caller's own context, both of which end the loop at once.
package resilience
