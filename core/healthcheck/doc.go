// Package healthcheck performs bounded liveness probes against backing services.
//
// A Probe groups Checker functions, the func(context.Context) error shape that
// every integration's Healthcheck returns, and runs them in order under a hard
// timeout (three seconds by default):
//
//	probe := healthcheck.New([]healthcheck.Checker{pg.Healthcheck(pool)},
//		healthcheck.WithTimeout(3*time.Second),
//		healthcheck.WithLogger(log),
//	)
//
//	if err := probe.Probe(ctx); err != nil {
//		switch {
//		case errors.Is(err, healthcheck.ErrTimeout):
//			// the database did not answer in time
//		case errors.Is(err, healthcheck.ErrUnhealthy):
//			// the database answered with an error
//		}
//	}
//
// Probes never retry; wrap Probe in a resilience.Policy for that.
package healthcheck
