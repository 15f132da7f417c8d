// Package keeper assembles a ready-to-use session manager from environment
// configuration.
//
// STORE_BACKEND selects where sessions live: memory (default), redis,
// postgres, mongo or s3. Each backend reads its own settings (REDIS_*, PG_*,
// MONGODB_*, S3_*) and contributes the database health check the manager
// probes before initializing a session. The upstream login is a form post
// configured through FORMLOGIN_*.
//
//	app, err := keeper.NewApp(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer app.Close(ctx)
//
//	if err := app.Warmup(ctx); err != nil {
//		app.Logger().Error("warmup failed", logger.Error(err))
//	}
//
//	sess, err := app.Manager().GetSession(ctx, "alice")
package keeper
