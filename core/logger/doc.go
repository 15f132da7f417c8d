// Package logger provides structured logging built on log/slog.
//
// New builds a *slog.Logger from options, and the attribute helpers give log
// records consistent keys across packages:
//
//	log := logger.New(
//		logger.WithProduction("sessionkeeper"),
//		logger.WithOutput(os.Stderr),
//	)
//
//	log.Warn("stored session unreadable, logging in again",
//		logger.Component("session"),
//		logger.UserKey(userKey),
//		logger.Error(err),
//	)
//
// Helpers return an empty slog.Attr for nil errors and empty identifiers, and
// slog drops empty attributes, so they can be passed unconditionally.
//
// Environment presets:
//
//	logger.WithDevelopment("svc") // text, debug level
//	logger.WithProduction("svc")  // JSON, info level
//
// Levels can also be set from configuration with WithLevelString("warn").
package logger
