// Package logger builds *slog.Logger values with functional options and
// offers attribute helpers that keep key names consistent across the module.
//
// New picks a JSON or text handler and applies static attributes.
// Registered ContextExtractor callbacks add request-scoped attributes to
// every record:
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithTextFormatter(),
//		logger.WithContextValue("request_id", requestIDKey{}),
//	)
//
// ParseLevel and ParseFormat turn configuration strings (UA_LOG_LEVEL,
// UA_LOG_FORMAT) into option values.
//
// Attribute helpers such as Error, UserAgent and CacheKey return an empty
// slog.Attr for empty input, so call sites need no nil checks:
//
//	log.Debug("cache write failed", logger.CacheKey(key), logger.Error(err))
package logger
