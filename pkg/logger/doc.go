// Package logger builds *slog.Logger instances with functional options,
// consistent attribute helpers and injection of values stored in context.Context.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and wraps it in a handler that runs the registered ContextExtractor
// callbacks on every record. Output defaults to stderr so
// that command output on stdout stays machine-readable.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "qrkit"),
//		logger.WithContextExtractors(requestid.LogExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "symbol rendered",
//		logger.ExportFormat("svg"),
//		logger.Size(1000),
//		logger.CacheHit(false),
//		logger.Duration(time.Since(start)),
//	)
//
// ParseLevel and ParseFormat turn configuration strings into options.
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("operation finished", logger.Error(err))
//
// needs no nil check.
package logger
