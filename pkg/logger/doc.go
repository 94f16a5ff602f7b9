// Package logger builds *slog.Logger instances for the image negotiation
// service and provides attribute helpers that keep key names consistent
// across packages.
//
// New takes functional options selecting the output format (json or text),
// level, destination and static attributes. Every logger is wrapped in a
// LogHandlerDecorator which runs the registered ContextExtractor callbacks on
// each record, so request-scoped values such as the request id or the
// negotiated image format end up in the log line without being passed around
// explicitly.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "imgserver"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "image served",
//	    logger.Path(r.URL.Path),
//	    logger.Format(format),
//	)
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
