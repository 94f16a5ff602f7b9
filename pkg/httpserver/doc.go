// Package httpserver runs an http.Handler with graceful shutdown.
//
// Server binds its listener synchronously inside Run, so address errors
// surface immediately as ErrStart, and then serves until the context passed
// to Run is canceled or the process receives SIGINT or SIGTERM. Connections
// are drained with http.Server.Shutdown bounded by WithShutdownTimeout.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness and readiness probes and AccessLog
// writes one structured record per request.
package httpserver
