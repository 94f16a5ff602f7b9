// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a well-formed "X-Request-ID" header sent by the client
// or a proxy, otherwise it generates a UUIDv4 with github.com/google/uuid.
// The id is stored in the request context, echoed in the response header and
// can be added to every log record through LoggerExtractor:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
