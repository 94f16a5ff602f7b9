// Package negotiate picks an image encoding from the User-Agent header and
// serves the matching variant from an imagestore.Storage.
//
// Browsers that support AVIF or WebP do not always advertise it in the Accept
// header of an <img> request, so the decision is made with imgsupport from
// the User-Agent alone. Every response therefore carries Vary: User-Agent.
//
// Middleware stores the negotiated format in the request context:
//
//	r := chi.NewRouter()
//	r.Use(negotiate.Middleware)
//	r.Mount("/images", negotiate.Routes(store, negotiate.WithLogger(log)))
//
// Handler tries the negotiated variants first (AVIF then WebP for an
// AVIF-capable browser, WebP for a WebP-only one) and then the legacy
// fallbacks, .jpg, .jpeg and .png by default.
package negotiate
