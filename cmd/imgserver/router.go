package main

import (
	"context"
	_ "embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/imgsupport/pkg/httpserver"
	"github.com/dmitrymomot/imgsupport/pkg/imagestore"
	"github.com/dmitrymomot/imgsupport/pkg/logger"
	"github.com/dmitrymomot/imgsupport/pkg/negotiate"
	"github.com/dmitrymomot/imgsupport/pkg/requestid"
)

//go:embed index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

func newRouter(cfg Config, store imagestore.Storage, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		negotiate.Middleware,
		httpserver.AccessLog(log),
	)

	var checks []httpserver.Check
	if cfg.ProbeImage != "" {
		checks = append(checks, func(ctx context.Context) error {
			exts := append([]string{"", ".avif", ".webp"}, cfg.Fallbacks...)
			_, err := imagestore.Resolve(ctx, store, cfg.ProbeImage, exts...)
			return err
		})
	}
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, checks...))
	r.Get("/detect", negotiate.DetectHandler())

	opts := []negotiate.Option{negotiate.WithLogger(log)}
	if len(cfg.Fallbacks) > 0 {
		opts = append(opts, negotiate.WithFallbacks(cfg.Fallbacks...))
	}
	r.Mount("/images", negotiate.Routes(store, opts...))

	r.Get("/", indexHandler(cfg.ProbeImage, log))
	return r
}

type indexData struct {
	Detection negotiate.Detection
	Image     string
}

func indexHandler(image string, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := indexData{Detection: negotiate.Detect(r.UserAgent()), Image: image}
		if err := indexTmpl.Execute(w, data); err != nil {
			log.ErrorContext(r.Context(), "failed to render index", logger.Error(err))
		}
	}
}
