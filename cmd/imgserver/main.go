// Command imgserver serves pre-encoded images, choosing AVIF, WebP or a
// legacy encoding from the requesting browser's User-Agent.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/imgsupport/pkg/config"
	"github.com/dmitrymomot/imgsupport/pkg/httpserver"
	"github.com/dmitrymomot/imgsupport/pkg/imagestore"
	"github.com/dmitrymomot/imgsupport/pkg/logger"
	"github.com/dmitrymomot/imgsupport/pkg/negotiate"
	"github.com/dmitrymomot/imgsupport/pkg/requestid"
)

// Config is the process configuration, read from the environment and .env.
type Config struct {
	Env        string   `env:"APP_ENV" envDefault:"development"`
	Service    string   `env:"SERVICE_NAME" envDefault:"imgserver"`
	ProbeImage string   `env:"IMAGE_PROBE"` // readiness probe target and index page sample, e.g. "hero"
	Fallbacks  []string `env:"IMAGE_FALLBACKS" envDefault:".jpg,.jpeg,.png" envSeparator:","`

	HTTP    httpserver.Config
	Storage imagestore.Config
	Log     logger.Config
}

func main() {
	cfg := config.MustLoad[Config]()

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithConfig(cfg.Log),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			negotiate.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("imgserver stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(cfg Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := imagestore.New(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	log.Info("image storage ready", slog.String("driver", cfg.Storage.Driver))

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, newRouter(cfg, store, log))
}
