// Command uadetect serves User-Agent and Client Hints classification over
// HTTP. It is configured from the environment (and an optional .env file);
// see useragent.Config and httpserver.Config for the variables.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/uadetect/pkg/api"
	"github.com/dmitrymomot/uadetect/pkg/httpserver"
	"github.com/dmitrymomot/uadetect/pkg/logger"
	"github.com/dmitrymomot/uadetect/pkg/useragent"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// LoadConfig reads .env first, so it must run before the api config.
	cfg, err := useragent.LoadConfig()
	if err != nil {
		return err
	}
	var httpCfg httpserver.Config
	if err := env.Parse(&httpCfg); err != nil {
		return errors.Join(useragent.ErrInvalidConfig, err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return err
	}
	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(logger.Component("uadetect")),
		logger.WithContextValue("request_id", middleware.RequestIDKey),
	)
	logger.SetAsDefault(log)

	d, err := useragent.NewFromConfig(ctx, cfg, useragent.WithLogger(log))
	if err != nil {
		return err
	}
	defer func() {
		if err := d.Close(); err != nil {
			log.Error("closing detector", logger.Error(err))
		}
	}()

	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(ctx context.Context, log *slog.Logger) {
			log.InfoContext(ctx, "http server listening",
				slog.String("addr", httpCfg.Addr),
				slog.String("cache_driver", cfg.CacheDriver),
				slog.String("truncation", cfg.VersionTruncation.String()))
		}),
		httpserver.WithStopHook(func(ctx context.Context, log *slog.Logger) {
			log.InfoContext(ctx, "http server stopped")
		}),
	)
	return srv.Run(ctx, api.NewRouter(d, log, d.Ping))
}
