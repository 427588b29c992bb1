// Package httpserver runs the classification service's HTTP listener with
// graceful shutdown, environment configuration and probe handlers.
//
// A Server is built with New or NewFromConfig and functional options
// (WithAddr, WithShutdownTimeout, WithLogger, ...). Run blocks until its
// context is cancelled, typically by signal.NotifyContext in main, and then
// lets in-flight requests drain:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithStopHook(func(ctx context.Context, log *slog.Logger) {
//			log.InfoContext(ctx, "http server stopped")
//		}),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// WithStartHook and WithStopHook run callbacks around the life-cycle.
// HealthCheckHandler serves liveness (no checks) and readiness (with checks)
// probes; Detector.Ping is a typical readiness check.
//
// Config reads HTTP_ADDR, HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT,
// HTTP_IDLE_TIMEOUT and HTTP_SHUTDOWN_TIMEOUT with github.com/caarlos0/env.
//
// Errors from Run are joined with ErrStart or ErrShutdown; use errors.Is.
package httpserver
