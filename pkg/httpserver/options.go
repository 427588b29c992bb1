package httpserver

import (
	"context"
	"log/slog"
	"time"
)

// Hook runs around the server life-cycle with the server logger.
type Hook func(ctx context.Context, log *slog.Logger)

// Option configures a Server.
type Option func(*options)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: empty address")
	}
	return func(o *options) { o.addr = addr }
}

// WithReadTimeout bounds reading a whole request, body included.
func WithReadTimeout(d time.Duration) Option {
	mustBePositive("read timeout", d)
	return func(o *options) { o.readTimeout = d }
}

// WithWriteTimeout bounds writing a response.
func WithWriteTimeout(d time.Duration) Option {
	mustBePositive("write timeout", d)
	return func(o *options) { o.writeTimeout = d }
}

// WithIdleTimeout bounds the wait for the next request on a keep-alive connection.
func WithIdleTimeout(d time.Duration) Option {
	mustBePositive("idle timeout", d)
	return func(o *options) { o.idleTimeout = d }
}

// WithShutdownTimeout sets how long in-flight requests may take to drain.
func WithShutdownTimeout(d time.Duration) Option {
	mustBePositive("shutdown timeout", d)
	return func(o *options) { o.shutdownTimeout = d }
}

// WithLogger passes l to hooks. Nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStartHook registers h to run once the listener goroutine is started.
func WithStartHook(h Hook) Option {
	if h == nil {
		panic("httpserver: nil start hook")
	}
	return func(o *options) { o.startHooks = append(o.startHooks, h) }
}

// WithStopHook registers h to run after in-flight requests drained.
func WithStopHook(h Hook) Option {
	if h == nil {
		panic("httpserver: nil stop hook")
	}
	return func(o *options) { o.stopHooks = append(o.stopHooks, h) }
}

func mustBePositive(name string, d time.Duration) {
	if d <= 0 {
		panic("httpserver: " + name + " must be positive")
	}
}
