package httpserver

import "time"

// Config is the environment form of the listener settings.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// NewFromConfig creates a Server from cfg. Zero fields keep the package
// defaults; opts are applied after the config.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	fromCfg := make([]Option, 0, 5+len(opts))
	if cfg.Addr != "" {
		fromCfg = append(fromCfg, WithAddr(cfg.Addr))
	}
	if cfg.ReadTimeout > 0 {
		fromCfg = append(fromCfg, WithReadTimeout(cfg.ReadTimeout))
	}
	if cfg.WriteTimeout > 0 {
		fromCfg = append(fromCfg, WithWriteTimeout(cfg.WriteTimeout))
	}
	if cfg.IdleTimeout > 0 {
		fromCfg = append(fromCfg, WithIdleTimeout(cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout > 0 {
		fromCfg = append(fromCfg, WithShutdownTimeout(cfg.ShutdownTimeout))
	}
	return New(append(fromCfg, opts...)...)
}
