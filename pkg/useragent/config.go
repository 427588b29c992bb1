package useragent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/uadetect/pkg/cache"
	"github.com/dmitrymomot/uadetect/pkg/logger"
	"github.com/dmitrymomot/uadetect/pkg/redis"
	"github.com/dmitrymomot/uadetect/pkg/version"
)

// Cache drivers accepted by Config.CacheDriver.
const (
	CacheDriverNone   = "none"
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

// Config holds the environment driven Detector settings.
type Config struct {
	VersionTruncation version.Truncation `env:"UA_VERSION_TRUNCATION" envDefault:"none"`
	SkipBotDetection  bool               `env:"UA_SKIP_BOT_DETECTION" envDefault:"false"`

	CacheDriver string        `env:"UA_CACHE_DRIVER" envDefault:"memory"`
	CacheSize   int           `env:"UA_CACHE_SIZE" envDefault:"10000"`
	CacheTTL    time.Duration `env:"UA_CACHE_TTL" envDefault:"1h"`
	CachePrefix string        `env:"UA_CACHE_PREFIX" envDefault:"ua:"`

	LogLevel  string `env:"UA_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"UA_LOG_FORMAT" envDefault:"json"`

	Redis redis.Config
}

var dotenvLoaded sync.Once

// LoadConfig reads Config from the environment. A .env file in the working
// directory is loaded first, once per process; a missing file is fine.
func LoadConfig() (Config, error) {
	dotenvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, nil
}

// NewFromConfig builds a Detector with the logger and cache cfg describes.
// With the redis driver it connects before returning; call Close to release
// the connection.
func NewFromConfig(ctx context.Context, cfg Config, opts ...Option) (*Detector, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(logger.Component("useragent")),
	)

	base := []Option{
		WithVersionTruncation(cfg.VersionTruncation),
		WithCachePrefix(cfg.CachePrefix),
		WithLogger(log),
	}
	if cfg.SkipBotDetection {
		base = append(base, WithSkipBotDetection())
	}

	var closer func() error
	var ping func(context.Context) error
	switch cfg.CacheDriver {
	case CacheDriverNone, "":
		base = append(base, WithCache(cache.Nop{}))
	case CacheDriverMemory:
		if cfg.CacheSize <= 0 {
			return nil, errors.Join(ErrInvalidConfig, fmt.Errorf("cache size must be positive, got %d", cfg.CacheSize))
		}
		base = append(base, WithCache(cache.NewMemory(cfg.CacheSize, cfg.CacheTTL)))
	case CacheDriverRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		closer = client.Close
		ping = redis.Healthcheck(client)
		base = append(base, WithCache(cache.NewRedis(client, cfg.CacheTTL)))
	default:
		return nil, fmt.Errorf("%w: %q", ErrCacheDriver, cfg.CacheDriver)
	}

	d, err := New(append(base, opts...)...)
	if err != nil {
		if closer != nil {
			_ = closer()
		}
		return nil, err
	}
	d.closer = closer
	d.ping = ping
	return d, nil
}

// Ping checks the remote cache opened by NewFromConfig. It returns nil when
// the Detector has no remote dependency.
func (d *Detector) Ping(ctx context.Context) error {
	if d == nil || d.ping == nil {
		return nil
	}
	return d.ping(ctx)
}

// Close releases the cache connection opened by NewFromConfig, if any.
func (d *Detector) Close() error {
	if d == nil || d.closer == nil {
		return nil
	}
	return d.closer()
}
