package useragent

import (
	"log/slog"

	"github.com/dmitrymomot/uadetect/pkg/cache"
	"github.com/dmitrymomot/uadetect/pkg/version"
)

// Option configures a Detector.
type Option func(*Detector)

// WithVersionTruncation limits every reported version to t segments.
func WithVersionTruncation(t version.Truncation) Option {
	return func(d *Detector) {
		d.truncation = t
	}
}

// WithSkipBotDetection disables the bot catalog. Crawlers are then
// classified like any other client.
func WithSkipBotDetection() Option {
	return func(d *Detector) {
		d.skipBots = true
	}
}

// WithCache stores results in s. A nil store disables caching.
func WithCache(s cache.Store) Option {
	return func(d *Detector) {
		if s == nil {
			s = cache.Nop{}
		}
		d.store = s
	}
}

// WithCachePrefix namespaces cache keys, which matters when several
// services share one Redis database.
func WithCachePrefix(prefix string) Option {
	return func(d *Detector) {
		d.prefix = prefix
	}
}

// WithLogger sends cache and classification diagnostics to l. A nil logger
// keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(d *Detector) {
		if l != nil {
			d.logger = l
		}
	}
}
