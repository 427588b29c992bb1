package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// userAgentLimit caps logged UA strings; hostile clients send kilobytes.
const userAgentLimit = 256

// UserAgent records a User-Agent string under the key "user_agent",
// truncated to a bounded length. Empty strings produce an empty Attr.
func UserAgent(ua string) slog.Attr {
	if ua == "" {
		return slog.Attr{}
	}
	if len(ua) > userAgentLimit {
		ua = ua[:userAgentLimit] + "..."
	}
	return slog.String("user_agent", ua)
}

// CacheKey records a cache key under the key "cache_key".
func CacheKey(key string) slog.Attr {
	if key == "" {
		return slog.Attr{}
	}
	return slog.String("cache_key", key)
}

// Catalog records a rule catalog name under the key "catalog".
func Catalog(name string) slog.Attr {
	return slog.String("catalog", name)
}

// Facet records a classification facet (os, browser, device...) under the key "facet".
func Facet(name string) slog.Attr {
	return slog.String("facet", name)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
