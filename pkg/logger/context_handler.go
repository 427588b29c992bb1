package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor reads one attribute from a request context. ok is false
// when the value is absent.
type ContextExtractor func(ctx context.Context) (attr slog.Attr, ok bool)

// contextHandler appends the attributes of its extractors to every record
// before passing it on.
type contextHandler struct {
	slog.Handler
	extractors []ContextExtractor
}

func withContext(h slog.Handler, extractors []ContextExtractor) slog.Handler {
	if len(extractors) == 0 {
		return h
	}
	return contextHandler{Handler: h, extractors: extractors}
}

func (h contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, extract := range h.extractors {
		if attr, ok := extract(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.Handler.Handle(ctx, rec)
}

func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{Handler: h.Handler.WithAttrs(attrs), extractors: h.extractors}
}

func (h contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{Handler: h.Handler.WithGroup(name), extractors: h.extractors}
}
