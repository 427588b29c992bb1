package useragent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/dmitrymomot/uadetect/pkg/cache"
	"github.com/dmitrymomot/uadetect/pkg/clienthints"
	"github.com/dmitrymomot/uadetect/pkg/logger"
	"github.com/dmitrymomot/uadetect/pkg/version"
)

// Detector classifies User-Agent strings and Client Hints. It is safe for
// concurrent use; the compiled catalogs are shared by every Detector in the
// process.
type Detector struct {
	catalogs   *catalogSet
	truncation version.Truncation
	skipBots   bool
	store      cache.Store
	prefix     string
	logger     *slog.Logger
	closer     func() error
	ping       func(context.Context) error
}

// New builds a Detector. The embedded catalogs are compiled on the first
// call; a broken catalog makes New fail with ErrCatalogLoad.
func New(opts ...Option) (*Detector, error) {
	catalogs, err := loadCatalogs()
	if err != nil {
		return nil, errors.Join(ErrCatalogLoad, err)
	}

	d := &Detector{
		catalogs:   catalogs,
		truncation: version.TruncateNone,
		store:      cache.Nop{},
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Parse classifies ua, reconciled with hints when any were sent.
//
// It returns ErrNotClassified when the input carries nothing usable. A bot
// match returns a Result with only Bot set.
func (d *Detector) Parse(ctx context.Context, ua string, hints clienthints.Hints) (*Result, error) {
	ua = strings.TrimSpace(ua)
	if !hasLetter(ua) && hints.IsEmpty() {
		return nil, ErrNotClassified
	}

	if !d.skipBots {
		if bot := d.detectBot(ua); bot != nil {
			return &Result{Bot: bot}, nil
		}
	}

	restored := restore(ua, hints)
	key := d.cacheKey(restored, hints)

	if res, ok := d.cached(ctx, key); ok {
		return res, nil
	}

	res := d.classify(restored, hints)
	if res.empty() {
		return nil, ErrNotClassified
	}

	d.remember(ctx, key, res)
	return res, nil
}

// ParseHeaders is Parse with hints taken from a raw header map.
func (d *Detector) ParseHeaders(ctx context.Context, ua string, headers map[string]string) (*Result, error) {
	return d.Parse(ctx, ua, clienthints.New(headers))
}

// ParseRequest classifies the User-Agent and Client Hints headers of r.
func (d *Detector) ParseRequest(r *http.Request) (*Result, error) {
	return d.Parse(r.Context(), r.UserAgent(), clienthints.FromRequest(r))
}

func (d *Detector) classify(ua string, hints clienthints.Hints) *Result {
	res := &Result{OS: d.detectOS(ua, hints)}
	res.Client, res.Browser = d.detectClient(ua, hints)
	res.Device = d.detectDevice(ua, hints, res)
	return res
}

func hasLetter(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i] | 0x20; c >= 'a' && c <= 'z' {
			return true
		}
	}
	return false
}

var defaultDetector = sync.OnceValues(func() (*Detector, error) {
	return New()
})

// Parse classifies ua with a shared Detector using default options.
func Parse(ctx context.Context, ua string) (*Result, error) {
	d, err := defaultDetector()
	if err != nil {
		return nil, err
	}
	return d.Parse(ctx, ua, clienthints.Hints{})
}

// ParseRequest classifies r with a shared Detector using default options.
func ParseRequest(r *http.Request) (*Result, error) {
	d, err := defaultDetector()
	if err != nil {
		return nil, err
	}
	return d.ParseRequest(r)
}
