// Package useragent classifies HTTP clients from the User-Agent header and,
// when the browser sends them, the User-Agent Client Hints headers.
//
// It identifies:
//   - Operating system: name, short code, version, family and CPU platform
//   - Browser: name, version, rendering engine and engine version
//   - Other clients: feed readers, mobile apps, media players, PIM and HTTP libraries
//   - Device: type (smartphone, tablet, tv, console, wearable, ...), brand and model
//   - Bots: crawler name, category, URL and operator
//
// Client Hints and the User-Agent often disagree. Chrome freezes the Android
// version and model in the User-Agent and only reports them in hints, while
// the User-Agent names forks such as Opera or Samsung Internet that hints
// describe as plain Chromium. The Detector builds one guess from each source
// and reconciles them facet by facet.
//
// # Architecture
//
// Rules live in YAML catalogs embedded in the binary (regexes/*.yml) and are
// compiled once per process by pkg/rules. Parse runs a fixed pipeline:
//
//	UA + hints ──► bot gate ──► restore ──► cache ──► OS ──► client/browser ──► device ──► Result
//	                  │                        │
//	                  └─► Result{Bot}          └─► cached Result
//
// The restore step splices the hinted model back into a reduced User-Agent so
// that the device catalogs can see it. The device step walks the catalogs
// (HbbTV, shell TV, notebooks, consoles, car browsers, cameras, media players,
// mobiles) and then infers the type from OS, client and generic tokens in a
// fixed order.
//
// # Usage
//
//	d, err := useragent.New(
//		useragent.WithVersionTruncation(version.TruncateMinor),
//		useragent.WithCache(cache.NewMemory(10_000, time.Hour)),
//	)
//	if err != nil {
//		return err
//	}
//
//	res, err := d.ParseRequest(r)
//	if errors.Is(err, useragent.ErrNotClassified) {
//		// nothing recognizable in the request
//	}
//
//	slog.Info("request", "client", res.ShortIdentifier())
//
//	if res.IsBot() {
//		// skip session tracking
//	}
//
// Middleware does the same for every request and stores the Result in the
// request context:
//
//	r := chi.NewRouter()
//	r.Use(useragent.Middleware(d))
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//		if res := useragent.FromContext(r.Context()); res.IsMobile() {
//			// serve mobile-optimised assets
//		}
//	})
//
// Services configured from the environment use LoadConfig and NewFromConfig;
// see Config for the recognized variables.
//
// # Error Handling
//
// Parse returns ErrNotClassified when the input carries nothing usable. New
// returns ErrCatalogLoad joined with the cause when an embedded catalog is
// broken. NewFromConfig reports ErrInvalidConfig and ErrCacheDriver. Cache
// failures are never returned; they are logged at debug level and the result
// is computed again.
//
// # Performance
//
// Each catalog is guarded by one combined alternation, so a miss costs a
// single regex scan. Results are cached by restored User-Agent plus a digest
// of the hints. Benchmarks live in benchmark_test.go.
package useragent
