package useragent_test

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrymomot/uadetect/pkg/cache"
	"github.com/dmitrymomot/uadetect/pkg/clienthints"
	"github.com/dmitrymomot/uadetect/pkg/useragent"
)

var (
	// Common user agent strings for benchmarking
	benchChromeDesktopUA  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	benchSafariMobileUA   = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Mobile/15E148 Safari/604.1"
	benchEdgeBrowserUA    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.2210.91"
	benchAndroidTabletUA  = "Mozilla/5.0 (Linux; Android 13; SM-X700) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	benchBotUA            = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
	benchSamsungBrowserUA = "Mozilla/5.0 (Linux; Android 14; SM-S918B) AppleWebKit/537.36 (KHTML, like Gecko) SamsungBrowser/23.0 Chrome/115.0.0.0 Mobile Safari/537.36"
	benchReducedAndroidUA = "Mozilla/5.0 (Linux; Android 10; K) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36"
	benchEmptyUA          = ""
)

// Package level sinks keep the compiler from optimizing the calls away
var (
	benchResult *useragent.Result
	benchErr    error
	benchID     string
)

func benchDetector(b *testing.B, opts ...useragent.Option) *useragent.Detector {
	b.Helper()
	d, err := useragent.New(opts...)
	if err != nil {
		b.Fatal(err)
	}
	return d
}

func benchmarkParse(b *testing.B, ua string, hints clienthints.Hints) {
	d := benchDetector(b)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchResult, benchErr = d.Parse(ctx, ua, hints)
	}
}

func BenchmarkParse_ChromeDesktop(b *testing.B) {
	benchmarkParse(b, benchChromeDesktopUA, clienthints.Hints{})
}

func BenchmarkParse_SafariMobile(b *testing.B) {
	benchmarkParse(b, benchSafariMobileUA, clienthints.Hints{})
}

func BenchmarkParse_EdgeBrowser(b *testing.B) {
	benchmarkParse(b, benchEdgeBrowserUA, clienthints.Hints{})
}

func BenchmarkParse_AndroidTablet(b *testing.B) {
	benchmarkParse(b, benchAndroidTabletUA, clienthints.Hints{})
}

func BenchmarkParse_Bot(b *testing.B) {
	benchmarkParse(b, benchBotUA, clienthints.Hints{})
}

func BenchmarkParse_SamsungBrowser(b *testing.B) {
	benchmarkParse(b, benchSamsungBrowserUA, clienthints.Hints{})
}

func BenchmarkParse_EmptyUA(b *testing.B) {
	benchmarkParse(b, benchEmptyUA, clienthints.Hints{})
}

// Reduced user agent restored from Client Hints
func BenchmarkParse_WithClientHints(b *testing.B) {
	benchmarkParse(b, benchReducedAndroidUA, clienthints.New(map[string]string{
		"Sec-CH-UA-Model":             `"Pixel 7"`,
		"Sec-CH-UA-Platform":          `"Android"`,
		"Sec-CH-UA-Platform-Version":  `"14.0.0"`,
		"Sec-CH-UA-Full-Version-List": `"Not_A Brand";v="8.0.0.0", "Chromium";v="120.0.6099.144", "Google Chrome";v="120.0.6099.144"`,
	}))
}

// Mix of different user agents to simulate real-world usage
func BenchmarkParse_All(b *testing.B) {
	userAgents := []string{
		benchChromeDesktopUA,
		benchSafariMobileUA,
		benchEdgeBrowserUA,
		benchAndroidTabletUA,
		benchBotUA,
		benchSamsungBrowserUA,
		benchReducedAndroidUA,
		benchEmptyUA,
	}
	d := benchDetector(b)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchResult, benchErr = d.Parse(ctx, userAgents[i%len(userAgents)], clienthints.Hints{})
	}
}

// Same mix served from the in-memory cache after the first round
func BenchmarkParse_Cached(b *testing.B) {
	userAgents := []string{
		benchChromeDesktopUA,
		benchSafariMobileUA,
		benchEdgeBrowserUA,
		benchAndroidTabletUA,
		benchSamsungBrowserUA,
	}
	d := benchDetector(b, useragent.WithCache(cache.NewMemory(100, time.Hour)))
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchResult, benchErr = d.Parse(ctx, userAgents[i%len(userAgents)], clienthints.Hints{})
	}
}

func BenchmarkShortIdentifier(b *testing.B) {
	d := benchDetector(b)
	ctx := context.Background()

	var results []*useragent.Result
	for _, ua := range []string{benchChromeDesktopUA, benchSafariMobileUA, benchBotUA} {
		res, err := d.Parse(ctx, ua, clienthints.Hints{})
		if err != nil {
			b.Fatal(err)
		}
		results = append(results, res)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchID = results[i%len(results)].ShortIdentifier()
	}
}
