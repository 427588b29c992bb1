package useragent_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uadetect/pkg/useragent"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	d := newDetector(t)

	var got *useragent.Result
	r := chi.NewRouter()
	r.Use(useragent.Middleware(d))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		got = useragent.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("stores the result", func(t *testing.T) {
		got = nil
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("User-Agent", reducedAndroidUA)
		req.Header.Set("Sec-CH-UA-Model", `"Pixel 7"`)
		req.Header.Set("Sec-CH-UA-Platform", `"Android"`)
		req.Header.Set("Sec-CH-UA-Platform-Version", `"14.0.0"`)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, rec.Header().Get("Accept-CH"), "Sec-CH-UA-Model")
		require.NotNil(t, got)
		assert.True(t, got.IsMobile())
		require.NotNil(t, got.Device)
		assert.Equal(t, "Pixel 7", got.Device.Model)
	})

	t.Run("unclassifiable request passes through", func(t *testing.T) {
		got = nil
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("User-Agent", "12345")
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Nil(t, got)
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Nil(t, useragent.FromContext(context.Background()))

	res := &useragent.Result{Bot: &useragent.Bot{Name: "Googlebot"}}
	ctx := useragent.SetToContext(context.Background(), res)
	assert.Same(t, res, useragent.FromContext(ctx))
}

func TestPackageParseRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", chromeWindowsUA)
	req.Header.Set("Sec-CH-UA-Platform", `"Windows"`)
	req.Header.Set("Sec-CH-UA-Platform-Version", `"15.0.0"`)

	res, err := useragent.ParseRequest(req)
	require.NoError(t, err)
	require.NotNil(t, res.OS)
	assert.Equal(t, "11", res.OS.Version)
}
