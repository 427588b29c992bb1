package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uadetect/pkg/api"
	"github.com/dmitrymomot/uadetect/pkg/useragent"
)

const chromeWindowsUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

type envelope struct {
	Data  *useragent.Result `json:"data"`
	Error *api.ErrorDetail  `json:"error"`
}

func newRouter(t *testing.T, checks ...func(context.Context) error) http.Handler {
	t.Helper()
	d, err := useragent.New()
	require.NoError(t, err)
	return api.NewRouter(d, nil, checks...)
}

func serve(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestParseQuery(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	q := url.Values{}
	q.Set("ua", chromeWindowsUA)
	q.Set("platform", "Windows")
	q.Set("platformVersion", "15.0.0")

	rec, body := serve(t, h, httptest.NewRequest(http.MethodGet, "/v1/parse?"+q.Encode(), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, body.Data)
	require.NotNil(t, body.Data.OS)
	assert.Equal(t, "Windows", body.Data.OS.Name)
	assert.Equal(t, "11", body.Data.OS.Version)
	assert.Equal(t, "Chrome", body.Data.Browser.Name)
	assert.Nil(t, body.Error)
}

func TestParseBody(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantErr  string
	}{
		{
			name:     "classified",
			body:     `{"user_agent":"curl/8.4.0"}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "hints only",
			body:     `{"headers":{"Sec-CH-UA-Platform":"\"Android\"","Sec-CH-UA-Model":"\"Pixel 7\""}}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "nothing to classify",
			body:     `{"user_agent":"12345"}`,
			wantCode: http.StatusUnprocessableEntity,
			wantErr:  api.CodeNotClassified,
		},
		{
			name:     "malformed json",
			body:     `{"user_agent":`,
			wantCode: http.StatusBadRequest,
			wantErr:  api.CodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/v1/parse", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec, body := serve(t, h, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantErr == "" {
				assert.Nil(t, body.Error)
				assert.NotNil(t, body.Data)
				return
			}
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantErr, body.Error.Code)
			assert.Nil(t, body.Data)
		})
	}
}

func TestSelf(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("User-Agent", chromeWindowsUA)
	rec, body := serve(t, h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, body.Data)
	assert.True(t, body.Data.IsDesktop())
	assert.NotEmpty(t, rec.Header().Get("Accept-CH"))

	req = httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("User-Agent", "")
	rec, body = serve(t, h, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, api.CodeNotClassified, body.Error.Code)
}

func TestHealthChecks(t *testing.T) {
	t.Parallel()

	t.Run("liveness", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, func(context.Context) error { return errors.New("down") })

		rec, _ := serve(t, h, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ALIVE", rec.Body.String())
	})

	t.Run("ready", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, func(context.Context) error { return nil })

		rec, _ := serve(t, h, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "READY", rec.Body.String())
	})

	t.Run("not ready", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, func(context.Context) error { return nil }, func(context.Context) error { return errors.New("down") })

		rec, _ := serve(t, h, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "NOT_READY", rec.Body.String())
	})
}
