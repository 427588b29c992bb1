package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/uadetect/pkg/clienthints"
	"github.com/dmitrymomot/uadetect/pkg/logger"
	"github.com/dmitrymomot/uadetect/pkg/useragent"
)

const maxBodyBytes = 64 << 10

// ParseRequest is the body of POST /v1/parse. Headers accepts the same
// names as clienthints.New.
type ParseRequest struct {
	UserAgent string            `json:"user_agent"`
	Headers   map[string]string `json:"headers,omitempty"`
}

type handlers struct {
	detector *useragent.Detector
	logger   *slog.Logger
}

// self reports what the middleware found for the calling request.
func (h *handlers) self(w http.ResponseWriter, r *http.Request) {
	res := useragent.FromContext(r.Context())
	if res == nil {
		writeError(w, http.StatusUnprocessableEntity, CodeNotClassified, useragent.ErrNotClassified.Error())
		return
	}
	writeData(w, res)
}

func (h *handlers) parseQuery(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	ua := query.Get("ua")

	headers := make(map[string]string, len(query))
	for name := range query {
		if name != "ua" {
			headers[name] = query.Get(name)
		}
	}
	h.classify(w, r, ua, clienthints.New(headers))
}

func (h *handlers) parseBody(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid request body")
		return
	}
	h.classify(w, r, req.UserAgent, clienthints.New(req.Headers))
}

func (h *handlers) classify(w http.ResponseWriter, r *http.Request, ua string, hints clienthints.Hints) {
	res, err := h.detector.Parse(r.Context(), ua, hints)
	switch {
	case errors.Is(err, useragent.ErrNotClassified):
		writeError(w, http.StatusUnprocessableEntity, CodeNotClassified, err.Error())
	case err != nil:
		h.logger.ErrorContext(r.Context(), "classification failed", logger.UserAgent(ua), logger.Error(err))
		writeError(w, http.StatusInternalServerError, CodeInternal, "")
	default:
		writeData(w, res)
	}
}
