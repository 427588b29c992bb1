package useragent

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/uadetect/pkg/clienthints"
	"github.com/dmitrymomot/uadetect/pkg/logger"
)

// Middleware classifies every request with d and stores the result in the
// request context, see FromContext. Requests that cannot be classified are
// passed on without a result. Every response asks the browser for the
// high-entropy Client Hints.
func Middleware(d *Detector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clienthints.RequestHints(w)

			res, err := d.ParseRequest(r)
			if err != nil {
				if !errors.Is(err, ErrNotClassified) {
					d.logger.WarnContext(r.Context(), "user agent classification failed",
						logger.UserAgent(r.UserAgent()), logger.Error(err))
				}
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(SetToContext(r.Context(), res)))
		})
	}
}
