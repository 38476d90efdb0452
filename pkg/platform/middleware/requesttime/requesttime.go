// Package requesttime provides middleware for request-scoped time.
// All normalization within a single HTTP request uses the same "now", so a
// profile built from one payload has one consistent fallback date.
package requesttime

import (
	"net/http"
	"time"

	"creditguard/pkg/requestcontext"
)

// Middleware captures the current time at the start of the request
// and stores it in the context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
