// Package requestid assigns a request id to every inbound request so panel
// and control log lines for one command can be correlated.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header is propagated unchanged across the panel -> control hop.
const Header = "X-Request-ID"

type ctxKey struct{}

// Middleware reuses the caller's request id or mints a new one, echoes it on
// the response, and stores it in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

// FromContext returns the request id, or "" when the middleware did not run.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
