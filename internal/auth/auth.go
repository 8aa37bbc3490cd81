// Package auth implements the static shared-secret checks for both tiers.
//
// The panel tier authenticates external callers with PanelKeyHeader; the
// control tier authenticates the panel with ControlKeyHeader. Both checks run
// as router middleware, before any payload parsing.
package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/voxctl/voxctl/internal/respond"
)

const (
	// PanelKeyHeader carries the external API key on public routes.
	PanelKeyHeader = "X-API-Key"
	// ControlKeyHeader carries the internal shared secret on /ctl routes.
	ControlKeyHeader = "X-Internal-Key"
)

// Equal compares a presented key with the configured secret in constant time.
func Equal(presented, secret string) bool {
	return subtle.ConstantTimeCompare([]byte(presented), []byte(secret)) == 1
}

// RequireKey returns middleware rejecting requests whose header does not match
// the secret. The response never reveals which part of the check failed.
func RequireKey(header, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !Equal(r.Header.Get(header), secret) {
				respond.WriteUnauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
