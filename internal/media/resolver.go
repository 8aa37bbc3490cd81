// Package media resolves playable URLs into streamable sources.
package media

import "context"

// Resolution is what the resolver returns for a playable URL.
type Resolution struct {
	Title     string
	StreamURL string
	PageURL   string
}

// Resolver turns a user-supplied URL into a streamable source. Failures are
// reported verbatim so callers can surface the underlying reason.
type Resolver interface {
	Resolve(ctx context.Context, url string) (Resolution, error)
}
