package auth

import "context"

// Verifier checks a bearer token and returns the caller's claims.
type Verifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
