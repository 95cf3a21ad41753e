package firebaseauth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vitashifa/internal/ports/auth"
)

var (
	ErrTokenEmpty = errors.New("token is empty")
)

// Verifier implements auth.Verifier against Firebase Identity Toolkit.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	claims, err := v.client.LookupToken(ctx, token)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("firebase verify failed: %w", err)
	}

	claims.UserID = strings.TrimSpace(claims.UserID)
	if claims.UserID == "" {
		return auth.Claims{}, errors.New("firebase claims missing user id")
	}

	return claims, nil
}
