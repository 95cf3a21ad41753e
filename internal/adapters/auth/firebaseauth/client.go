package firebaseauth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"vitashifa/internal/platform/httpclient"
	"vitashifa/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("firebase client not configured")
	ErrUnauthorized  = errors.New("firebase unauthorized")
	ErrUpstream      = errors.New("firebase upstream error")
)

const defaultBaseURL = "https://identitytoolkit.googleapis.com/v1"

type Config struct {
	// APIKey is the Firebase web API key, sent as a query parameter.
	APIKey string

	// BaseURL overrides the Identity Toolkit endpoint, mainly for tests.
	BaseURL string

	Timeout time.Duration
}

type Client struct {
	http   *httpclient.Client
	apiKey string
}

func NewClient(cfg Config) *Client {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}

	hc, err := httpclient.NewWithBaseURL(base, cfg.Timeout)
	if err != nil {
		// Only reachable with a malformed override; behave as unconfigured.
		hc = nil
	}

	return &Client{
		http:   hc,
		apiKey: strings.TrimSpace(cfg.APIKey),
	}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.apiKey != ""
}

// LookupToken resolves an ID token to account claims via accounts:lookup.
func (c *Client) LookupToken(ctx context.Context, idToken string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	idToken = strings.TrimSpace(idToken)
	if idToken == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	reqBody := map[string]string{
		"idToken": idToken,
	}

	var out struct {
		Users []struct {
			LocalID     string `json:"localId"`
			Email       string `json:"email"`
			DisplayName string `json:"displayName"`
		} `json:"users"`
	}

	err := c.http.DoJSON(ctx, http.MethodPost, "/accounts:lookup?key="+c.apiKey, nil, reqBody, &out)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			// Identity Toolkit reports invalid or expired tokens as 400.
			switch httpErr.StatusCode {
			case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
				return auth.Claims{}, ErrUnauthorized
			}
			return auth.Claims{}, fmt.Errorf("%w: status=%d", ErrUpstream, httpErr.StatusCode)
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if len(out.Users) == 0 {
		return auth.Claims{}, ErrUnauthorized
	}

	u := out.Users[0]
	u.LocalID = strings.TrimSpace(u.LocalID)
	if u.LocalID == "" {
		return auth.Claims{}, errors.New("firebase response missing localId")
	}

	return auth.Claims{
		UserID: u.LocalID,
		Email:  strings.TrimSpace(u.Email),
		Name:   strings.TrimSpace(u.DisplayName),
	}, nil
}
