package firebaseauth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func lookupServer(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Query().Get("key") == "" {
			t.Errorf("expected api key query parameter")
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
}

func TestLookupToken_Success(t *testing.T) {
	srv := lookupServer(t, http.StatusOK, map[string]any{
		"users": []map[string]string{
			{"localId": "uid-1", "email": "a@example.com", "displayName": "Amina"},
		},
	})
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})

	claims, err := c.LookupToken(context.Background(), "some-token")
	if err != nil {
		t.Fatalf("LookupToken error: %v", err)
	}
	if claims.UserID != "uid-1" || claims.Email != "a@example.com" || claims.Name != "Amina" {
		t.Fatalf("unexpected claims: %#v", claims)
	}
}

func TestLookupToken_InvalidTokenIsUnauthorized(t *testing.T) {
	srv := lookupServer(t, http.StatusBadRequest, map[string]any{
		"error": map[string]any{"message": "INVALID_ID_TOKEN"},
	})
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})

	if _, err := c.LookupToken(context.Background(), "bad-token"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestLookupToken_NoUsersIsUnauthorized(t *testing.T) {
	srv := lookupServer(t, http.StatusOK, map[string]any{"users": []any{}})
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})

	if _, err := c.LookupToken(context.Background(), "token"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for empty users, got %v", err)
	}
}

func TestLookupToken_UpstreamFailure(t *testing.T) {
	srv := lookupServer(t, http.StatusInternalServerError, map[string]any{})
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})

	if _, err := c.LookupToken(context.Background(), "token"); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestVerifier_NotConfigured(t *testing.T) {
	v := NewVerifier(nil)

	if _, err := v.Verify(context.Background(), "token"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}

	c := NewClient(Config{}) // no api key
	v = NewVerifier(c)
	if _, err := v.Verify(context.Background(), "token"); err == nil {
		t.Fatalf("expected error without api key")
	}
}

func TestVerifier_EmptyToken(t *testing.T) {
	c := NewClient(Config{APIKey: "test-key"})
	v := NewVerifier(c)

	if _, err := v.Verify(context.Background(), "   "); !errors.Is(err, ErrTokenEmpty) {
		t.Fatalf("expected ErrTokenEmpty, got %v", err)
	}
}
