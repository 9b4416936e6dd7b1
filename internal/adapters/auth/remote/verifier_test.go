package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newProvider(t *testing.T, handler http.HandlerFunc) *Verifier {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	c, err := NewClient(Config{BaseURL: ts.URL, APIKey: "secret"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return NewVerifier(c)
}

func TestVerifier_ReturnsClaims(t *testing.T) {
	v := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != verifyPath || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Api-Key") != "secret" {
			t.Errorf("missing api key header")
		}
		var body verifyRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Token != "tok-1" {
			t.Errorf("expected token in body, got %q", body.Token)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"user_id": " 0xabc ", "email": "a@b.c"})
	})

	claims, err := v.Verify(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.UserID != "0xabc" || claims.Email != "a@b.c" {
		t.Fatalf("unexpected claims: %#v", claims)
	}
}

func TestVerifier_Unauthorized(t *testing.T) {
	v := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	})

	_, err := v.Verify(context.Background(), "tok-1")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestVerifier_UpstreamError(t *testing.T) {
	v := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, err := v.Verify(context.Background(), "tok-1")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestVerifier_MissingUserID(t *testing.T) {
	v := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"email": "a@b.c"})
	})

	if _, err := v.Verify(context.Background(), "tok-1"); err == nil {
		t.Fatal("expected error for missing user id")
	}
}

func TestVerifier_NotConfigured(t *testing.T) {
	c, err := NewClient(Config{})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := NewVerifier(c).Verify(context.Background(), "tok"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := NewVerifier(c).Verify(context.Background(), "  "); !errors.Is(err, ErrTokenEmpty) {
		t.Fatalf("expected ErrTokenEmpty, got %v", err)
	}
}
