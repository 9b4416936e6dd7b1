package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"rescue-passport/internal/ports/auth"
)

type fakeVerifier struct {
	claims auth.Claims
	err    error
	got    string
}

func (f *fakeVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	f.got = token
	return f.claims, f.err
}

func captureClaims(t *testing.T, h func(http.Handler) http.Handler, req *http.Request) (auth.Claims, bool) {
	t.Helper()
	var (
		got auth.Claims
		ok  bool
	)
	h(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = GetClaims(r.Context())
	})).ServeHTTP(httptest.NewRecorder(), req)
	return got, ok
}

func TestAuthContext_DevMode_UsesDebugHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(DebugCallerHeader, " 0xabc ")

	c, ok := captureClaims(t, AuthContext(nil, nil), req)
	if !ok || c.UserID != "0xabc" {
		t.Fatalf("expected claims for 0xabc, got %#v ok=%v", c, ok)
	}
}

func TestAuthContext_DevMode_NoHeader_NoClaims(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if _, ok := captureClaims(t, AuthContext(nil, nil), req); ok {
		t.Fatalf("expected no claims")
	}
}

func TestAuthContext_Verifier_BearerToken(t *testing.T) {
	v := &fakeVerifier{claims: auth.Claims{UserID: "0xdef"}}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer tok-1")
	req.Header.Set(DebugCallerHeader, "0xignored")

	c, ok := captureClaims(t, AuthContext(v, nil), req)
	if !ok || c.UserID != "0xdef" {
		t.Fatalf("expected verifier claims, got %#v ok=%v", c, ok)
	}
	if v.got != "tok-1" {
		t.Fatalf("expected token tok-1, got %q", v.got)
	}
}

func TestAuthContext_Verifier_RejectedToken_NoClaims(t *testing.T) {
	v := &fakeVerifier{err: errors.New("expired")}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok-1")

	if _, ok := captureClaims(t, AuthContext(v, nil), req); ok {
		t.Fatalf("expected no claims on rejected token")
	}
}
