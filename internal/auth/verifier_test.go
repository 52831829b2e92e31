package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	v := NewVerifier("secret")

	token, err := v.Issue("ada", "Ada", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	identity, err := v.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if identity.UserID != "ada" || identity.Name != "Ada" {
		t.Fatalf("unexpected identity %+v", identity)
	}
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	v := NewVerifier("secret")

	if _, err := v.Verify("garbage"); err == nil {
		t.Fatalf("expected error for malformed token")
	}

	other := NewVerifier("other-secret")
	token, _ := other.Issue("ada", "Ada", time.Hour)
	if _, err := v.Verify(token); err == nil {
		t.Fatalf("expected error for wrong signing secret")
	}

	expired, _ := v.Issue("ada", "Ada", -time.Hour)
	if _, err := v.Verify(expired); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestNewVerifierWithoutSecret(t *testing.T) {
	if v := NewVerifier(""); v != nil {
		t.Fatalf("expected nil verifier without a secret")
	}
}

func TestResolveStates(t *testing.T) {
	v := NewVerifier("secret")
	token, _ := v.Issue("ada", "Ada", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	var nilVerifier *Verifier
	if state, _, _ := nilVerifier.Resolve(req); state != StateUnknown {
		t.Fatalf("nil verifier: expected unknown, got %v", state)
	}

	if state, _, err := v.Resolve(req); state != StateAnonymous || err != nil {
		t.Fatalf("no header: expected anonymous, got %v err=%v", state, err)
	}

	req.Header.Set("Authorization", "Basic abc")
	if state, _, err := v.Resolve(req); state != StateAnonymous || err == nil {
		t.Fatalf("non-bearer header: expected anonymous with error, got %v err=%v", state, err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	state, identity, err := v.Resolve(req)
	if state != StateAuthenticated || err != nil {
		t.Fatalf("valid token: expected authenticated, got %v err=%v", state, err)
	}
	if identity.UserID != "ada" {
		t.Fatalf("unexpected identity %+v", identity)
	}
}

func TestMiddleware(t *testing.T) {
	v := NewVerifier("secret")
	token, _ := v.Issue("ada", "Ada", time.Hour)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFrom(r.Context())
		if !ok || identity.UserID != "ada" {
			t.Fatalf("identity missing from context: %+v ok=%v", identity, ok)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	v.Middleware(next).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: expected 401, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req.Header.Set("Authorization", "Bearer "+token)
	v.Middleware(next).ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("valid token: expected 204, got %d", rec.Code)
	}

	var nilVerifier *Verifier
	rec = httptest.NewRecorder()
	nilVerifier.Middleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("nil verifier: expected 503, got %d", rec.Code)
	}
}
