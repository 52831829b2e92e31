// Package auth verifies bearer tokens and resolves the request identity.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// State is the resolution of an identity check. Unknown means the
// verifier itself is not configured, which is distinct from a request
// that simply carries no token.
type State int

const (
	StateUnknown State = iota
	StateAnonymous
	StateAuthenticated
)

// Identity is the authenticated caller.
type Identity struct {
	UserID string
	Name   string
}

type contextKey struct{}

// Verifier signs and checks HS256 bearer tokens.
type Verifier struct {
	secret []byte
}

// NewVerifier returns nil when no secret is configured; callers treat a
// nil verifier as "auth unavailable".
func NewVerifier(secret string) *Verifier {
	if secret == "" {
		return nil
	}
	return &Verifier{secret: []byte(secret)}
}

// Issue mints a token for userID, mainly for tooling and tests.
func (v *Verifier) Issue(userID, name string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"name": name,
		"exp":  time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

// Verify parses and validates a bearer token.
func (v *Verifier) Verify(token string) (Identity, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return Identity{}, fmt.Errorf("parse token: %w", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, fmt.Errorf("unexpected claims type")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Identity{}, fmt.Errorf("token missing subject")
	}
	name, _ := claims["name"].(string)
	return Identity{UserID: sub, Name: name}, nil
}

// Resolve classifies a request: no Authorization header is anonymous, a
// bad token is anonymous with an error, a nil verifier is unknown.
func (v *Verifier) Resolve(r *http.Request) (State, Identity, error) {
	if v == nil {
		return StateUnknown, Identity{}, nil
	}
	header := r.Header.Get("Authorization")
	if header == "" {
		return StateAnonymous, Identity{}, nil
	}
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return StateAnonymous, Identity{}, fmt.Errorf("authorization header is not a bearer token")
	}
	identity, err := v.Verify(token)
	if err != nil {
		return StateAnonymous, Identity{}, err
	}
	return StateAuthenticated, identity, nil
}

// Middleware rejects requests without a valid bearer token and stores the
// identity in the request context. A nil verifier degrades to 503 so a
// missing auth secret disables the gated routes without crashing anything.
func (v *Verifier) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state, identity, err := v.Resolve(r)
		switch state {
		case StateUnknown:
			http.Error(w, "authentication unavailable", http.StatusServiceUnavailable)
			return
		case StateAnonymous:
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

// WithIdentity stores identity in ctx.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, identity)
}

// IdentityFrom extracts the authenticated identity, if any.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(contextKey{}).(Identity)
	return identity, ok
}
