package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/postdeck/postdeck/internal/app/system/auth"
)

// TokenSecret is the HMAC secret test tokens are signed with. Verifiers
// under test must be constructed with the same bytes.
const TokenSecret = "test-token-secret"

// SignedToken mints an HS256 identity token for the given subject/email,
// valid for an hour.
func SignedToken(t *testing.T, subject, email string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(TokenSecret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

// NewJSONRequest creates a request with body marshaled as JSON. A nil body
// produces a bodyless request.
func NewJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	if body == nil {
		return httptest.NewRequest(method, target, nil)
	}
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// WithBearer adds an Authorization header carrying a signed test token.
func WithBearer(t *testing.T, r *http.Request, subject, email string) *http.Request {
	t.Helper()
	r.Header.Set("Authorization", "Bearer "+SignedToken(t, subject, email))
	return r
}

// WithIdentity injects a verified identity directly, bypassing the token
// middleware. Use for handler tests that are not exercising auth itself.
func WithIdentity(r *http.Request, subject, email string) *http.Request {
	return auth.WithIdentity(r, auth.Identity{Subject: subject, Email: email})
}

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
