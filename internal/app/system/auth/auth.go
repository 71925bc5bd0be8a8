// Package auth verifies bearer identity credentials and exposes the
// verified identity to downstream handlers through the request context.
//
// Token issuance lives in an external identity service; this package only
// checks that a presented token was signed with the shared HMAC secret and
// extracts the subject id and email claims.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/postdeck/postdeck/internal/app/system/httpjson"
	"go.uber.org/zap"
)

// Identity is the verified subject behind a bearer credential.
type Identity struct {
	Subject string // stable unique identifier from the token issuer
	Email   string
}

type ctxKey string

const identityKey ctxKey = "identity"

// CurrentIdentity returns the verified identity and a "found?" flag.
func CurrentIdentity(r *http.Request) (Identity, bool) {
	id, ok := r.Context().Value(identityKey).(Identity)
	return id, ok
}

// WithIdentity returns a copy of r carrying the identity in its context.
// Exported for tests that exercise handlers behind the middleware.
func WithIdentity(r *http.Request, id Identity) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), identityKey, id))
}

var (
	errNoHeader  = errors.New("authorization header missing")
	errBadHeader = errors.New("authorization header is not a bearer credential")
	errNoSubject = errors.New("token has no subject claim")
)

// Verifier validates HS256-signed identity tokens.
type Verifier struct {
	secret []byte
	log    *zap.Logger
}

// NewVerifier creates a Verifier using the shared HMAC secret.
func NewVerifier(secret []byte, logger *zap.Logger) *Verifier {
	return &Verifier{secret: secret, log: logger}
}

// Verify parses and validates a raw token string and returns the identity
// carried in its claims.
func (v *Verifier) Verify(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	})
	if err != nil {
		return Identity{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Identity{}, errors.New("invalid token")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Identity{}, errNoSubject
	}
	email, _ := claims["email"].(string)

	return Identity{Subject: sub, Email: email}, nil
}

// tokenFromRequest extracts the bearer token from the Authorization header.
func tokenFromRequest(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errNoHeader
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errBadHeader
	}
	return parts[1], nil
}

// Middleware authenticates the request's bearer credential and injects the
// resulting Identity into the request context. Requests without a valid
// credential get 401 and never reach the next handler.
func (v *Verifier) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := tokenFromRequest(r)
		if err != nil {
			httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		id, err := v.Verify(tokenString)
		if err != nil {
			v.log.Info("bearer token rejected", zap.Error(err))
			httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		next.ServeHTTP(w, WithIdentity(r, id))
	})
}
