// Package middleware provides the bearer-token request gate.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ayush/pet-qa-forum/internal/apperr"
	"github.com/ayush/pet-qa-forum/internal/auth"
	"github.com/ayush/pet-qa-forum/internal/httpx"
)

type ctxKey int

const identityKey ctxKey = iota

// RequireAuth validates the Authorization bearer token and injects the
// decoded identity into the request context.
func RequireAuth(svc *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				httpx.WriteError(w, apperr.Auth("Missing bearer token"))
				return
			}

			identity, err := svc.VerifyToken(strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")))
			if err != nil {
				httpx.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFrom returns the identity attached by RequireAuth, or nil if the
// request never passed through it.
func IdentityFrom(ctx context.Context) *auth.Identity {
	id, _ := ctx.Value(identityKey).(*auth.Identity)
	return id
}
