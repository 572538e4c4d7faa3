package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/shopmesh/auth-service/internal/db"
)

type contextKey string

const identityContextKey contextKey = "identity"

// RequireAuth extracts the bearer token from the Authorization header,
// verifies it against the shared secret and injects the claims into
// the request context. The identity lives only for this request; no
// identity is cached across requests.
//
// Any service holding the same secret can mount this middleware in
// front of its own handlers without calling back to the auth service.
func RequireAuth(ts *TokenService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := bearerToken(r)
			if err != nil {
				sendError(w, http.StatusUnauthorized, err)
				return
			}

			claims, err := ts.Verify(raw)
			if err != nil {
				sendError(w, http.StatusUnauthorized, err)
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the verified claims placed on the
// request by RequireAuth, or ErrUnauthorized when none are present.
func IdentityFromContext(r *http.Request) (*db.Claims, error) {
	claims, ok := r.Context().Value(identityContextKey).(*db.Claims)
	if !ok || claims == nil {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

func bearerToken(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")
	if h == "" {
		return "", ErrMissingCredentials
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrMissingCredentials
	}
	return parts[1], nil
}
