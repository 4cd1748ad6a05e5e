package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/access/pkg/jwtx"
	"github.com/aussiebroadwan/access/pkg/slogx"
)

// bearerToken extracts the credentials of an "Authorization: Bearer" header.
// The scheme is case-insensitive.
func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// AuthnMiddleware requires a bearer token whose subject is a user id. The
// user id and claims are stored in the request context.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			raw, ok := bearerToken(r)
			if !ok {
				unauthorized(w, "missing bearer token")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("bearer token rejected", "error", err)
				unauthorized(w, "token verification failed")
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				log.Warn("bearer token subject rejected", "sub", claims.Subject)
				unauthorized(w, "token subject is not a user")
				return
			}

			next.ServeHTTP(w, r.WithContext(withAuth(r.Context(), userID, claims)))
		})
	}
}

func withAuth(ctx context.Context, userID int64, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, userID)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return slogx.WithUserID(ctx, userID)
}

func unauthorized(w http.ResponseWriter, desc string) {
	challenge(w, "error", "invalid_token", "error_description", desc)
	WriteError(w, http.StatusUnauthorized, "invalid_token", desc)
}
