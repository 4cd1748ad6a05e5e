package httpx

import (
	"net/http"
	"strings"
)

// RequireAnyPermission lets the request through when the caller holds at
// least one of the codes. Permissions must already be in the context, see
// WithPermissions.
func RequireAnyPermission(codes ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if have := permissionsFromCtx(r.Context()); have != nil {
				for _, c := range codes {
					if have.HasPermission(c) {
						next.ServeHTTP(w, r)
						return
					}
				}
			}
			writeForbidden(w, codes...)
		})
	}
}

// RequireAllPermissions lets the request through only when the caller holds
// every code.
func RequireAllPermissions(codes ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			have := permissionsFromCtx(r.Context())
			if have == nil {
				writeForbidden(w, codes...)
				return
			}
			for _, c := range codes {
				if !have.HasPermission(c) {
					writeForbidden(w, codes...)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeForbidden(w http.ResponseWriter, required ...string) {
	challenge(w, "error", "insufficient_scope", "scope", strings.Join(required, " "))
	WriteError(w, http.StatusForbidden, "forbidden",
		"missing required permission: "+strings.Join(required, " or "))
}
