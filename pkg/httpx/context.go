package httpx

import (
	"context"

	"github.com/aussiebroadwan/access/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyUserID      ctxKey = "user_id"
	CtxKeyClaims      ctxKey = "claims"
	CtxKeyPermissions ctxKey = "permissions"
)

// PermissionChecker reports whether the caller holds a permission code.
type PermissionChecker interface {
	HasPermission(code string) bool
}

// UserIDFromContext returns the authenticated user id.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(CtxKeyUserID).(int64)
	return id, ok
}

// ClaimsFromContext returns the verified token claims.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(CtxKeyClaims).(jwtx.Claims)
	return c, ok
}

// WithPermissions stores the caller's resolved permissions for the authz
// middlewares.
func WithPermissions(ctx context.Context, p PermissionChecker) context.Context {
	return context.WithValue(ctx, CtxKeyPermissions, p)
}

func permissionsFromCtx(ctx context.Context) PermissionChecker {
	if p, ok := ctx.Value(CtxKeyPermissions).(PermissionChecker); ok {
		return p
	}
	return nil
}
