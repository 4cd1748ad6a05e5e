package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/access/internal/access/policy"
	"github.com/aussiebroadwan/access/internal/access/service"
	"github.com/aussiebroadwan/access/internal/access/store"
	"github.com/aussiebroadwan/access/pkg/accesssdk"
	"github.com/aussiebroadwan/access/pkg/httpx"
	"github.com/aussiebroadwan/access/pkg/slogx"
)

type ctxKey struct{}

// LoadAccess resolves the authenticated user and stores the result for the
// permission middlewares and handlers. It must run after AuthnMiddleware.
func LoadAccess(access *service.AccessService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			userID, ok := httpx.UserIDFromContext(ctx)
			if !ok {
				accesssdk.ErrInvalidToken.WriteError(w)
				return
			}

			scope, err := access.Scope(ctx, userID)
			if errors.Is(err, store.ErrNotFound) {
				// Valid token for an account that no longer exists.
				slogx.FromContext(ctx).Warn("token subject has no account")
				accesssdk.NewAPIError(http.StatusUnauthorized, accesssdk.ErrorCodeInvalidToken, "unknown user").WriteError(w)
				return
			}
			if err != nil {
				writeError(w, r, "failed to resolve access", err)
				return
			}

			ctx = context.WithValue(ctx, ctxKey{}, scope)
			ctx = httpx.WithPermissions(ctx, scope.Result)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// callerScope returns what LoadAccess resolved for this request.
func callerScope(ctx context.Context) service.ScopeInfo {
	s, _ := ctx.Value(ctxKey{}).(service.ScopeInfo)
	return s
}

type AccessHandler struct {
	Access *service.AccessService
	Users  *service.UserService
}

// HandleMe returns the caller's effective access.
//
//	@Summary		Caller's effective access
//	@Description	Permission codes, visible departments and the winning data scope of the authenticated user.
//	@Tags			Access
//	@Produce		json
//	@Success		200	{object}	accesssdk.AccessResponse
//	@Failure		401	{object}	accesssdk.ErrorResponse	"Missing or invalid token"
//	@Failure		500	{object}	accesssdk.ErrorResponse	"Inconsistent access configuration"
//	@Security		BearerAuth
//	@Router			/v1/me/access [get].
func (h *AccessHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, toSDKAccess(callerScope(r.Context()).Result))
}

// HandlePermissions lists the caller's permission codes.
//
//	@Summary	Caller's permission codes
//	@Tags		Access
//	@Produce	json
//	@Success	200	{object}	accesssdk.PermissionsResponse
//	@Failure	401	{object}	accesssdk.ErrorResponse	"Missing or invalid token"
//	@Security	BearerAuth
//	@Router		/v1/me/permissions [get].
func (h *AccessHandler) HandlePermissions(w http.ResponseWriter, r *http.Request) {
	res := callerScope(r.Context()).Result
	httpx.WriteJSON(w, http.StatusOK, accesssdk.PermissionsResponse{Permissions: nonNil(res.PermissionCodes)})
}

// HandleMenus returns the navigation tree the caller may see.
//
//	@Summary		Caller's menu tree
//	@Description	Enabled menus the caller holds a permission for, plus the directories leading to them. Ordered by sort order.
//	@Tags			Access
//	@Produce		json
//	@Success		200	{array}		accesssdk.MenuNode
//	@Failure		401	{object}	accesssdk.ErrorResponse	"Missing or invalid token"
//	@Security		BearerAuth
//	@Router			/v1/me/menus [get].
func (h *AccessHandler) HandleMenus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	menus, err := h.Access.Menus(ctx, callerScope(ctx).Result.UserID)
	if err != nil {
		writeError(w, r, "failed to build menu tree", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKMenuTree(menus))
}

// HandleRoutes returns the caller's menu tree shaped as UI routes.
//
//	@Summary	Caller's UI routes
//	@Tags		Access
//	@Produce	json
//	@Success	200	{array}		accesssdk.Route
//	@Failure	401	{object}	accesssdk.ErrorResponse	"Missing or invalid token"
//	@Security	BearerAuth
//	@Router		/v1/me/routes [get].
func (h *AccessHandler) HandleRoutes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	routes, err := h.Access.Routes(ctx, callerScope(ctx).Result.UserID)
	if err != nil {
		writeError(w, r, "failed to build routes", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, nonNil(routes))
}

// HandleUserAccess returns another user's effective access. The user must be
// inside the caller's data scope.
//
//	@Summary	A user's effective access
//	@Tags		Access
//	@Produce	json
//	@Param		id	path		int	true	"User ID"
//	@Success	200	{object}	accesssdk.AccessResponse
//	@Failure	401	{object}	accesssdk.ErrorResponse	"Missing or invalid token"
//	@Failure	403	{object}	accesssdk.ErrorResponse	"Missing sys:user:list"
//	@Failure	404	{object}	accesssdk.ErrorResponse	"Unknown user or outside the caller's data scope"
//	@Security	BearerAuth
//	@Router		/v1/users/{id}/access [get].
func (h *AccessHandler) HandleUserAccess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if _, err := h.Users.Get(ctx, id, callerFilter(ctx)); err != nil {
		writeError(w, r, "failed to load user", err)
		return
	}

	res, err := h.Access.Resolve(ctx, id)
	if err != nil {
		writeError(w, r, "failed to resolve access", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKAccess(res))
}

// callerFilter is the row filter for department-partitioned listings.
func callerFilter(ctx context.Context) policy.RowFilter {
	return callerScope(ctx).Result.RowFilter()
}
