package http

import (
	"net/http"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/service"
	"github.com/aussiebroadwan/access/pkg/accesssdk"
	"github.com/aussiebroadwan/access/pkg/httpx"
)

type RolesHandler struct {
	Service *service.RoleService
}

// HandleList handles GET /v1/roles
//
//	@Summary		List roles
//	@Description	Optional name and code filters match substrings.
//	@Tags			Roles
//	@Produce		json
//	@Param			name	query		string	false	"Name contains"
//	@Param			code	query		string	false	"Code contains"
//	@Param			status	query		int		false	"0 disabled, 1 enabled"
//	@Success		200		{object}	accesssdk.ListRolesResponse
//	@Failure		400		{object}	accesssdk.ValidationErrorResponse
//	@Failure		403		{object}	accesssdk.ErrorResponse	"Missing sys:role:list"
//	@Security		BearerAuth
//	@Router			/v1/roles [get].
func (h *RolesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	status, err := queryStatus(r)
	if err != nil {
		accesssdk.NewValidationError(map[string]string{"status": err.Error()}).WriteError(w)
		return
	}
	q := r.URL.Query()
	roles, err := h.Service.List(r.Context(), service.RoleFilter{
		Name:   q.Get("name"),
		Code:   q.Get("code"),
		Status: status,
	})
	if err != nil {
		writeError(w, r, "failed to list roles", err)
		return
	}

	out := accesssdk.ListRolesResponse{Roles: make([]accesssdk.Role, len(roles))}
	for i, role := range roles {
		out.Roles[i] = toSDKRole(role)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /v1/roles/{id}
//
//	@Summary	Get a role
//	@Tags		Roles
//	@Produce	json
//	@Param		id	path		int	true	"Role ID"
//	@Success	200	{object}	accesssdk.Role
//	@Failure	404	{object}	accesssdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/roles/{id} [get].
func (h *RolesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	role, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, "failed to load role", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKRole(role))
}

// HandleCreate handles POST /v1/roles
//
//	@Summary	Create a role
//	@Tags		Roles
//	@Accept		json
//	@Produce	json
//	@Param		request	body		accesssdk.RoleRequest	true	"Role"
//	@Success	201		{object}	accesssdk.Role
//	@Failure	400		{object}	accesssdk.ValidationErrorResponse
//	@Failure	409		{object}	accesssdk.ErrorResponse	"Role code already exists"
//	@Security	BearerAuth
//	@Router		/v1/roles [post].
func (h *RolesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req accesssdk.RoleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	role, err := h.Service.Create(r.Context(), domain.Role{
		Name:      req.Name,
		Code:      req.Code,
		DataScope: domain.DataScope(req.DataScope),
		Order:     req.Order,
		Status:    statusOr(req.Status, domain.StatusEnabled),
		Remark:    req.Remark,
		MenuIDs:   req.MenuIDs,
		DeptIDs:   req.DeptIDs,
	})
	if err != nil {
		writeError(w, r, "failed to create role", err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toSDKRole(role))
}

// HandleUpdate handles PUT /v1/roles/{id}. The code cannot change and menu or
// department grants are managed by their own endpoints.
//
//	@Summary	Update a role
//	@Tags		Roles
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Role ID"
//	@Param		request	body		accesssdk.RoleRequest	true	"Role"
//	@Success	200		{object}	accesssdk.Role
//	@Failure	400		{object}	accesssdk.ValidationErrorResponse
//	@Failure	404		{object}	accesssdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/roles/{id} [put].
func (h *RolesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req accesssdk.RoleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	current, err := h.Service.Get(ctx, id)
	if err != nil {
		writeError(w, r, "failed to load role", err)
		return
	}

	current.Name = req.Name
	current.DataScope = domain.DataScope(req.DataScope)
	current.Order = req.Order
	current.Status = statusOr(req.Status, current.Status)
	current.Remark = req.Remark
	role, err := h.Service.Update(ctx, current)
	if err != nil {
		writeError(w, r, "failed to update role", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKRole(role))
}

// HandleAssignMenus handles PUT /v1/roles/{id}/menus
//
//	@Summary	Replace a role's menu grants
//	@Tags		Roles
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Role ID"
//	@Param		request	body		accesssdk.AssignMenusRequest	true	"Menu IDs"
//	@Success	200		{object}	accesssdk.Role
//	@Failure	400		{object}	accesssdk.ValidationErrorResponse	"Unknown menu"
//	@Failure	404		{object}	accesssdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/roles/{id}/menus [put].
func (h *RolesHandler) HandleAssignMenus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req accesssdk.AssignMenusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	role, err := h.Service.AssignMenus(r.Context(), id, req.MenuIDs)
	if err != nil {
		writeError(w, r, "failed to assign menus", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKRole(role))
}

// HandleDataScope handles PUT /v1/roles/{id}/data-scope. Department IDs are
// kept only for the custom scope.
//
//	@Summary	Set a role's data scope
//	@Tags		Roles
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Role ID"
//	@Param		request	body		accesssdk.DataScopeRequest	true	"Scope"
//	@Success	200		{object}	accesssdk.Role
//	@Failure	400		{object}	accesssdk.ValidationErrorResponse
//	@Failure	404		{object}	accesssdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/roles/{id}/data-scope [put].
func (h *RolesHandler) HandleDataScope(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req accesssdk.DataScopeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	role, err := h.Service.UpdateDataScope(r.Context(), id, domain.DataScope(req.DataScope), req.DeptIDs)
	if err != nil {
		writeError(w, r, "failed to update data scope", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKRole(role))
}

// HandleDelete handles DELETE /v1/roles/{id}
//
//	@Summary	Delete a role
//	@Tags		Roles
//	@Param		id	path	int	true	"Role ID"
//	@Success	204
//	@Failure	403	{object}	accesssdk.ErrorResponse	"Built-in admin role"
//	@Failure	404	{object}	accesssdk.ErrorResponse
//	@Failure	409	{object}	accesssdk.ErrorResponse	"Role is assigned to users"
//	@Security	BearerAuth
//	@Router		/v1/roles/{id} [delete].
func (h *RolesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeError(w, r, "failed to delete role", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
