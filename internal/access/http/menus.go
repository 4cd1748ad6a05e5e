package http

import (
	"net/http"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/service"
	"github.com/aussiebroadwan/access/pkg/accesssdk"
	"github.com/aussiebroadwan/access/pkg/httpx"
)

type MenusHandler struct {
	Service *service.MenuService
}

func menuFromRequest(id int64, req accesssdk.MenuRequest, current domain.Menu) domain.Menu {
	visible := current.Visible
	if req.Visible != nil {
		visible = *req.Visible
	}
	return domain.Menu{
		ID:             id,
		ParentID:       req.ParentID,
		Name:           req.Name,
		Type:           domain.MenuType(req.Type),
		Path:           req.Path,
		Component:      req.Component,
		PermissionCode: req.Permission,
		Icon:           req.Icon,
		Order:          req.Order,
		Status:         statusOr(req.Status, current.Status),
		Visible:        visible,
		KeepAlive:      req.KeepAlive,
	}
}

// HandleList handles GET /v1/menus
//
//	@Summary	List menus
//	@Tags		Menus
//	@Produce	json
//	@Success	200	{array}		accesssdk.Menu
//	@Failure	403	{object}	accesssdk.ErrorResponse	"Missing sys:menu:list"
//	@Security	BearerAuth
//	@Router		/v1/menus [get].
func (h *MenusHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	menus, err := h.Service.List(r.Context())
	if err != nil {
		writeError(w, r, "failed to list menus", err)
		return
	}
	out := make([]accesssdk.Menu, len(menus))
	for i, m := range menus {
		out[i] = toSDKMenu(m)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleTree handles GET /v1/menus/tree. The tree is unfiltered, disabled
// entries included.
//
//	@Summary	Full menu tree
//	@Tags		Menus
//	@Produce	json
//	@Success	200	{array}		accesssdk.MenuNode
//	@Failure	403	{object}	accesssdk.ErrorResponse	"Missing sys:menu:list"
//	@Security	BearerAuth
//	@Router		/v1/menus/tree [get].
func (h *MenusHandler) HandleTree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.Service.Tree(r.Context())
	if err != nil {
		writeError(w, r, "failed to build menu tree", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKMenuTree(tree))
}

// HandleGet handles GET /v1/menus/{id}
//
//	@Summary	Get a menu
//	@Tags		Menus
//	@Produce	json
//	@Param		id	path		int	true	"Menu ID"
//	@Success	200	{object}	accesssdk.Menu
//	@Failure	404	{object}	accesssdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/menus/{id} [get].
func (h *MenusHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	m, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, "failed to load menu", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKMenu(m))
}

// HandleCreate handles POST /v1/menus. Status and visibility default to on.
//
//	@Summary	Create a menu
//	@Tags		Menus
//	@Accept		json
//	@Produce	json
//	@Param		request	body		accesssdk.MenuRequest	true	"Menu"
//	@Success	201		{object}	accesssdk.Menu
//	@Failure	400		{object}	accesssdk.ValidationErrorResponse
//	@Failure	403		{object}	accesssdk.ErrorResponse	"Missing sys:menu:add"
//	@Security	BearerAuth
//	@Router		/v1/menus [post].
func (h *MenusHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req accesssdk.MenuRequest
	if !decodeBody(w, r, &req) {
		return
	}
	defaults := domain.Menu{Status: domain.StatusEnabled, Visible: true}
	m, err := h.Service.Create(r.Context(), menuFromRequest(0, req, defaults))
	if err != nil {
		writeError(w, r, "failed to create menu", err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toSDKMenu(m))
}

// HandleUpdate handles PUT /v1/menus/{id}
//
//	@Summary	Update a menu
//	@Tags		Menus
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Menu ID"
//	@Param		request	body		accesssdk.MenuRequest	true	"Menu"
//	@Success	200		{object}	accesssdk.Menu
//	@Failure	400		{object}	accesssdk.ValidationErrorResponse
//	@Failure	404		{object}	accesssdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/menus/{id} [put].
func (h *MenusHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req accesssdk.MenuRequest
	if !decodeBody(w, r, &req) {
		return
	}
	current, err := h.Service.Get(ctx, id)
	if err != nil {
		writeError(w, r, "failed to load menu", err)
		return
	}
	m, err := h.Service.Update(ctx, menuFromRequest(id, req, current))
	if err != nil {
		writeError(w, r, "failed to update menu", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKMenu(m))
}

// HandleDelete handles DELETE /v1/menus/{id}
//
//	@Summary	Delete a menu
//	@Tags		Menus
//	@Param		id	path	int	true	"Menu ID"
//	@Success	204
//	@Failure	404	{object}	accesssdk.ErrorResponse
//	@Failure	409	{object}	accesssdk.ErrorResponse	"Menu has children"
//	@Security	BearerAuth
//	@Router		/v1/menus/{id} [delete].
func (h *MenusHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeError(w, r, "failed to delete menu", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
