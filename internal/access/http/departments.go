package http

import (
	"net/http"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/service"
	"github.com/aussiebroadwan/access/pkg/accesssdk"
	"github.com/aussiebroadwan/access/pkg/httpx"
)

type DepartmentsHandler struct {
	Service *service.DepartmentService
}

// HandleList handles GET /v1/depts
//
//	@Summary	List departments
//	@Tags		Departments
//	@Produce	json
//	@Success	200	{array}		accesssdk.Department
//	@Failure	401	{object}	accesssdk.ErrorResponse	"Missing or invalid token"
//	@Failure	403	{object}	accesssdk.ErrorResponse	"Missing sys:dept:list"
//	@Security	BearerAuth
//	@Router		/v1/depts [get].
func (h *DepartmentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	depts, err := h.Service.List(r.Context())
	if err != nil {
		writeError(w, r, "failed to list departments", err)
		return
	}
	out := make([]accesssdk.Department, len(depts))
	for i, d := range depts {
		out[i] = toSDKDepartment(d)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleTree handles GET /v1/depts/tree
//
//	@Summary	Department tree
//	@Tags		Departments
//	@Produce	json
//	@Success	200	{array}		accesssdk.DepartmentNode
//	@Failure	403	{object}	accesssdk.ErrorResponse	"Missing sys:dept:list"
//	@Failure	500	{object}	accesssdk.ErrorResponse	"Department hierarchy contains a cycle"
//	@Security	BearerAuth
//	@Router		/v1/depts/tree [get].
func (h *DepartmentsHandler) HandleTree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.Service.Tree(r.Context())
	if err != nil {
		writeError(w, r, "failed to build department tree", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKDepartmentTree(tree))
}

// HandleGet handles GET /v1/depts/{id}
//
//	@Summary	Get a department
//	@Tags		Departments
//	@Produce	json
//	@Param		id	path		int	true	"Department ID"
//	@Success	200	{object}	accesssdk.Department
//	@Failure	404	{object}	accesssdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/depts/{id} [get].
func (h *DepartmentsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	d, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, "failed to load department", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKDepartment(d))
}

// HandleCreate handles POST /v1/depts
//
//	@Summary	Create a department
//	@Tags		Departments
//	@Accept		json
//	@Produce	json
//	@Param		request	body		accesssdk.DepartmentRequest	true	"Department"
//	@Success	201		{object}	accesssdk.Department
//	@Failure	400		{object}	accesssdk.ValidationErrorResponse
//	@Failure	403		{object}	accesssdk.ErrorResponse	"Missing sys:dept:add"
//	@Security	BearerAuth
//	@Router		/v1/depts [post].
func (h *DepartmentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req accesssdk.DepartmentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	d, err := h.Service.Create(r.Context(), domain.Department{
		ParentID: req.ParentID,
		Name:     req.Name,
		Leader:   req.Leader,
		Phone:    req.Phone,
		Order:    req.Order,
		Status:   statusOr(req.Status, domain.StatusEnabled),
	})
	if err != nil {
		writeError(w, r, "failed to create department", err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toSDKDepartment(d))
}

// HandleUpdate handles PUT /v1/depts/{id}. Omitting status keeps the current
// one.
//
//	@Summary	Update a department
//	@Tags		Departments
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Department ID"
//	@Param		request	body		accesssdk.DepartmentRequest	true	"Department"
//	@Success	200		{object}	accesssdk.Department
//	@Failure	400		{object}	accesssdk.ValidationErrorResponse	"Invalid fields, or the new parent is the department itself or below it"
//	@Failure	404		{object}	accesssdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/depts/{id} [put].
func (h *DepartmentsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req accesssdk.DepartmentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	current, err := h.Service.Get(ctx, id)
	if err != nil {
		writeError(w, r, "failed to load department", err)
		return
	}

	d, err := h.Service.Update(ctx, domain.Department{
		ID:       id,
		ParentID: req.ParentID,
		Name:     req.Name,
		Leader:   req.Leader,
		Phone:    req.Phone,
		Order:    req.Order,
		Status:   statusOr(req.Status, current.Status),
	})
	if err != nil {
		writeError(w, r, "failed to update department", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKDepartment(d))
}

// HandleDelete handles DELETE /v1/depts/{id}
//
//	@Summary	Delete a department
//	@Tags		Departments
//	@Param		id	path	int	true	"Department ID"
//	@Success	204
//	@Failure	404	{object}	accesssdk.ErrorResponse
//	@Failure	409	{object}	accesssdk.ErrorResponse	"Department has sub-departments or users"
//	@Security	BearerAuth
//	@Router		/v1/depts/{id} [delete].
func (h *DepartmentsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeError(w, r, "failed to delete department", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
