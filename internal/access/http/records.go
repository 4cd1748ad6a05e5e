package http

import (
	"net/http"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/service"
	"github.com/aussiebroadwan/access/internal/access/store"
	"github.com/aussiebroadwan/access/pkg/accesssdk"
	"github.com/aussiebroadwan/access/pkg/httpx"
)

// RecordsHandler serves the department-partitioned records. Rows outside the
// caller's data scope answer 404.
type RecordsHandler struct {
	Service *service.RecordService
}

// HandleList handles GET /v1/records
//
//	@Summary		List records
//	@Description	Records visible under the caller's data scope, newest first.
//	@Tags			Records
//	@Produce		json
//	@Param			title	query		string	false	"Title contains"
//	@Param			dept_id	query		int		false	"Department"
//	@Param			page	query		int		false	"Page, 1-based"
//	@Param			size	query		int		false	"Page size (max 100)"
//	@Success		200		{object}	accesssdk.ListRecordsResponse
//	@Failure		400		{object}	accesssdk.ValidationErrorResponse
//	@Failure		403		{object}	accesssdk.ErrorResponse	"Missing data:record:list"
//	@Security		BearerAuth
//	@Router			/v1/records [get].
func (h *RecordsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, errs := queryPage(r)
	deptID, err := queryInt(r, "dept_id")
	if err != nil {
		errs = setErr(errs, "dept_id", err.Error())
	}
	if len(errs) > 0 {
		accesssdk.NewValidationError(errs).WriteError(w)
		return
	}

	records, total, err := h.Service.List(ctx, callerScope(ctx), store.RecordQuery{
		Title:  r.URL.Query().Get("title"),
		DeptID: deptID,
		Page:   page,
	})
	if err != nil {
		writeError(w, r, "failed to list records", err)
		return
	}

	out := accesssdk.ListRecordsResponse{Records: make([]accesssdk.Record, len(records)), Total: total}
	for i, rec := range records {
		out.Records[i] = toSDKRecord(rec)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleScope handles GET /v1/records/scope
//
//	@Summary	Caller's record scope
//	@Tags		Records
//	@Produce	json
//	@Success	200	{object}	accesssdk.ScopeInfo
//	@Failure	403	{object}	accesssdk.ErrorResponse	"Missing data:record:list"
//	@Security	BearerAuth
//	@Router		/v1/records/scope [get].
func (h *RecordsHandler) HandleScope(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, toSDKScope(callerScope(r.Context())))
}

// HandleGet handles GET /v1/records/{id}
//
//	@Summary	Get a record
//	@Tags		Records
//	@Produce	json
//	@Param		id	path		int	true	"Record ID"
//	@Success	200	{object}	accesssdk.Record
//	@Failure	404	{object}	accesssdk.ErrorResponse	"Unknown record or outside the caller's data scope"
//	@Security	BearerAuth
//	@Router		/v1/records/{id} [get].
func (h *RecordsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rec, err := h.Service.Get(ctx, callerScope(ctx), id)
	if err != nil {
		writeError(w, r, "failed to load record", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKRecord(rec))
}

// HandleCreate handles POST /v1/records. The department defaults to the
// caller's and must be inside their data scope.
//
//	@Summary	Create a record
//	@Tags		Records
//	@Accept		json
//	@Produce	json
//	@Param		request	body		accesssdk.RecordRequest	true	"Record"
//	@Success	201		{object}	accesssdk.Record
//	@Failure	400		{object}	accesssdk.ValidationErrorResponse
//	@Failure	403		{object}	accesssdk.ErrorResponse	"Department outside the caller's data scope"
//	@Security	BearerAuth
//	@Router		/v1/records [post].
func (h *RecordsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req accesssdk.RecordRequest
	if !decodeBody(w, r, &req) {
		return
	}
	rec, err := h.Service.Create(ctx, callerScope(ctx), domain.Record{
		Title:   req.Title,
		Content: req.Content,
		DeptID:  req.DeptID,
	})
	if err != nil {
		writeError(w, r, "failed to create record", err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toSDKRecord(rec))
}

// HandleUpdate handles PUT /v1/records/{id}
//
//	@Summary	Update a record
//	@Tags		Records
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Record ID"
//	@Param		request	body		accesssdk.RecordRequest	true	"Record"
//	@Success	200		{object}	accesssdk.Record
//	@Failure	400		{object}	accesssdk.ValidationErrorResponse
//	@Failure	403		{object}	accesssdk.ErrorResponse	"Destination department outside the caller's data scope"
//	@Failure	404		{object}	accesssdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/records/{id} [put].
func (h *RecordsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req accesssdk.RecordRequest
	if !decodeBody(w, r, &req) {
		return
	}
	rec, err := h.Service.Update(ctx, callerScope(ctx), domain.Record{
		ID:      id,
		Title:   req.Title,
		Content: req.Content,
		DeptID:  req.DeptID,
	})
	if err != nil {
		writeError(w, r, "failed to update record", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKRecord(rec))
}

// HandleDelete handles DELETE /v1/records/{id}
//
//	@Summary	Delete a record
//	@Tags		Records
//	@Param		id	path	int	true	"Record ID"
//	@Success	204
//	@Failure	404	{object}	accesssdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/records/{id} [delete].
func (h *RecordsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Service.Delete(ctx, callerScope(ctx), id); err != nil {
		writeError(w, r, "failed to delete record", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
