package http

import (
	"net/http"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/service"
	"github.com/aussiebroadwan/access/internal/access/store"
	"github.com/aussiebroadwan/access/pkg/accesssdk"
	"github.com/aussiebroadwan/access/pkg/httpx"
	"github.com/aussiebroadwan/access/pkg/slogx"
)

// UsersHandler serves account management. Every read and write first checks
// the target against the caller's data scope; hidden users answer 404.
type UsersHandler struct {
	Service *service.UserService
}

// HandleList handles GET /v1/users
//
//	@Summary		List users
//	@Description	Users visible under the caller's data scope. Text filters match substrings.
//	@Tags			Users
//	@Produce		json
//	@Param			username	query		string	false	"Username contains"
//	@Param			real_name	query		string	false	"Real name contains"
//	@Param			phone		query		string	false	"Phone contains"
//	@Param			dept_id		query		int		false	"Department"
//	@Param			status		query		int		false	"0 disabled, 1 enabled"
//	@Param			page		query		int		false	"Page, 1-based"
//	@Param			size		query		int		false	"Page size (max 100)"
//	@Success		200			{object}	accesssdk.ListUsersResponse
//	@Failure		400			{object}	accesssdk.ValidationErrorResponse
//	@Failure		403			{object}	accesssdk.ErrorResponse	"Missing sys:user:list"
//	@Security		BearerAuth
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, errs := queryPage(r)
	deptID, err := queryInt(r, "dept_id")
	if err != nil {
		errs = setErr(errs, "dept_id", err.Error())
	}
	status, err := queryStatus(r)
	if err != nil {
		errs = setErr(errs, "status", err.Error())
	}
	if len(errs) > 0 {
		accesssdk.NewValidationError(errs).WriteError(w)
		return
	}

	q := r.URL.Query()
	users, total, err := h.Service.List(ctx, store.UserQuery{
		Username: q.Get("username"),
		RealName: q.Get("real_name"),
		Phone:    q.Get("phone"),
		DeptID:   deptID,
		Status:   status,
		Filter:   callerFilter(ctx),
		Page:     page,
	})
	if err != nil {
		writeError(w, r, "failed to list users", err)
		return
	}

	out := accesssdk.ListUsersResponse{Users: make([]accesssdk.User, len(users)), Total: total}
	for i, u := range users {
		out.Users[i] = toSDKUser(u)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /v1/users/{id}
//
//	@Summary	Get a user
//	@Tags		Users
//	@Produce	json
//	@Param		id	path		int	true	"User ID"
//	@Success	200	{object}	accesssdk.User
//	@Failure	404	{object}	accesssdk.ErrorResponse	"Unknown user or outside the caller's data scope"
//	@Security	BearerAuth
//	@Router		/v1/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	u, ok := h.visibleUser(w, r)
	if !ok {
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKUser(u))
}

// HandleCreate handles POST /v1/users
//
//	@Summary	Create a user
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		accesssdk.CreateUserRequest	true	"User"
//	@Success	201		{object}	accesssdk.User
//	@Failure	400		{object}	accesssdk.ValidationErrorResponse
//	@Failure	403		{object}	accesssdk.ErrorResponse	"Department outside the caller's data scope"
//	@Failure	409		{object}	accesssdk.ErrorResponse	"Username already taken"
//	@Security	BearerAuth
//	@Router		/v1/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req accesssdk.CreateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}
	u, err := h.Service.Create(ctx, callerScope(ctx), domain.User{
		Username: req.Username,
		RealName: req.RealName,
		Phone:    req.Phone,
		Email:    req.Email,
		DeptID:   req.DeptID,
		RoleIDs:  req.RoleIDs,
		Status:   statusOr(req.Status, domain.StatusEnabled),
	}, req.Password)
	if err != nil {
		writeError(w, r, "failed to create user", err)
		return
	}

	slogx.FromContext(ctx).Info("user created", "target_user_id", u.ID, "username", u.Username)
	httpx.WriteJSON(w, http.StatusCreated, toSDKUser(u))
}

// HandleUpdate handles PUT /v1/users/{id}
//
//	@Summary	Update a user's profile
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"User ID"
//	@Param		request	body		accesssdk.UpdateUserRequest	true	"Profile"
//	@Success	200		{object}	accesssdk.User
//	@Failure	400		{object}	accesssdk.ValidationErrorResponse
//	@Failure	403		{object}	accesssdk.ErrorResponse	"Department outside the caller's data scope"
//	@Failure	404		{object}	accesssdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/users/{id} [put].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	current, ok := h.visibleUser(w, r)
	if !ok {
		return
	}
	var req accesssdk.UpdateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	current.RealName = req.RealName
	current.Phone = req.Phone
	current.Email = req.Email
	current.DeptID = req.DeptID
	u, err := h.Service.Update(r.Context(), callerScope(r.Context()), current)
	if err != nil {
		writeError(w, r, "failed to update user", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKUser(u))
}

// HandleStatus handles PUT /v1/users/{id}/status
//
//	@Summary	Enable or disable a user
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"User ID"
//	@Param		request	body		accesssdk.UserStatusRequest	true	"Status"
//	@Success	200		{object}	accesssdk.User
//	@Failure	403		{object}	accesssdk.ErrorResponse	"Built-in admin account"
//	@Failure	404		{object}	accesssdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/users/{id}/status [put].
func (h *UsersHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	u, ok := h.visibleUser(w, r)
	if !ok {
		return
	}
	var req accesssdk.UserStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.Service.UpdateStatus(ctx, u.ID, domain.Status(req.Status)); err != nil {
		writeError(w, r, "failed to update user status", err)
		return
	}

	slogx.FromContext(ctx).Info("user status changed", "target_user_id", u.ID, "status", req.Status)
	u.Status = domain.Status(req.Status)
	httpx.WriteJSON(w, http.StatusOK, toSDKUser(u))
}

// HandleRoles handles PUT /v1/users/{id}/roles
//
//	@Summary	Replace a user's roles
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int								true	"User ID"
//	@Param		request	body		accesssdk.AssignRolesRequest	true	"Role IDs"
//	@Success	200		{object}	accesssdk.User
//	@Failure	400		{object}	accesssdk.ValidationErrorResponse	"Unknown role"
//	@Failure	404		{object}	accesssdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/users/{id}/roles [put].
func (h *UsersHandler) HandleRoles(w http.ResponseWriter, r *http.Request) {
	u, ok := h.visibleUser(w, r)
	if !ok {
		return
	}
	var req accesssdk.AssignRolesRequest
	if !decodeBody(w, r, &req) {
		return
	}
	updated, err := h.Service.AssignRoles(r.Context(), u.ID, req.RoleIDs)
	if err != nil {
		writeError(w, r, "failed to assign roles", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKUser(updated))
}

// HandlePassword handles PUT /v1/users/{id}/password. With an empty password
// a new one is generated and returned once.
//
//	@Summary	Reset a user's password
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int								true	"User ID"
//	@Param		request	body		accesssdk.ResetPasswordRequest	true	"New password, empty to generate"
//	@Success	200		{object}	accesssdk.ResetPasswordResponse	"Generated password"
//	@Success	204		"Password set"
//	@Failure	400		{object}	accesssdk.ValidationErrorResponse
//	@Failure	404		{object}	accesssdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/users/{id}/password [put].
func (h *UsersHandler) HandlePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	u, ok := h.visibleUser(w, r)
	if !ok {
		return
	}
	var req accesssdk.ResetPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}
	password, err := h.Service.ResetPassword(ctx, u.ID, req.Password)
	if err != nil {
		writeError(w, r, "failed to reset password", err)
		return
	}

	slogx.FromContext(ctx).Info("password reset", "target_user_id", u.ID, "generated", req.Password == "")
	if req.Password == "" {
		httpx.WriteJSON(w, http.StatusOK, accesssdk.ResetPasswordResponse{Password: password})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete handles DELETE /v1/users/{id}
//
//	@Summary	Delete a user
//	@Tags		Users
//	@Param		id	path	int	true	"User ID"
//	@Success	204
//	@Failure	403	{object}	accesssdk.ErrorResponse	"Built-in admin account"
//	@Failure	404	{object}	accesssdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	u, ok := h.visibleUser(w, r)
	if !ok {
		return
	}
	if err := h.Service.Delete(ctx, u.ID); err != nil {
		writeError(w, r, "failed to delete user", err)
		return
	}

	slogx.FromContext(ctx).Info("user deleted", "target_user_id", u.ID, "username", u.Username)
	w.WriteHeader(http.StatusNoContent)
}

// visibleUser loads the {id} user through the caller's row filter.
func (h *UsersHandler) visibleUser(w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	id, ok := pathID(w, r)
	if !ok {
		return domain.User{}, false
	}
	u, err := h.Service.Get(r.Context(), id, callerFilter(r.Context()))
	if err != nil {
		writeError(w, r, "failed to load user", err)
		return domain.User{}, false
	}
	return u, true
}

func setErr(errs map[string]string, field, msg string) map[string]string {
	if errs == nil {
		errs = map[string]string{}
	}
	errs[field] = msg
	return errs
}
