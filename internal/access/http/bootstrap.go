package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/access/internal/access/service"
	"github.com/aussiebroadwan/access/pkg/accesssdk"
	"github.com/aussiebroadwan/access/pkg/httpx"
	"github.com/aussiebroadwan/access/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP handles the bootstrap endpoint for initial system setup.
//
//	@Summary		Bootstrap the access service
//	@Description	Seeds an empty system with departments, menus, roles and users in one transaction. Only available when a bootstrap token is configured and only accepted once.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string								true	"Bootstrap token for authorization"
//	@Param			request				body		accesssdk.BootstrapRequest			true	"Seed"
//	@Success		201					{object}	accesssdk.BootstrapResponse			"Rows created"
//	@Failure		400					{object}	accesssdk.ValidationErrorResponse	"Invalid request body or seed"
//	@Failure		401					{object}	accesssdk.ErrorResponse				"Missing or invalid bootstrap token"
//	@Failure		404					{object}	accesssdk.ErrorResponse				"Bootstrap not enabled (no token configured)"
//	@Failure		409					{object}	accesssdk.ErrorResponse				"System already bootstrapped"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())
	l.Info("Starting to bootstrap")

	// 1. Check if enabled
	if h.BootstrapService.Token == "" {
		accesssdk.NewAPIError(http.StatusNotFound, accesssdk.ErrorCodeNotFound,
			"Bootstrap endpoint is not enabled").WriteError(w)
		return
	}

	// 2. Require bootstrap token header
	token := r.Header.Get("X-Bootstrap-Token")
	if token == "" {
		accesssdk.NewAPIError(http.StatusUnauthorized, accesssdk.ErrorCodeUnauthorized,
			"Bootstrap token is required in X-Bootstrap-Token header").WriteError(w)
		return
	}

	// 3. Parse request body and validate its shape
	var req accesssdk.BootstrapRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if errs := req.Validate(); errs != nil {
		accesssdk.NewValidationError(errs).WriteError(w)
		return
	}

	// 4. Seed
	res, err := h.BootstrapService.Bootstrap(r.Context(), token, toDomainSeed(req))
	switch {
	case errors.Is(err, service.ErrBootstrapAlready):
		accesssdk.NewAPIError(http.StatusConflict, accesssdk.ErrorCodeConflict,
			"System has already been bootstrapped").WriteError(w)
		return
	case errors.Is(err, service.ErrBootstrapUnauthorized):
		accesssdk.NewAPIError(http.StatusUnauthorized, accesssdk.ErrorCodeUnauthorized,
			"Invalid bootstrap token").WriteError(w)
		return
	case err != nil:
		writeError(w, r, "bootstrap failed", err)
		return
	}

	l.Info("System bootstrapped",
		"departments", res.Departments, "menus", res.Menus, "roles", res.Roles, "users", res.Users)
	httpx.WriteJSON(w, http.StatusCreated, accesssdk.BootstrapResponse{
		Departments: res.Departments,
		Menus:       res.Menus,
		Roles:       res.Roles,
		Users:       res.Users,
	})
}
