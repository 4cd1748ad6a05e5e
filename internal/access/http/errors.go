package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/access/internal/access/policy"
	"github.com/aussiebroadwan/access/internal/access/service"
	"github.com/aussiebroadwan/access/internal/access/store"
	"github.com/aussiebroadwan/access/pkg/accesssdk"
	"github.com/aussiebroadwan/access/pkg/slogx"
)

// apiError classifies service and store errors. Anything unrecognised is a
// server error.
func apiError(err error) *accesssdk.APIError {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return accesssdk.NewValidationError(verr.Details)
	case errors.Is(err, store.ErrNotFound):
		return accesssdk.ErrNotFound
	case errors.Is(err, store.ErrAlreadyExists):
		return accesssdk.NewAPIError(http.StatusConflict, accesssdk.ErrorCodeConflict, "already exists")
	case errors.Is(err, store.ErrConflict):
		return accesssdk.ErrConflict
	case errors.Is(err, service.ErrInvalidParent):
		return accesssdk.NewAPIError(http.StatusBadRequest, accesssdk.ErrorCodeInvalidRequest, err.Error())
	case errors.Is(err, service.ErrHasChildren), errors.Is(err, service.ErrInUse):
		return accesssdk.NewAPIError(http.StatusConflict, accesssdk.ErrorCodeConflict, err.Error())
	case errors.Is(err, service.ErrProtected), errors.Is(err, service.ErrOutOfScope):
		return accesssdk.NewAPIError(http.StatusForbidden, accesssdk.ErrorCodeForbidden, err.Error())
	case errors.Is(err, policy.ErrCycleDetected), errors.Is(err, policy.ErrInvalidScopePolicy):
		return accesssdk.NewAPIError(http.StatusInternalServerError, accesssdk.ErrorCodeConfiguration,
			"access configuration is inconsistent")
	default:
		return accesssdk.ErrServerError
	}
}

// writeError logs failures the caller cannot fix and writes the API error.
func writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	e := apiError(err)
	if e.StatusCode >= http.StatusInternalServerError {
		slogx.FromContext(r.Context()).Error(msg, "error", err)
	}
	e.WriteError(w)
}
