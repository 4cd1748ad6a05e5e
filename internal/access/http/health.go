package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/access/internal/access/service"
	"github.com/aussiebroadwan/access/internal/access/store"
	"github.com/aussiebroadwan/access/pkg/accesssdk"
	"github.com/aussiebroadwan/access/pkg/httpx"
	"github.com/aussiebroadwan/access/pkg/jwtx"
)

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe endpoint returning basic service health status, uptime, and version information
//	@Description	This endpoint always returns 200 OK if the service is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	accesssdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, accesssdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Covers the database, the access snapshot (a cyclic hierarchy fails it) and the token verification keys
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	accesssdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	accesssdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	access *service.AccessService,
	keys *jwtx.KeySet,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{
			"database": "ok",
			"access":   "ok",
			"keys":     "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK
		fail := func(name, msg string) {
			checks[name] = "error: " + msg
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// Check database connectivity
		if err := st.Ping(r.Context()); err != nil {
			fail("database", err.Error())
		} else if err := access.Check(r.Context()); err != nil {
			fail("access", err.Error())
		}

		// Check the verifier has keys loaded
		if !keys.IsReady() {
			fail("keys", "no keys loaded")
		}

		httpx.WriteJSON(w, statusCode, accesssdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
