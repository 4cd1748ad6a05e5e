package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/access/internal/access/service"
	"github.com/aussiebroadwan/access/internal/access/store"
	"github.com/aussiebroadwan/access/pkg/httpx"
	"github.com/aussiebroadwan/access/pkg/jwtx"
	"github.com/aussiebroadwan/access/pkg/slogx"

	_ "github.com/aussiebroadwan/access/api/access" // Swagger docs
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	AccessService     *service.AccessService
	DepartmentService *service.DepartmentService
	MenuService       *service.MenuService
	RoleService       *service.RoleService
	UserService       *service.UserService
	RecordService     *service.RecordService
	BootstrapService  *service.BootstrapService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccess()
	r.registerDepartments()
	r.registerMenus()
	r.registerRoles()
	r.registerUsers()
	r.registerRecords()
	r.registerSystem()
	r.registerBootstrap()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			AussieBroadWAN Access Service API
//	@version		0.1.0
//	@description	Role-based access control with department data scopes. Resolves what an authenticated user may do (permission codes), see (menus and routes) and read (visible departments).
//	@description
//	@description				Bearer tokens are issued by the login service and verified against its JWKS.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/access
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured verifies the bearer token, resolves the caller's access and, when
// permissions are given, requires one of them.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig, permissions ...string) http.Handler {
	mws := []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier), // verify JWT (iss/aud/exp)
		LoadAccess(r.AccessService),       // resolve roles into permissions and scope
	}
	if len(permissions) > 0 {
		mws = append(mws, httpx.RequireAnyPermission(permissions...))
	}
	mws = append(mws, httpx.RateLimitByUser(limit))
	return httpx.Chain(h, mws...)
}

func (r *Router) registerAccess() {
	h := &AccessHandler{Access: r.AccessService, Users: r.UserService}

	// Self-service reads - lenient rate limit by user
	r.Mux.Handle("GET /v1/me/access", r.secured(h.HandleMe, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/me/permissions", r.secured(h.HandlePermissions, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/me/menus", r.secured(h.HandleMenus, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/me/routes", r.secured(h.HandleRoutes, httpx.LenientLimit))

	r.Mux.Handle("GET /v1/users/{id}/access", r.secured(h.HandleUserAccess, httpx.LenientLimit, "sys:user:list"))
}

func (r *Router) registerDepartments() {
	h := &DepartmentsHandler{Service: r.DepartmentService}

	r.Mux.Handle("GET /v1/depts", r.secured(h.HandleList, httpx.LenientLimit, "sys:dept:list"))
	r.Mux.Handle("GET /v1/depts/tree", r.secured(h.HandleTree, httpx.LenientLimit, "sys:dept:list"))
	r.Mux.Handle("GET /v1/depts/{id}", r.secured(h.HandleGet, httpx.LenientLimit, "sys:dept:list"))

	// Writes - moderate rate limit by user
	r.Mux.Handle("POST /v1/depts", r.secured(h.HandleCreate, httpx.ModerateLimit, "sys:dept:add"))
	r.Mux.Handle("PUT /v1/depts/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit, "sys:dept:edit"))
	r.Mux.Handle("DELETE /v1/depts/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit, "sys:dept:delete"))
}

func (r *Router) registerMenus() {
	h := &MenusHandler{Service: r.MenuService}

	r.Mux.Handle("GET /v1/menus", r.secured(h.HandleList, httpx.LenientLimit, "sys:menu:list"))
	r.Mux.Handle("GET /v1/menus/tree", r.secured(h.HandleTree, httpx.LenientLimit, "sys:menu:list"))
	r.Mux.Handle("GET /v1/menus/{id}", r.secured(h.HandleGet, httpx.LenientLimit, "sys:menu:list"))

	r.Mux.Handle("POST /v1/menus", r.secured(h.HandleCreate, httpx.ModerateLimit, "sys:menu:add"))
	r.Mux.Handle("PUT /v1/menus/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit, "sys:menu:edit"))
	r.Mux.Handle("DELETE /v1/menus/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit, "sys:menu:delete"))
}

func (r *Router) registerRoles() {
	h := &RolesHandler{Service: r.RoleService}

	r.Mux.Handle("GET /v1/roles", r.secured(h.HandleList, httpx.LenientLimit, "sys:role:list"))
	r.Mux.Handle("GET /v1/roles/{id}", r.secured(h.HandleGet, httpx.LenientLimit, "sys:role:list"))

	r.Mux.Handle("POST /v1/roles", r.secured(h.HandleCreate, httpx.ModerateLimit, "sys:role:add"))
	r.Mux.Handle("PUT /v1/roles/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit, "sys:role:edit"))
	r.Mux.Handle("PUT /v1/roles/{id}/menus", r.secured(h.HandleAssignMenus, httpx.ModerateLimit, "sys:role:edit"))
	r.Mux.Handle("PUT /v1/roles/{id}/data-scope", r.secured(h.HandleDataScope, httpx.ModerateLimit, "sys:role:edit"))
	r.Mux.Handle("DELETE /v1/roles/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit, "sys:role:delete"))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{Service: r.UserService}

	r.Mux.Handle("GET /v1/users", r.secured(h.HandleList, httpx.LenientLimit, "sys:user:list"))
	r.Mux.Handle("GET /v1/users/{id}", r.secured(h.HandleGet, httpx.LenientLimit, "sys:user:list"))

	r.Mux.Handle("POST /v1/users", r.secured(h.HandleCreate, httpx.ModerateLimit, "sys:user:add"))
	r.Mux.Handle("PUT /v1/users/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit, "sys:user:edit"))
	r.Mux.Handle("PUT /v1/users/{id}/status", r.secured(h.HandleStatus, httpx.ModerateLimit, "sys:user:edit"))
	r.Mux.Handle("PUT /v1/users/{id}/roles", r.secured(h.HandleRoles, httpx.ModerateLimit, "sys:user:edit"))
	// Password resets - strict rate limit by user
	r.Mux.Handle("PUT /v1/users/{id}/password", r.secured(h.HandlePassword, httpx.StrictLimit, "sys:user:edit"))
	r.Mux.Handle("DELETE /v1/users/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit, "sys:user:delete"))
}

func (r *Router) registerRecords() {
	h := &RecordsHandler{Service: r.RecordService}

	r.Mux.Handle("GET /v1/records", r.secured(h.HandleList, httpx.LenientLimit, "data:record:list"))
	r.Mux.Handle("GET /v1/records/scope", r.secured(h.HandleScope, httpx.LenientLimit, "data:record:list"))
	r.Mux.Handle("GET /v1/records/{id}", r.secured(h.HandleGet, httpx.LenientLimit, "data:record:list"))

	r.Mux.Handle("POST /v1/records", r.secured(h.HandleCreate, httpx.ModerateLimit, "data:record:add"))
	r.Mux.Handle("PUT /v1/records/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit, "data:record:edit"))
	r.Mux.Handle("DELETE /v1/records/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit, "data:record:delete"))
}

func (r *Router) registerBootstrap() {
	// POST /bootstrap - very strict rate limit by IP (one-time setup endpoint)
	bootstrapHandler := &BootstrapHandler{BootstrapService: r.BootstrapService}
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(bootstrapHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - public rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.AccessService, r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /metrics",
		httpx.Chain(promhttp.Handler(),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
