package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	httpapi "github.com/aussiebroadwan/access/internal/access/http"
	"github.com/aussiebroadwan/access/internal/access/service"
	"github.com/aussiebroadwan/access/internal/access/store"
	"github.com/aussiebroadwan/access/internal/access/store/drivers/sqlite"
	"github.com/aussiebroadwan/access/pkg/cryptox"
	"github.com/aussiebroadwan/access/pkg/slogx"
)

// BuildVersion is overridden at build time with -ldflags.
var BuildVersion = "v0.1.0"

// Application owns the store, the key refresher, the services and the HTTP
// server of one access-service process.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db   store.Store
	keys *Keys

	bootstrap    *service.BootstrapService
	housekeeping *service.HousekeepingService

	server *http.Server

	// cleanup runs in reverse order on failed startup and on shutdown.
	cleanup []func()
}

// New wires every dependency. Anything opened before a failure is released
// before returning.
func New(cfg Config) (_ *Application, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "access-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
			File:    cfg.LogFile,
		}),
	}
	defer func() {
		if err != nil {
			app.release()
		}
	}()

	cryptox.SetPepperPath(cfg.PepperFile)
	if err := cryptox.LoadPepper(); err != nil {
		return nil, fmt.Errorf("failed to load password pepper: %w", err)
	}

	if err := app.openStore(); err != nil {
		return nil, err
	}

	ctx := context.Background()
	if app.keys, err = InitVerifierKeys(ctx, cfg, app.logger); err != nil {
		return nil, fmt.Errorf("failed to initialize verification keys: %w", err)
	}

	router, err := app.buildServices()
	if err != nil {
		return nil, err
	}
	if err := app.prepareBootstrap(ctx); err != nil {
		return nil, err
	}

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
	return app, nil
}

func (app *Application) onShutdown(fn func()) {
	app.cleanup = append(app.cleanup, fn)
}

func (app *Application) release() {
	for i := len(app.cleanup) - 1; i >= 0; i-- {
		app.cleanup[i]()
	}
	app.cleanup = nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (app *Application) Run(ctx context.Context) error {
	app.housekeeping.Start()
	app.onShutdown(app.housekeeping.Stop)
	app.keys.Refresher.Start()
	app.onShutdown(app.keys.Refresher.Stop)

	app.logger.Info("access service starting", "port", app.cfg.Port, "version", BuildVersion)

	serveErr := make(chan error, 1)
	go func() { serveErr <- app.server.ListenAndServe() }()

	select {
	case err := <-serveErr:
		app.release()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		app.logger.Info("shutdown requested", "cause", context.Cause(ctx))
		return app.Shutdown()
	}
}

// Shutdown drains in-flight requests for up to ShutdownGracePeriod, then
// stops background workers and closes the store.
func (app *Application) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	err := app.server.Shutdown(ctx)
	if err != nil {
		app.logger.Error("graceful shutdown timed out, closing connections", "error", err)
		_ = app.server.Close()
	}
	app.release()

	app.logger.Info("access service stopped")
	return err
}

func (app *Application) openStore() error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL&_pragma=foreign_keys(1)", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	app.db = db
	app.onShutdown(func() {
		if err := db.Close(); err != nil {
			app.logger.Error("closing store", "error", err)
		}
	})

	if err := db.ApplyMigrations(); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	app.logger.Info("store ready", "file", app.cfg.DatabaseFile)
	return nil
}

// buildServices creates the services over one shared AccessService so every
// admin write invalidates the cached access results, and returns the router
// serving them.
func (app *Application) buildServices() (*httpapi.Router, error) {
	access, err := service.NewAccessService(app.db, app.cfg.CacheMaxEntries, app.cfg.CacheTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create access service: %w", err)
	}
	app.onShutdown(access.Close)

	app.bootstrap = &service.BootstrapService{Store: app.db, Access: access, Token: app.cfg.BootstrapToken}
	app.housekeeping = service.NewHousekeepingService(app.db, access, app.logger, app.cfg.HousekeepingInterval)

	router := httpapi.NewRouter(app.keys.KeySet, app.keys.Verifier, BuildVersion, app.db, app.logger)
	router.AccessService = access
	router.DepartmentService = &service.DepartmentService{Store: app.db, Access: access}
	router.MenuService = &service.MenuService{Store: app.db, Access: access}
	router.RoleService = &service.RoleService{Store: app.db, Access: access}
	router.UserService = &service.UserService{Store: app.db, Access: access}
	router.RecordService = &service.RecordService{Store: app.db, Access: access}
	router.BootstrapService = app.bootstrap
	router.ApplyRoutes()
	return router, nil
}

// prepareBootstrap seeds an empty store from the seed file when one is
// configured. Otherwise it leaves POST /v1/bootstrap open, generating a
// token if none was configured.
func (app *Application) prepareBootstrap(ctx context.Context) error {
	done, err := app.bootstrap.IsBootstrapped(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect store: %w", err)
	}
	if done {
		return nil
	}

	if file := app.cfg.SeedFile; file != "" {
		seed, err := service.LoadSeedFile(file)
		if err != nil {
			return err
		}
		res, err := app.bootstrap.Seed(ctx, seed)
		if err != nil {
			return fmt.Errorf("failed to apply seed file: %w", err)
		}
		app.logger.Info("seed file applied",
			"file", file,
			"departments", res.Departments,
			"menus", res.Menus,
			"roles", res.Roles,
			"users", res.Users,
		)
		return nil
	}

	if app.bootstrap.Token == "" {
		token, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return fmt.Errorf("failed to generate bootstrap token: %w", err)
		}
		app.bootstrap.Token = token
		// Logged once so an operator can complete POST /v1/bootstrap.
		app.logger.Warn("store is empty, generated a bootstrap token", "bootstrap_token", token)
	}
	app.logger.Info("bootstrap enabled",
		"token_fingerprint", cryptox.FingerprintToken(app.bootstrap.Token))
	return nil
}
