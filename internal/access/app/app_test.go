package app

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	jwks, _ := writeJWKS(t, dir)
	return Config{
		Audience:             "access",
		JWKSFile:             jwks,
		JWKSRefresh:          time.Minute,
		CacheMaxEntries:      100,
		CacheTTL:             time.Minute,
		DatabaseFile:         filepath.Join(dir, "access.db"),
		PepperFile:           filepath.Join(dir, "pepper"),
		Env:                  "test",
		LogLevel:             "error",
		Port:                 18080,
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Hour,
	}
}

func TestNew(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	t.Run("empty store gets a bootstrap token", func(t *testing.T) {
		app, err := New(testConfig(t))
		require.NoError(t, err)
		require.NotEmpty(t, app.bootstrap.Token)

		done, err := app.bootstrap.IsBootstrapped(context.Background())
		require.NoError(t, err)
		require.False(t, done)
		require.NoError(t, app.Shutdown())
	})

	t.Run("configured token is kept", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.BootstrapToken = "operator-token"
		app, err := New(cfg)
		require.NoError(t, err)
		require.Equal(t, "operator-token", app.bootstrap.Token)
		require.NoError(t, app.Shutdown())
	})

	t.Run("invalid configuration", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.JWKSFile = ""
		_, err := New(cfg)
		require.ErrorContains(t, err, "invalid configuration")
	})

	t.Run("missing seed file releases the store", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.SeedFile = filepath.Join(t.TempDir(), "missing.yaml")
		_, err := New(cfg)
		require.Error(t, err)

		// The failed start left the database usable.
		cfg.SeedFile = ""
		app, err := New(cfg)
		require.NoError(t, err)
		require.NoError(t, app.Shutdown())
	})

	t.Run("run stops on cancel", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Port = 18181
		app, err := New(cfg)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- app.Run(ctx) }()
		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("Run did not return after cancel")
		}
	})
}
