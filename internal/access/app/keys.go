package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/access/pkg/jwtx"
)

// Keys bundles what bearer-token verification needs: the published keys of
// the login service, a verifier over them and the loop that keeps them fresh.
type Keys struct {
	KeySet    *jwtx.KeySet
	Verifier  jwtx.Verifier
	Refresher *jwtx.KeyRefresher
}

// InitVerifierKeys loads the login service's JWKS from AUTH_JWKS_URL or
// AUTH_JWKS_FILE and builds a verifier expecting the configured issuer and
// audience.
//
// A failed first load is not fatal when a URL is configured: the login
// service may still be starting, and /readyz reports the missing keys until
// the refresher succeeds.
func InitVerifierKeys(ctx context.Context, cfg Config, logger *slog.Logger) (*Keys, error) {
	if cfg.JWKSURL == "" && cfg.JWKSFile == "" {
		return nil, errors.New("no jwks source configured")
	}

	keys := jwtx.NewKeySet()
	source := jwtx.JWKSSource{
		URL:    cfg.JWKSURL,
		File:   cfg.JWKSFile,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
	refresher := jwtx.NewKeyRefresher(keys, source, cfg.JWKSRefresh, logger)

	if err := refresher.Refresh(ctx); err != nil {
		if cfg.JWKSURL == "" {
			return nil, fmt.Errorf("failed to load jwks file: %w", err)
		}
		logger.Warn("initial jwks load failed, will retry", "url", cfg.JWKSURL, "error", err)
	} else {
		logger.Info("verification keys loaded",
			"keys", len(keys.JWKS().Keys),
			"source", sourceName(source),
			"refresh", cfg.JWKSRefresh,
		)
	}

	var audience []string
	if cfg.Audience != "" {
		audience = []string{cfg.Audience}
	}
	verifier := jwtx.NewVerifier(keys, jwtx.VerifyOptions{
		Issuer:   cfg.Issuer,
		Audience: audience,
		Leeway:   30 * time.Second,
	})

	return &Keys{KeySet: keys, Verifier: verifier, Refresher: refresher}, nil
}

func sourceName(s jwtx.JWKSSource) string {
	if s.URL != "" {
		return s.URL
	}
	return s.File
}
