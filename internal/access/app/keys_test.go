package app

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/access/pkg/jwtx"
)

func writeJWKS(t *testing.T, dir string) (string, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	data, err := json.Marshal(jwtx.JWKS{Keys: []jwtx.JWK{
		jwtx.NewEd25519JWK("login-1", "sig", jwtx.AlgorithmEdDSA, pub),
	}})
	require.NoError(t, err)

	path := filepath.Join(dir, "jwks.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path, priv
}

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestInitVerifierKeys(t *testing.T) {
	ctx := context.Background()

	t.Run("file source verifies tokens", func(t *testing.T) {
		path, priv := writeJWKS(t, t.TempDir())
		cfg := Config{JWKSFile: path, Issuer: "https://login.example", Audience: "access", JWKSRefresh: time.Minute}

		keys, err := InitVerifierKeys(ctx, cfg, discardLogger())
		require.NoError(t, err)
		require.True(t, keys.KeySet.IsReady())

		tok := jwt.NewWithClaims(jwt.SigningMethodEdDSA, jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "https://login.example",
			Subject:   "7",
			Audience:  jwt.ClaimStrings{"access"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}})
		tok.Header["kid"] = "login-1"
		signed, err := tok.SignedString(priv)
		require.NoError(t, err)

		claims, err := keys.Verifier.Verify(signed)
		require.NoError(t, err)
		id, err := claims.UserID()
		require.NoError(t, err)
		require.Equal(t, int64(7), id)
	})

	t.Run("missing file is fatal", func(t *testing.T) {
		cfg := Config{JWKSFile: filepath.Join(t.TempDir(), "absent.json"), JWKSRefresh: time.Minute}
		_, err := InitVerifierKeys(ctx, cfg, discardLogger())
		require.Error(t, err)
	})

	t.Run("unreachable url is retried later", func(t *testing.T) {
		cfg := Config{JWKSURL: "http://127.0.0.1:1/jwks.json", JWKSRefresh: time.Minute}
		keys, err := InitVerifierKeys(ctx, cfg, discardLogger())
		require.NoError(t, err)
		require.False(t, keys.KeySet.IsReady())
	})

	t.Run("no source", func(t *testing.T) {
		_, err := InitVerifierKeys(ctx, Config{}, discardLogger())
		require.Error(t, err)
	})
}
