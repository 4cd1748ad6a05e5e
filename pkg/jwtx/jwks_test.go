package jwtx_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/aussiebroadwan/access/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestParseJWKS(t *testing.T) {
	ed := newEdDSAKey(t, "ed")

	t.Run("drops encryption keys", func(t *testing.T) {
		enc := newRS256Key(t, "enc").jwk
		enc.Use = "enc"
		data, err := json.Marshal(jwtx.JWKS{Keys: []jwtx.JWK{ed.jwk, enc}})
		require.NoError(t, err)

		set, err := jwtx.ParseJWKS(data)
		require.NoError(t, err)
		require.Len(t, set.Keys, 1)
		require.Equal(t, "ed", set.Keys[0].Kid)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := jwtx.ParseJWKS([]byte(`{"keys":[]}`))
		require.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwtx.ParseJWKS([]byte(`{`))
		require.Error(t, err)
	})
}

func TestKeySetResetIsAtomic(t *testing.T) {
	ed := newEdDSAKey(t, "ed")
	set := jwtx.NewKeySet()
	require.NoError(t, set.AddJWK(ed.jwk))

	bad := jwtx.JWK{Kty: "OKP", Crv: "X448", Kid: "bad", X: "AAAA"}
	require.Error(t, set.ResetFromJWKS(jwtx.JWKS{Keys: []jwtx.JWK{newES256Key(t, "es").jwk, bad}}))

	_, err := set.Get("ed")
	require.NoError(t, err)
	_, err = set.Get("es")
	require.ErrorIs(t, err, jwtx.ErrNoKey)
	require.True(t, set.IsReady())
}

func TestJWKSSource(t *testing.T) {
	ctx := context.Background()
	ed := newEdDSAKey(t, "ed")
	doc, err := json.Marshal(jwtx.JWKS{Keys: []jwtx.JWK{ed.jwk}})
	require.NoError(t, err)

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "jwks.json")
		require.NoError(t, os.WriteFile(path, doc, 0o600))

		set, err := jwtx.JWKSSource{File: path}.Load(ctx)
		require.NoError(t, err)
		require.Equal(t, "ed", set.Keys[0].Kid)
	})

	t.Run("url", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(doc)
		}))
		defer srv.Close()

		set, err := jwtx.JWKSSource{URL: srv.URL, Client: srv.Client()}.Load(ctx)
		require.NoError(t, err)
		require.Len(t, set.Keys, 1)
	})

	t.Run("url error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := jwtx.JWKSSource{URL: srv.URL}.Load(ctx)
		require.Error(t, err)
	})

	t.Run("nothing configured", func(t *testing.T) {
		_, err := jwtx.JWKSSource{}.Load(ctx)
		require.Error(t, err)
	})
}

func TestKeyRefresher(t *testing.T) {
	first, second := newEdDSAKey(t, "first"), newEdDSAKey(t, "second")

	var current atomic.Pointer[jwtx.JWK]
	current.Store(&first.jwk)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(jwtx.JWKS{Keys: []jwtx.JWK{*current.Load()}})
	}))
	defer srv.Close()

	set := jwtx.NewKeySet()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := jwtx.NewKeyRefresher(set, jwtx.JWKSSource{URL: srv.URL}, 0, logger)
	v := jwtx.NewVerifier(set, jwtx.VerifyOptions{})

	require.NoError(t, r.Refresh(context.Background()))
	_, err := v.Verify(first.sign(t, validClaims("7")))
	require.NoError(t, err)

	// The issuer rotates its key.
	current.Store(&second.jwk)
	require.NoError(t, r.Refresh(context.Background()))

	_, err = v.Verify(second.sign(t, validClaims("7")))
	require.NoError(t, err)
	_, err = v.Verify(first.sign(t, validClaims("7")))
	require.ErrorIs(t, err, jwtx.ErrUnknownKID)

	r.Start()
	r.Stop()
}
