package jwtx_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/access/pkg/jwtx"
)

func TestKeySet(t *testing.T) {
	t.Run("add replaces same kid", func(t *testing.T) {
		set := jwtx.NewKeySet()
		require.False(t, set.IsReady())

		first, second := newEdDSAKey(t, "k"), newEdDSAKey(t, "k")
		require.NoError(t, set.AddJWK(first.jwk))
		require.NoError(t, set.AddJWK(second.jwk))

		require.Len(t, set.JWKS().Keys, 1)
		got, err := set.Get("k")
		require.NoError(t, err)
		require.Equal(t, second.priv.Public(), got)
	})

	t.Run("reset skips encryption keys", func(t *testing.T) {
		enc := newES256Key(t, "enc").jwk
		enc.Use = "enc"
		set := jwtx.NewKeySet()
		require.NoError(t, set.ResetFromJWKS(jwtx.JWKS{Keys: []jwtx.JWK{newRS256Key(t, "rs").jwk, enc}}))

		require.Len(t, set.JWKS().Keys, 1)
		_, err := set.Get("enc")
		require.ErrorIs(t, err, jwtx.ErrNoKey)
	})

	t.Run("reset rejects duplicates and missing kid", func(t *testing.T) {
		set := jwtx.NewKeySet()
		a, b := newEdDSAKey(t, "dup"), newEdDSAKey(t, "dup")
		require.ErrorContains(t, set.ResetFromJWKS(jwtx.JWKS{Keys: []jwtx.JWK{a.jwk, b.jwk}}), "duplicate")

		noKid := newEdDSAKey(t, "").jwk
		require.ErrorContains(t, set.ResetFromJWKS(jwtx.JWKS{Keys: []jwtx.JWK{noKid}}), "no kid")
		require.False(t, set.IsReady())
	})

	t.Run("rejects weak or malformed keys", func(t *testing.T) {
		ec := newES256Key(t, "ec").jwk
		offCurve := ec
		offCurve.Y = ec.X

		rs := newRS256Key(t, "rs").jwk
		evenExp := rs
		evenExp.E = base64.RawURLEncoding.EncodeToString([]byte{2})
		shortMod := rs
		shortMod.N = base64.RawURLEncoding.EncodeToString(make([]byte, 128))

		for name, j := range map[string]jwtx.JWK{
			"ec off curve":   offCurve,
			"ec wrong curve": {Kty: "EC", Crv: "P-384", Kid: "x", X: ec.X, Y: ec.Y},
			"rsa even exp":   evenExp,
			"rsa 1024 bits":  shortMod,
			"okp short key":  {Kty: "OKP", Crv: "Ed25519", Kid: "x", X: "AAAA"},
			"unknown kty":    {Kty: "oct", Kid: "x"},
		} {
			t.Run(name, func(t *testing.T) {
				require.Error(t, jwtx.NewKeySet().AddJWK(j))
			})
		}
	})
}
