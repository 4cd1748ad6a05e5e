package cryptox

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	t.Run("encodes the requested entropy", func(t *testing.T) {
		for _, size := range []int{TokenSize256, 16, 1} {
			tok, err := GenerateToken(size)
			require.NoError(t, err)
			raw, err := base64.RawURLEncoding.DecodeString(tok)
			require.NoError(t, err)
			require.Len(t, raw, size)
		}
	})

	t.Run("unique", func(t *testing.T) {
		a, err := GenerateToken(TokenSize256)
		require.NoError(t, err)
		b, err := GenerateToken(TokenSize256)
		require.NoError(t, err)
		require.NotEqual(t, a, b)
	})

	t.Run("rejects non-positive sizes", func(t *testing.T) {
		for _, size := range []int{0, -1} {
			tok, err := GenerateToken(size)
			require.Error(t, err)
			require.Empty(t, tok)
		}
	})
}

func TestFingerprintToken(t *testing.T) {
	fp := FingerprintToken("bootstrap-secret")
	require.Len(t, fp, 43)
	require.Equal(t, fp, FingerprintToken("bootstrap-secret"))
	require.NotEqual(t, fp, FingerprintToken("bootstrap-secret2"))
	require.NotContains(t, fp, "bootstrap")
}

func TestTokensEqual(t *testing.T) {
	require.True(t, TokensEqual("abc", "abc"))
	require.False(t, TokensEqual("abc", "abd"))
	require.False(t, TokensEqual("abc", "abcd"))
	require.False(t, TokensEqual("", "abc"))
	require.True(t, TokensEqual("", ""))
}
