package httpx_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/access/pkg/httpx"
)

func requestFrom(addr string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/v1/me/access", nil)
	req.RemoteAddr = addr
	return req
}

func asUser(req *http.Request, id int64) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), httpx.CtxKeyUserID, id))
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"remote addr", nil, "10.0.0.1:5555", "10.0.0.1"},
		{"remote without port", nil, "10.0.0.1", "10.0.0.1"},
		{"forwarded first hop", map[string]string{"X-Forwarded-For": " 203.0.113.9 , 10.0.0.2"}, "10.0.0.1:1", "203.0.113.9"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.4"}, "10.0.0.1:1", "198.51.100.4"},
		{"forwarded wins over real ip", map[string]string{"X-Forwarded-For": "203.0.113.9", "X-Real-IP": "198.51.100.4"}, "10.0.0.1:1", "203.0.113.9"},
		{"empty forwarded falls through", map[string]string{"X-Forwarded-For": " ,10.0.0.2"}, "10.0.0.1:1", "10.0.0.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := requestFrom(tt.remote)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			require.Equal(t, tt.want, httpx.ClientIP(req))
		})
	}
}

func TestKeys(t *testing.T) {
	req := requestFrom("10.0.0.1:1")
	require.Equal(t, "ip:10.0.0.1", httpx.IPKey(req))
	require.Equal(t, "ip:10.0.0.1", httpx.UserKey(req))
	require.Equal(t, "user:42", httpx.UserKey(asUser(req, 42)))
}

func TestRateLimit(t *testing.T) {
	cfg := httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}

	t.Run("burst then reject", func(t *testing.T) {
		h := httpx.RateLimitByIP(cfg)(http.HandlerFunc(ok))
		for range 2 {
			require.Equal(t, http.StatusNoContent, serve(h, requestFrom("10.0.0.1:1")).Code)
		}

		rec := serve(h, requestFrom("10.0.0.1:1"))
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.Equal(t, "30", rec.Header().Get("Retry-After"))
		require.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
		require.Equal(t, "1m0s", rec.Header().Get("X-RateLimit-Window"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		require.Equal(t, "rate_limit_exceeded", body["code"])
	})

	t.Run("separate addresses have separate buckets", func(t *testing.T) {
		h := httpx.RateLimitByIP(cfg)(http.HandlerFunc(ok))
		for range 2 {
			serve(h, requestFrom("10.0.0.1:1"))
		}
		require.Equal(t, http.StatusTooManyRequests, serve(h, requestFrom("10.0.0.1:1")).Code)
		require.Equal(t, http.StatusNoContent, serve(h, requestFrom("10.0.0.2:1")).Code)
	})

	t.Run("users behind one address are limited apart", func(t *testing.T) {
		h := httpx.RateLimitByUser(cfg)(http.HandlerFunc(ok))
		for range 2 {
			serve(h, asUser(requestFrom("10.0.0.1:1"), 1))
		}
		require.Equal(t, http.StatusTooManyRequests, serve(h, asUser(requestFrom("10.0.0.1:1"), 1)).Code)
		require.Equal(t, http.StatusNoContent, serve(h, asUser(requestFrom("10.0.0.1:1"), 2)).Code)
	})

	t.Run("empty key bypasses", func(t *testing.T) {
		h := httpx.RateLimit(cfg, func(*http.Request) string { return "" })(http.HandlerFunc(ok))
		for range 5 {
			require.Equal(t, http.StatusNoContent, serve(h, requestFrom("10.0.0.1:1")).Code)
		}
	})

	t.Run("retry after is at least one second", func(t *testing.T) {
		fast := httpx.RateLimitConfig{RequestsPerWindow: 100, Window: time.Second, Burst: 1}
		h := httpx.RateLimitByIP(fast)(http.HandlerFunc(ok))
		serve(h, requestFrom("10.0.0.9:1"))
		rec := serve(h, requestFrom("10.0.0.9:1"))
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.Equal(t, "1", rec.Header().Get("Retry-After"))
	})
}

func TestRateLimitProfiles(t *testing.T) {
	for name, p := range map[string]httpx.RateLimitConfig{
		"strict":   httpx.StrictLimit,
		"moderate": httpx.ModerateLimit,
		"lenient":  httpx.LenientLimit,
		"public":   httpx.PublicLimit,
	} {
		t.Run(name, func(t *testing.T) {
			require.Positive(t, p.RequestsPerWindow)
			require.Positive(t, p.Burst)
			require.Positive(t, p.Window)
		})
	}
	require.Less(t, httpx.StrictLimit.RequestsPerWindow, httpx.ModerateLimit.RequestsPerWindow)
	require.Less(t, httpx.ModerateLimit.RequestsPerWindow, httpx.LenientLimit.RequestsPerWindow)
	require.Less(t, httpx.LenientLimit.RequestsPerWindow, httpx.PublicLimit.RequestsPerWindow)
}

func TestRateLimitFromEnv(t *testing.T) {
	def := httpx.RateLimitConfig{RequestsPerWindow: 10, Window: time.Minute, Burst: 10}

	t.Run("unset keeps default", func(t *testing.T) {
		require.Equal(t, def, httpx.RateLimitFromEnv("UNSET_PROFILE", def))
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("RATELIMIT_TEST_REQUESTS", "1000")
		t.Setenv("RATELIMIT_TEST_WINDOW_SEC", "30")
		t.Setenv("RATELIMIT_TEST_BURST", "50")
		got := httpx.RateLimitFromEnv("TEST", def)
		require.Equal(t, httpx.RateLimitConfig{RequestsPerWindow: 1000, Window: 30 * time.Second, Burst: 50}, got)
	})

	t.Run("invalid values ignored", func(t *testing.T) {
		t.Setenv("RATELIMIT_TEST_REQUESTS", "lots")
		t.Setenv("RATELIMIT_TEST_WINDOW_SEC", "0")
		t.Setenv("RATELIMIT_TEST_BURST", "-3")
		require.Equal(t, def, httpx.RateLimitFromEnv("TEST", def))
	})
}
