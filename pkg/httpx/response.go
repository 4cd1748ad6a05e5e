package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// WriteJSON encodes v as the response body with status code. Responses are
// never cacheable.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache marks the response as not storable. Access decisions change
// whenever roles do.
func NoCache(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Cache-Control", "no-store")
	h.Set("Pragma", "no-cache")
}

// errorBody has the same JSON shape as the SDK's API error, which this
// package cannot import.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteError writes {code, message} with status.
func WriteError(w http.ResponseWriter, status int, code, msg string) {
	WriteJSON(w, status, errorBody{Code: code, Message: msg})
}

// challenge sets an RFC 6750 WWW-Authenticate header. params are name/value
// pairs.
func challenge(w http.ResponseWriter, params ...string) {
	var b strings.Builder
	b.WriteString("Bearer")
	for i := 0; i+1 < len(params); i += 2 {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, " %s=%q", params[i], params[i+1])
	}
	w.Header().Set("WWW-Authenticate", b.String())
}
