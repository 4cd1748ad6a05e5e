package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/store"
	"github.com/aussiebroadwan/access/pkg/accesssdk"
)

const (
	maxBodyBytes    = 1 << 20
	defaultPageSize = 20
	maxPageSize     = 100
)

// decodeBody reads a JSON request body, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		msg := "request body must be valid JSON"
		var syn *json.SyntaxError
		if !errors.As(err, &syn) && !errors.Is(err, io.EOF) {
			msg = err.Error()
		}
		accesssdk.NewAPIError(http.StatusBadRequest, accesssdk.ErrorCodeInvalidRequest, msg).WriteError(w)
		return false
	}
	return true
}

// pathID parses the {id} path segment, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		accesssdk.NewAPIError(http.StatusBadRequest, accesssdk.ErrorCodeInvalidRequest, "id must be a positive integer").WriteError(w)
		return 0, false
	}
	return id, true
}

// queryInt reads an optional integer query parameter.
func queryInt(r *http.Request, key string) (int64, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, errors.New(key + " must be an integer")
	}
	return n, nil
}

// queryPage reads page (1-based) and size.
func queryPage(r *http.Request) (store.Page, map[string]string) {
	errs := map[string]string{}
	page, err := queryInt(r, "page")
	if err != nil || page < 0 {
		errs["page"] = "must be a positive integer"
	}
	size, err := queryInt(r, "size")
	if err != nil || size < 0 || size > maxPageSize {
		errs["size"] = "must be between 1 and 100"
	}
	if len(errs) > 0 {
		return store.Page{}, errs
	}
	if page == 0 {
		page = 1
	}
	if size == 0 {
		size = defaultPageSize
	}
	return store.Page{Limit: int(size), Offset: int((page - 1) * size)}, nil
}

// queryStatus reads an optional 0/1 status filter.
func queryStatus(r *http.Request) (*domain.Status, error) {
	v := r.URL.Query().Get("status")
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	s := domain.Status(n)
	if err != nil || !s.Valid() {
		return nil, errors.New("must be 0 or 1")
	}
	return &s, nil
}

func statusOr(s *int, fallback domain.Status) domain.Status {
	if s == nil {
		return fallback
	}
	return domain.Status(*s)
}
