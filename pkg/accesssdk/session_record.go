package accesssdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListRecords returns the records visible under the caller's data scope.
// Requires: data:record:list
func (s *Session) ListRecords(ctx context.Context, q RecordQuery) (*ListRecordsResponse, error) {
	v := url.Values{}
	setString(v, "title", q.Title)
	setInt(v, "dept_id", q.DeptID)
	setInt(v, "page", int64(q.Page))
	setInt(v, "size", int64(q.Size))

	var out ListRecordsResponse
	if err := s.getJSON(ctx, withQuery("/v1/records", v), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordScope describes the caller's data scope as applied to records.
// Requires: data:record:list
func (s *Session) RecordScope(ctx context.Context) (*ScopeInfo, error) {
	var out ScopeInfo
	if err := s.getJSON(ctx, "/v1/records/scope", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRecord returns ErrNotFound for records outside the caller's scope.
func (s *Session) GetRecord(ctx context.Context, id int64) (*Record, error) {
	var out Record
	if err := s.getJSON(ctx, idPath("/v1/records", id, ""), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateRecord requires data:record:add.
func (s *Session) CreateRecord(ctx context.Context, req RecordRequest) (*Record, error) {
	return s.sendRecord(ctx, http.MethodPost, "/v1/records", req, http.StatusCreated)
}

// UpdateRecord requires data:record:edit.
func (s *Session) UpdateRecord(ctx context.Context, id int64, req RecordRequest) (*Record, error) {
	return s.sendRecord(ctx, http.MethodPut, idPath("/v1/records", id, ""), req, http.StatusOK)
}

// DeleteRecord requires data:record:delete.
func (s *Session) DeleteRecord(ctx context.Context, id int64) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, idPath("/v1/records", id, ""), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (s *Session) sendRecord(ctx context.Context, method, path string, payload any, status int) (*Record, error) {
	resp, err := s.doAuthRequest(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}
	var out Record
	if err := decodeJSON(resp, &out, status); err != nil {
		return nil, err
	}
	return &out, nil
}
