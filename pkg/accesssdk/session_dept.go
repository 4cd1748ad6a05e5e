package accesssdk

import (
	"context"
	"net/http"
)

// ListDepartments returns every department ordered by sort order.
// Requires: sys:dept:list
func (s *Session) ListDepartments(ctx context.Context) ([]Department, error) {
	var out []Department
	if err := s.getJSON(ctx, "/v1/depts", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DepartmentTree returns the department forest.
// Requires: sys:dept:list
func (s *Session) DepartmentTree(ctx context.Context) ([]DepartmentNode, error) {
	var out []DepartmentNode
	if err := s.getJSON(ctx, "/v1/depts/tree", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDepartment requires sys:dept:list.
func (s *Session) GetDepartment(ctx context.Context, id int64) (*Department, error) {
	var out Department
	if err := s.getJSON(ctx, idPath("/v1/depts", id, ""), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDepartment requires sys:dept:add.
func (s *Session) CreateDepartment(ctx context.Context, req DepartmentRequest) (*Department, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/depts", req)
	if err != nil {
		return nil, err
	}
	var out Department
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDepartment requires sys:dept:edit.
func (s *Session) UpdateDepartment(ctx context.Context, id int64, req DepartmentRequest) (*Department, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, idPath("/v1/depts", id, ""), req)
	if err != nil {
		return nil, err
	}
	var out Department
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDepartment requires sys:dept:delete. It fails with a conflict while
// the department has children or users.
func (s *Session) DeleteDepartment(ctx context.Context, id int64) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, idPath("/v1/depts", id, ""), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
