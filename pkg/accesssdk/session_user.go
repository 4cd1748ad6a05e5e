package accesssdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListUsers returns the users visible under the caller's data scope.
// Requires: sys:user:list
func (s *Session) ListUsers(ctx context.Context, q UserQuery) (*ListUsersResponse, error) {
	v := url.Values{}
	setString(v, "username", q.Username)
	setString(v, "real_name", q.RealName)
	setString(v, "phone", q.Phone)
	setInt(v, "dept_id", q.DeptID)
	if q.Status != nil {
		v.Set("status", strconv.Itoa(*q.Status))
	}
	setInt(v, "page", int64(q.Page))
	setInt(v, "size", int64(q.Size))

	var out ListUsersResponse
	if err := s.getJSON(ctx, withQuery("/v1/users", v), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetUser(ctx context.Context, id int64) (*User, error) {
	var out User
	if err := s.getJSON(ctx, idPath("/v1/users", id, ""), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateUser requires sys:user:add.
func (s *Session) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	return s.sendUser(ctx, http.MethodPost, "/v1/users", req, http.StatusCreated)
}

// UpdateUser requires sys:user:edit.
func (s *Session) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*User, error) {
	return s.sendUser(ctx, http.MethodPut, idPath("/v1/users", id, ""), req, http.StatusOK)
}

// UpdateUserStatus enables or disables a user.
// Requires: sys:user:edit
func (s *Session) UpdateUserStatus(ctx context.Context, id int64, status int) (*User, error) {
	return s.sendUser(ctx, http.MethodPut, idPath("/v1/users", id, "/status"), UserStatusRequest{Status: status}, http.StatusOK)
}

// AssignUserRoles replaces the user's roles.
// Requires: sys:user:edit
func (s *Session) AssignUserRoles(ctx context.Context, id int64, roleIDs []int64) (*User, error) {
	return s.sendUser(ctx, http.MethodPut, idPath("/v1/users", id, "/roles"), AssignRolesRequest{RoleIDs: roleIDs}, http.StatusOK)
}

// ResetUserPassword requires sys:user:edit. An empty password asks the
// server to generate one, which is returned; otherwise the result is "".
func (s *Session) ResetUserPassword(ctx context.Context, id int64, password string) (string, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, idPath("/v1/users", id, "/password"), ResetPasswordRequest{Password: password})
	if err != nil {
		return "", err
	}
	if password != "" {
		return "", checkStatusNoContent(resp)
	}
	var out ResetPasswordResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.Password, nil
}

// DeleteUser requires sys:user:delete.
func (s *Session) DeleteUser(ctx context.Context, id int64) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, idPath("/v1/users", id, ""), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (s *Session) sendUser(ctx context.Context, method, path string, payload any, status int) (*User, error) {
	resp, err := s.doAuthRequest(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}
	var out User
	if err := decodeJSON(resp, &out, status); err != nil {
		return nil, err
	}
	return &out, nil
}
