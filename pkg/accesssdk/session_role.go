package accesssdk

import (
	"context"
	"net/http"
)

// ListRoles retrieves all roles.
// Requires: sys:role:list
func (s *Session) ListRoles(ctx context.Context) (*ListRolesResponse, error) {
	var out ListRolesResponse
	if err := s.getJSON(ctx, "/v1/roles", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetRole(ctx context.Context, id int64) (*Role, error) {
	var out Role
	if err := s.getJSON(ctx, idPath("/v1/roles", id, ""), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateRole requires sys:role:add.
func (s *Session) CreateRole(ctx context.Context, req RoleRequest) (*Role, error) {
	return s.sendRole(ctx, http.MethodPost, "/v1/roles", req, http.StatusCreated)
}

// UpdateRole requires sys:role:edit. Menu and department grants in req are
// ignored; use AssignRoleMenus and UpdateRoleDataScope.
func (s *Session) UpdateRole(ctx context.Context, id int64, req RoleRequest) (*Role, error) {
	return s.sendRole(ctx, http.MethodPut, idPath("/v1/roles", id, ""), req, http.StatusOK)
}

// AssignRoleMenus replaces the role's menu grants.
// Requires: sys:role:edit
func (s *Session) AssignRoleMenus(ctx context.Context, id int64, menuIDs []int64) (*Role, error) {
	return s.sendRole(ctx, http.MethodPut, idPath("/v1/roles", id, "/menus"),
		AssignMenusRequest{MenuIDs: menuIDs}, http.StatusOK)
}

// UpdateRoleDataScope changes the role's data scope. deptIDs only matter for
// the custom scope.
// Requires: sys:role:edit
func (s *Session) UpdateRoleDataScope(ctx context.Context, id int64, scope int, deptIDs []int64) (*Role, error) {
	return s.sendRole(ctx, http.MethodPut, idPath("/v1/roles", id, "/data-scope"),
		DataScopeRequest{DataScope: scope, DeptIDs: deptIDs}, http.StatusOK)
}

// DeleteRole requires sys:role:delete.
func (s *Session) DeleteRole(ctx context.Context, id int64) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, idPath("/v1/roles", id, ""), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (s *Session) sendRole(ctx context.Context, method, path string, payload any, status int) (*Role, error) {
	resp, err := s.doAuthRequest(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}
	var out Role
	if err := decodeJSON(resp, &out, status); err != nil {
		return nil, err
	}
	return &out, nil
}
