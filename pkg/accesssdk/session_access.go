package accesssdk

import (
	"context"
)

// Me returns the caller's effective access.
func (s *Session) Me(ctx context.Context) (*AccessResponse, error) {
	var out AccessResponse
	if err := s.getJSON(ctx, "/v1/me/access", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyMenus returns the menu tree the caller may see.
func (s *Session) MyMenus(ctx context.Context) ([]MenuNode, error) {
	var out []MenuNode
	if err := s.getJSON(ctx, "/v1/me/menus", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyRoutes returns the caller's menu tree shaped as UI routes.
func (s *Session) MyRoutes(ctx context.Context) ([]Route, error) {
	var out []Route
	if err := s.getJSON(ctx, "/v1/me/routes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyPermissions returns the caller's permission codes.
func (s *Session) MyPermissions(ctx context.Context) ([]string, error) {
	var out PermissionsResponse
	if err := s.getJSON(ctx, "/v1/me/permissions", &out); err != nil {
		return nil, err
	}
	return out.Permissions, nil
}

// UserAccess resolves another user's access.
// Requires: sys:user:list
func (s *Session) UserAccess(ctx context.Context, userID int64) (*AccessResponse, error) {
	var out AccessResponse
	if err := s.getJSON(ctx, idPath("/v1/users", userID, "/access"), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
