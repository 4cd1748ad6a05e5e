package accesssdk

import (
	"context"
	"net/http"
)

// ListMenus requires sys:menu:list.
func (s *Session) ListMenus(ctx context.Context) ([]Menu, error) {
	var out []Menu
	if err := s.getJSON(ctx, "/v1/menus", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MenuTree returns the full, unfiltered menu forest.
// Requires: sys:menu:list
func (s *Session) MenuTree(ctx context.Context) ([]MenuNode, error) {
	var out []MenuNode
	if err := s.getJSON(ctx, "/v1/menus/tree", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetMenu(ctx context.Context, id int64) (*Menu, error) {
	var out Menu
	if err := s.getJSON(ctx, idPath("/v1/menus", id, ""), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateMenu requires sys:menu:add.
func (s *Session) CreateMenu(ctx context.Context, req MenuRequest) (*Menu, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/menus", req)
	if err != nil {
		return nil, err
	}
	var out Menu
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMenu requires sys:menu:edit.
func (s *Session) UpdateMenu(ctx context.Context, id int64, req MenuRequest) (*Menu, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, idPath("/v1/menus", id, ""), req)
	if err != nil {
		return nil, err
	}
	var out Menu
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMenu requires sys:menu:delete.
func (s *Session) DeleteMenu(ctx context.Context, id int64) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, idPath("/v1/menus", id, ""), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
