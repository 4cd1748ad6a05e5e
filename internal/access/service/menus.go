package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/policy"
	"github.com/aussiebroadwan/access/internal/access/store"
)

type MenuService struct {
	Store  store.Store
	Access AccessInvalidator
}

func validateMenu(m domain.Menu) error {
	f := fieldErrors{}
	f.check(m.Name != "", "name", "required")
	f.check(len(m.Name) <= 50, "name", "too long (max 50)")
	f.check(m.Type.Valid(), "type", "must be 0 (directory), 1 (menu) or 2 (button)")
	f.check(len(m.Path) <= 255, "path", "too long (max 255)")
	f.check(len(m.Component) <= 255, "component", "too long (max 255)")
	f.check(len(m.PermissionCode) <= 100, "permission", "too long (max 100)")
	f.check(len(m.Icon) <= 50, "icon", "too long (max 50)")
	f.check(m.Status.Valid(), "status", "must be 0 or 1")
	f.check(m.ParentID >= 0, "parent_id", "must not be negative")
	return f.err()
}

func normaliseMenu(m domain.Menu) domain.Menu {
	m.Name = strings.TrimSpace(m.Name)
	m.Path = strings.TrimSpace(m.Path)
	m.Component = strings.TrimSpace(m.Component)
	m.PermissionCode = strings.TrimSpace(m.PermissionCode)
	return m
}

func (s *MenuService) Get(ctx context.Context, id int64) (domain.Menu, error) {
	return s.Store.Menus().Get(ctx, id)
}

func (s *MenuService) List(ctx context.Context) ([]domain.Menu, error) {
	return s.Store.Menus().ListAll(ctx)
}

// Tree returns every menu, disabled ones included.
func (s *MenuService) Tree(ctx context.Context) ([]policy.MenuNode, error) {
	menus, err := s.Store.Menus().ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return policy.BuildFullMenuTree(menus), nil
}

func (s *MenuService) Create(ctx context.Context, m domain.Menu) (domain.Menu, error) {
	m = normaliseMenu(m)
	if err := validateMenu(m); err != nil {
		return domain.Menu{}, err
	}

	var created domain.Menu
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if m.ParentID != domain.RootParentID {
			if _, err := tx.Menus().Get(ctx, m.ParentID); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("%w: menu %d does not exist", ErrInvalidParent, m.ParentID)
				}
				return err
			}
		}
		id, err := tx.Menus().Create(ctx, m)
		if err != nil {
			return err
		}
		created, err = tx.Menus().Get(ctx, id)
		return err
	})
	if err != nil {
		return domain.Menu{}, err
	}

	invalidateAll(s.Access)
	return created, nil
}

func (s *MenuService) Update(ctx context.Context, m domain.Menu) (domain.Menu, error) {
	m = normaliseMenu(m)
	if err := validateMenu(m); err != nil {
		return domain.Menu{}, err
	}

	var updated domain.Menu
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Menus().Get(ctx, m.ID); err != nil {
			return err
		}
		if err := checkMenuParent(ctx, tx, m.ID, m.ParentID); err != nil {
			return err
		}
		if err := tx.Menus().Update(ctx, m); err != nil {
			return err
		}
		var err error
		updated, err = tx.Menus().Get(ctx, m.ID)
		return err
	})
	if err != nil {
		return domain.Menu{}, err
	}

	invalidateAll(s.Access)
	return updated, nil
}

// checkMenuParent walks up from parentID; reaching id means the move would
// create a cycle.
func checkMenuParent(ctx context.Context, tx store.Tx, id, parentID int64) error {
	if parentID == domain.RootParentID {
		return nil
	}
	if parentID == id {
		return fmt.Errorf("%w: a menu cannot be its own parent", ErrInvalidParent)
	}

	menus, err := tx.Menus().ListAll(ctx)
	if err != nil {
		return err
	}
	parents := make(map[int64]int64, len(menus))
	for _, m := range menus {
		parents[m.ID] = m.ParentID
	}
	if _, ok := parents[parentID]; !ok {
		return fmt.Errorf("%w: menu %d does not exist", ErrInvalidParent, parentID)
	}

	for cur, hops := parentID, 0; cur != domain.RootParentID && hops <= len(parents); hops++ {
		if cur == id {
			return fmt.Errorf("%w: menu %d is below %d", ErrInvalidParent, parentID, id)
		}
		next, ok := parents[cur]
		if !ok {
			break
		}
		cur = next
	}
	return nil
}

// Delete refuses while the menu has children. Role grants of the menu are
// dropped with it.
func (s *MenuService) Delete(ctx context.Context, id int64) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Menus().Get(ctx, id); err != nil {
			return err
		}
		kids, err := tx.Menus().ListChildren(ctx, id)
		if err != nil {
			return err
		}
		if len(kids) > 0 {
			return fmt.Errorf("%w: menu %d has %d children", ErrHasChildren, id, len(kids))
		}
		return tx.Menus().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	invalidateAll(s.Access)
	return nil
}
