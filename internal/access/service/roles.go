package service

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/store"
)

var reRoleCode = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

type RoleService struct {
	Store  store.Store
	Access AccessInvalidator
}

// RoleFilter narrows List. Zero values are ignored; Name and Code are
// substring matches.
type RoleFilter struct {
	Name   string
	Code   string
	Status *domain.Status
}

func validateRole(r domain.Role) error {
	f := fieldErrors{}
	f.check(r.Name != "", "name", "required")
	f.check(len(r.Name) <= 50, "name", "too long (max 50)")
	f.check(r.Code != "", "code", "required")
	f.check(len(r.Code) <= 50, "code", "too long (max 50)")
	f.check(r.Code == "" || reRoleCode.MatchString(r.Code), "code", "must start with a letter and only contain letters, digits or _")
	f.check(r.DataScope.Valid(), "data_scope", "must be between 1 and 5")
	f.check(r.Status.Valid(), "status", "must be 0 or 1")
	f.check(len(r.Remark) <= 255, "remark", "too long (max 255)")
	return f.err()
}

func (s *RoleService) Get(ctx context.Context, id int64) (domain.Role, error) {
	return s.Store.Roles().Get(ctx, id)
}

func (s *RoleService) List(ctx context.Context, q RoleFilter) ([]domain.Role, error) {
	roles, err := s.Store.Roles().ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(roles, func(r domain.Role) bool {
		return (q.Name != "" && !strings.Contains(r.Name, q.Name)) ||
			(q.Code != "" && !strings.Contains(r.Code, q.Code)) ||
			(q.Status != nil && r.Status != *q.Status)
	}), nil
}

// Create inserts the role with its grants. Department grants are only kept
// for the custom data scope.
func (s *RoleService) Create(ctx context.Context, r domain.Role) (domain.Role, error) {
	r.Name = strings.TrimSpace(r.Name)
	r.Code = strings.TrimSpace(r.Code)
	if err := validateRole(r); err != nil {
		return domain.Role{}, err
	}
	if r.DataScope != domain.DataScopeCustom {
		r.DeptIDs = nil
	}

	var created domain.Role
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := requireMenus(ctx, tx, r.MenuIDs); err != nil {
			return err
		}
		if err := requireDepartments(ctx, tx, r.DeptIDs); err != nil {
			return err
		}
		id, err := tx.Roles().Create(ctx, r)
		if err != nil {
			return err
		}
		created, err = tx.Roles().Get(ctx, id)
		return err
	})
	if err != nil {
		return domain.Role{}, err
	}

	invalidateAll(s.Access)
	return created, nil
}

// Update changes the role's attributes. The code is immutable and grants are
// left untouched, except that leaving the custom scope drops department
// grants.
func (s *RoleService) Update(ctx context.Context, r domain.Role) (domain.Role, error) {
	r.Name = strings.TrimSpace(r.Name)

	var updated domain.Role
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Roles().Get(ctx, r.ID)
		if err != nil {
			return err
		}
		r.Code = current.Code
		if err := validateRole(r); err != nil {
			return err
		}
		if err := tx.Roles().Update(ctx, r); err != nil {
			return err
		}
		if r.DataScope != domain.DataScopeCustom && len(current.DeptIDs) > 0 {
			if err := tx.Roles().SetDepts(ctx, r.ID, nil); err != nil {
				return err
			}
		}
		updated, err = tx.Roles().Get(ctx, r.ID)
		return err
	})
	if err != nil {
		return domain.Role{}, err
	}

	invalidateAll(s.Access)
	return updated, nil
}

// AssignMenus replaces the role's menu grants.
func (s *RoleService) AssignMenus(ctx context.Context, roleID int64, menuIDs []int64) (domain.Role, error) {
	var updated domain.Role
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Roles().Get(ctx, roleID); err != nil {
			return err
		}
		if err := requireMenus(ctx, tx, menuIDs); err != nil {
			return err
		}
		if err := tx.Roles().SetMenus(ctx, roleID, menuIDs); err != nil {
			return err
		}
		var err error
		updated, err = tx.Roles().Get(ctx, roleID)
		return err
	})
	if err != nil {
		return domain.Role{}, err
	}

	invalidateAll(s.Access)
	return updated, nil
}

// UpdateDataScope sets the role's data scope. deptIDs are stored for the
// custom scope and cleared otherwise.
func (s *RoleService) UpdateDataScope(ctx context.Context, roleID int64, scope domain.DataScope, deptIDs []int64) (domain.Role, error) {
	if !scope.Valid() {
		return domain.Role{}, &ValidationError{Details: map[string]string{"data_scope": "must be between 1 and 5"}}
	}
	if scope != domain.DataScopeCustom {
		deptIDs = nil
	}

	var updated domain.Role
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Roles().Get(ctx, roleID)
		if err != nil {
			return err
		}
		if err := requireDepartments(ctx, tx, deptIDs); err != nil {
			return err
		}
		current.DataScope = scope
		if err := tx.Roles().Update(ctx, current); err != nil {
			return err
		}
		if err := tx.Roles().SetDepts(ctx, roleID, deptIDs); err != nil {
			return err
		}
		updated, err = tx.Roles().Get(ctx, roleID)
		return err
	})
	if err != nil {
		return domain.Role{}, err
	}

	invalidateAll(s.Access)
	return updated, nil
}

// Delete refuses the admin role and roles still held by users.
func (s *RoleService) Delete(ctx context.Context, roleID int64) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		r, err := tx.Roles().Get(ctx, roleID)
		if err != nil {
			return err
		}
		if r.Code == domain.AdminRoleCode {
			return fmt.Errorf("%w: role %q cannot be deleted", ErrProtected, r.Code)
		}
		n, err := tx.Roles().CountUsers(ctx, roleID)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: role %q is held by %d users", ErrInUse, r.Code, n)
		}
		return tx.Roles().Delete(ctx, roleID)
	})
	if err != nil {
		return err
	}

	invalidateAll(s.Access)
	return nil
}

func requireMenus(ctx context.Context, tx store.Tx, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	menus, err := tx.Menus().ListAll(ctx)
	if err != nil {
		return err
	}
	known := make(map[int64]bool, len(menus))
	for _, m := range menus {
		known[m.ID] = true
	}
	for _, id := range ids {
		if !known[id] {
			return &ValidationError{Details: map[string]string{"menu_ids": fmt.Sprintf("menu %d does not exist", id)}}
		}
	}
	return nil
}

func requireDepartments(ctx context.Context, tx store.Tx, ids []int64) error {
	for _, id := range ids {
		if _, err := tx.Departments().Get(ctx, id); err != nil {
			return &ValidationError{Details: map[string]string{"dept_ids": fmt.Sprintf("department %d does not exist", id)}}
		}
	}
	return nil
}

func requireRoles(ctx context.Context, tx store.Tx, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	roles, err := tx.Roles().ListByIDs(ctx, ids)
	if err != nil {
		return err
	}
	known := make(map[int64]bool, len(roles))
	for _, r := range roles {
		known[r.ID] = true
	}
	for _, id := range ids {
		if !known[id] {
			return &ValidationError{Details: map[string]string{"role_ids": fmt.Sprintf("role %d does not exist", id)}}
		}
	}
	return nil
}
