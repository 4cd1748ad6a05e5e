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

type DepartmentService struct {
	Store  store.Store
	Access AccessInvalidator
}

// DepartmentNode is a department with its ordered children.
type DepartmentNode struct {
	domain.Department
	Children []DepartmentNode
}

func validateDepartment(d domain.Department) error {
	f := fieldErrors{}
	name := strings.TrimSpace(d.Name)
	f.check(name != "", "name", "required")
	f.check(len(name) <= 50, "name", "too long (max 50)")
	f.check(len(d.Leader) <= 50, "leader", "too long (max 50)")
	f.check(len(d.Phone) <= 20, "phone", "too long (max 20)")
	f.check(d.Status.Valid(), "status", "must be 0 or 1")
	f.check(d.ParentID >= 0, "parent_id", "must not be negative")
	return f.err()
}

func (s *DepartmentService) Get(ctx context.Context, id int64) (domain.Department, error) {
	return s.Store.Departments().Get(ctx, id)
}

func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	return s.Store.Departments().ListAll(ctx)
}

// Tree returns the department forest. Departments whose parent is missing
// are listed as roots.
func (s *DepartmentService) Tree(ctx context.Context) ([]DepartmentNode, error) {
	depts, err := s.Store.Departments().ListAll(ctx)
	if err != nil {
		return nil, err
	}
	index, err := policy.BuildTreeIndex(depts)
	if err != nil {
		return nil, err
	}

	var build func(ids []int64) []DepartmentNode
	build = func(ids []int64) []DepartmentNode {
		out := make([]DepartmentNode, 0, len(ids))
		for _, id := range ids {
			d, _ := index.Get(id)
			out = append(out, DepartmentNode{Department: d, Children: build(index.Children(id))})
		}
		return out
	}
	return build(index.Roots()), nil
}

func (s *DepartmentService) Create(ctx context.Context, d domain.Department) (domain.Department, error) {
	d.Name = strings.TrimSpace(d.Name)
	if err := validateDepartment(d); err != nil {
		return domain.Department{}, err
	}

	var created domain.Department
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if d.ParentID != domain.RootParentID {
			if _, err := tx.Departments().Get(ctx, d.ParentID); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("%w: department %d does not exist", ErrInvalidParent, d.ParentID)
				}
				return err
			}
		}
		id, err := tx.Departments().Create(ctx, d)
		if err != nil {
			return err
		}
		created, err = tx.Departments().Get(ctx, id)
		return err
	})
	if err != nil {
		return domain.Department{}, err
	}

	invalidateAll(s.Access)
	return created, nil
}

// Update rejects moving a department below itself.
func (s *DepartmentService) Update(ctx context.Context, d domain.Department) (domain.Department, error) {
	d.Name = strings.TrimSpace(d.Name)
	if err := validateDepartment(d); err != nil {
		return domain.Department{}, err
	}

	var updated domain.Department
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Departments().Get(ctx, d.ID); err != nil {
			return err
		}
		if err := checkDepartmentParent(ctx, tx, d.ID, d.ParentID); err != nil {
			return err
		}
		if err := tx.Departments().Update(ctx, d); err != nil {
			return err
		}
		var err error
		updated, err = tx.Departments().Get(ctx, d.ID)
		return err
	})
	if err != nil {
		return domain.Department{}, err
	}

	invalidateAll(s.Access)
	return updated, nil
}

func checkDepartmentParent(ctx context.Context, tx store.Tx, id, parentID int64) error {
	if parentID == domain.RootParentID {
		return nil
	}
	if parentID == id {
		return fmt.Errorf("%w: a department cannot be its own parent", ErrInvalidParent)
	}

	depts, err := tx.Departments().ListAll(ctx)
	if err != nil {
		return err
	}
	index, err := policy.BuildTreeIndex(depts)
	if err != nil {
		return err
	}
	if !index.Exists(parentID) {
		return fmt.Errorf("%w: department %d does not exist", ErrInvalidParent, parentID)
	}
	if index.DescendantsOf(id).Has(parentID) {
		return fmt.Errorf("%w: department %d is below %d", ErrInvalidParent, parentID, id)
	}
	return nil
}

// Delete refuses while the department has children or assigned users.
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Departments().Get(ctx, id); err != nil {
			return err
		}
		kids, err := tx.Departments().ListChildren(ctx, id)
		if err != nil {
			return err
		}
		if len(kids) > 0 {
			return fmt.Errorf("%w: department %d has %d sub-departments", ErrHasChildren, id, len(kids))
		}
		n, err := tx.Departments().CountUsers(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: department %d has %d users", ErrInUse, id, n)
		}
		return tx.Departments().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	invalidateAll(s.Access)
	return nil
}
