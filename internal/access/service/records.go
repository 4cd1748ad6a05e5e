package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/store"
)

// RecordService serves department-partitioned records. Every method takes the
// caller's resolved scope; rows outside it behave as if they did not exist.
type RecordService struct {
	Store  store.Store
	Access *AccessService
}

func validateRecord(r domain.Record) error {
	f := fieldErrors{}
	f.check(r.Title != "", "title", "required")
	f.check(len(r.Title) <= 100, "title", "too long (max 100)")
	f.check(len(r.Content) <= 2000, "content", "too long (max 2000)")
	f.check(r.DeptID >= 0, "dept_id", "must not be negative")
	return f.err()
}

// Scope describes the caller's effective data scope.
func (s *RecordService) Scope(ctx context.Context, userID int64) (ScopeInfo, error) {
	return s.Access.Scope(ctx, userID)
}

func (s *RecordService) List(ctx context.Context, caller ScopeInfo, q store.RecordQuery) ([]domain.Record, int, error) {
	q.Filter = caller.Result.RowFilter()
	return s.Store.Records().List(ctx, q)
}

func (s *RecordService) Get(ctx context.Context, caller ScopeInfo, id int64) (domain.Record, error) {
	return s.visible(ctx, s.Store, caller, id)
}

// Create stores a record owned by the caller. The department defaults to the
// caller's own.
func (s *RecordService) Create(ctx context.Context, caller ScopeInfo, r domain.Record) (domain.Record, error) {
	r.Title = strings.TrimSpace(r.Title)
	if r.DeptID == 0 {
		r.DeptID = caller.DeptID
	}
	if err := validateRecord(r); err != nil {
		return domain.Record{}, err
	}
	if err := checkPlacement(caller, r.DeptID); err != nil {
		return domain.Record{}, err
	}
	r.CreatedBy = caller.Result.UserID

	id, err := s.Store.Records().Create(ctx, r)
	if err != nil {
		return domain.Record{}, err
	}
	return s.Store.Records().Get(ctx, id)
}

// Update changes title, content and department of a visible record. Moving
// it requires the destination to be in scope too.
func (s *RecordService) Update(ctx context.Context, caller ScopeInfo, r domain.Record) (domain.Record, error) {
	r.Title = strings.TrimSpace(r.Title)

	var updated domain.Record
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := s.visible(ctx, tx, caller, r.ID)
		if err != nil {
			return err
		}
		if r.DeptID == 0 {
			r.DeptID = current.DeptID
		}
		if err := validateRecord(r); err != nil {
			return err
		}
		if r.DeptID != current.DeptID {
			if err := checkPlacement(caller, r.DeptID); err != nil {
				return err
			}
		}
		r.CreatedBy = current.CreatedBy
		if err := tx.Records().Update(ctx, r); err != nil {
			return err
		}
		updated, err = tx.Records().Get(ctx, r.ID)
		return err
	})
	return updated, err
}

func (s *RecordService) Delete(ctx context.Context, caller ScopeInfo, id int64) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := s.visible(ctx, tx, caller, id); err != nil {
			return err
		}
		return tx.Records().Delete(ctx, id)
	})
}

func (s *RecordService) visible(ctx context.Context, st store.Store, caller ScopeInfo, id int64) (domain.Record, error) {
	r, err := st.Records().Get(ctx, id)
	if err != nil {
		return domain.Record{}, err
	}
	if !caller.Result.RowFilter().Allows(r.DeptID, r.CreatedBy) {
		return domain.Record{}, store.ErrNotFound
	}
	return r, nil
}

// checkPlacement allows a department that is visible to the caller, or the
// caller's own department when they only see their own rows.
func checkPlacement(caller ScopeInfo, deptID int64) error {
	res := caller.Result
	switch {
	case res.Unrestricted():
		return nil
	case slices.Contains(res.VisibleDeptIDs, deptID):
		return nil
	case (res.OwnerOnly || res.IncludeOwn) && deptID == caller.DeptID:
		return nil
	}
	return fmt.Errorf("%w: department %d", ErrOutOfScope, deptID)
}
