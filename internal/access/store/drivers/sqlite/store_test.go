package sqlite

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/policy"
	"github.com/aussiebroadwan/access/internal/access/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", filepath.Join(t.TempDir(), "access.db"))
	s, err := NewStore(dsn)
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())

	empty, err := s.Departments().IsEmpty(context.Background())
	require.NoError(t, err)
	require.True(t, empty)
}

func TestDepartmentsRepo(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	repo := s.Departments()

	root, err := repo.Create(ctx, domain.Department{Name: "HQ", Status: domain.StatusEnabled})
	require.NoError(t, err)
	second, err := repo.Create(ctx, domain.Department{ParentID: root, Name: "Sales", Order: 2, Status: domain.StatusEnabled})
	require.NoError(t, err)
	first, err := repo.Create(ctx, domain.Department{ParentID: root, Name: "Ops", Order: 1, Status: domain.StatusEnabled})
	require.NoError(t, err)

	t.Run("children ordered by sort order", func(t *testing.T) {
		kids, err := repo.ListChildren(ctx, root)
		require.NoError(t, err)
		require.Len(t, kids, 2)
		require.Equal(t, first, kids[0].ID)
		require.Equal(t, second, kids[1].ID)
	})

	t.Run("update", func(t *testing.T) {
		d, err := repo.Get(ctx, first)
		require.NoError(t, err)
		d.Leader = "Ada"
		require.NoError(t, repo.Update(ctx, d))

		got, err := repo.Get(ctx, first)
		require.NoError(t, err)
		require.Equal(t, "Ada", got.Leader)
		require.False(t, got.CreatedAt.IsZero())
	})

	t.Run("missing", func(t *testing.T) {
		_, err := repo.Get(ctx, 999)
		require.ErrorIs(t, err, store.ErrNotFound)
		require.ErrorIs(t, repo.Delete(ctx, 999), store.ErrNotFound)
	})
}

func seedAccess(t *testing.T, s *Store) (deptA, deptB, roleID, userID int64) {
	t.Helper()
	ctx := context.Background()

	var err error
	deptA, err = s.Departments().Create(ctx, domain.Department{Name: "A", Status: domain.StatusEnabled})
	require.NoError(t, err)
	deptB, err = s.Departments().Create(ctx, domain.Department{Name: "B", Status: domain.StatusEnabled})
	require.NoError(t, err)

	menu, err := s.Menus().Create(ctx, domain.Menu{Name: "Users", Type: domain.MenuTypeMenu, PermissionCode: "sys:user:list", Status: domain.StatusEnabled, Visible: true})
	require.NoError(t, err)

	roleID, err = s.Roles().Create(ctx, domain.Role{
		Name: "Auditor", Code: "auditor", DataScope: domain.DataScopeCustom, Status: domain.StatusEnabled,
		MenuIDs: []int64{menu, menu}, DeptIDs: []int64{deptB},
	})
	require.NoError(t, err)

	userID, err = s.Users().Create(ctx, domain.User{
		Username: "alice", PasswordHash: "x", DeptID: deptA, RoleIDs: []int64{roleID}, Status: domain.StatusEnabled,
	})
	require.NoError(t, err)
	return deptA, deptB, roleID, userID
}

func TestRolesRepo(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	_, deptB, roleID, _ := seedAccess(t, s)

	t.Run("grants loaded and deduplicated", func(t *testing.T) {
		r, err := s.Roles().Get(ctx, roleID)
		require.NoError(t, err)
		require.Len(t, r.MenuIDs, 1)
		require.Equal(t, []int64{deptB}, r.DeptIDs)
	})

	t.Run("duplicate code", func(t *testing.T) {
		_, err := s.Roles().Create(ctx, domain.Role{Name: "Again", Code: "auditor", DataScope: domain.DataScopeAll})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("grant to missing menu rolls back", func(t *testing.T) {
		_, err := s.Roles().Create(ctx, domain.Role{Name: "Broken", Code: "broken", DataScope: domain.DataScopeAll, MenuIDs: []int64{404}})
		require.ErrorIs(t, err, store.ErrConflict)

		_, err = s.Roles().GetByCode(ctx, "broken")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("deleting a department drops custom grants", func(t *testing.T) {
		require.NoError(t, s.Departments().Delete(ctx, deptB))
		r, err := s.Roles().Get(ctx, roleID)
		require.NoError(t, err)
		require.Empty(t, r.DeptIDs)
	})

	t.Run("count users", func(t *testing.T) {
		n, err := s.Roles().CountUsers(ctx, roleID)
		require.NoError(t, err)
		require.Equal(t, 1, n)
	})
}

func TestUsersRepoList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	deptA, deptB, roleID, alice := seedAccess(t, s)

	bob, err := s.Users().Create(ctx, domain.User{Username: "bob", PasswordHash: "x", DeptID: deptB, Status: domain.StatusEnabled})
	require.NoError(t, err)
	_, err = s.Users().Create(ctx, domain.User{Username: "carol_ops", PasswordHash: "x", Status: domain.StatusDisabled})
	require.NoError(t, err)

	usernames := func(users []domain.User) []string {
		out := []string{}
		for _, u := range users {
			out = append(out, u.Username)
		}
		return out
	}

	t.Run("unrestricted", func(t *testing.T) {
		users, total, err := s.Users().List(ctx, store.UserQuery{Filter: policy.RowFilter{Unrestricted: true}})
		require.NoError(t, err)
		require.Equal(t, 3, total)
		require.Equal(t, []string{"alice", "bob", "carol_ops"}, usernames(users))
		require.Equal(t, []int64{roleID}, users[0].RoleIDs)
		require.Empty(t, users[1].RoleIDs)
	})

	t.Run("department filter", func(t *testing.T) {
		users, total, err := s.Users().List(ctx, store.UserQuery{Filter: policy.RowFilter{DeptIDs: []int64{deptB}}})
		require.NoError(t, err)
		require.Equal(t, 1, total)
		require.Equal(t, bob, users[0].ID)
	})

	t.Run("owner filter matches own row", func(t *testing.T) {
		users, _, err := s.Users().List(ctx, store.UserQuery{Filter: policy.RowFilter{OwnerID: alice}})
		require.NoError(t, err)
		require.Equal(t, []string{"alice"}, usernames(users))
	})

	t.Run("nothing visible", func(t *testing.T) {
		users, total, err := s.Users().List(ctx, store.UserQuery{})
		require.NoError(t, err)
		require.Zero(t, total)
		require.Empty(t, users)
	})

	t.Run("like is literal", func(t *testing.T) {
		users, _, err := s.Users().List(ctx, store.UserQuery{Username: "_", Filter: policy.RowFilter{Unrestricted: true}})
		require.NoError(t, err)
		require.Equal(t, []string{"carol_ops"}, usernames(users))
	})

	t.Run("status and paging", func(t *testing.T) {
		enabled := domain.StatusEnabled
		users, total, err := s.Users().List(ctx, store.UserQuery{
			Status: &enabled,
			Filter: policy.RowFilter{Unrestricted: true},
			Page:   store.Page{Limit: 1, Offset: 1},
		})
		require.NoError(t, err)
		require.Equal(t, 2, total)
		require.Equal(t, []string{"bob"}, usernames(users))
	})

	t.Run("department id", func(t *testing.T) {
		users, _, err := s.Users().List(ctx, store.UserQuery{DeptID: deptA, Filter: policy.RowFilter{Unrestricted: true}})
		require.NoError(t, err)
		require.Equal(t, []string{"alice"}, usernames(users))
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := s.Users().Create(ctx, domain.User{Username: "alice", PasswordHash: "x"})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestRecordsRepoList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, rec := range []domain.Record{
		{Title: "a1", DeptID: 1, CreatedBy: 10},
		{Title: "a2", DeptID: 1, CreatedBy: 11},
		{Title: "b1", DeptID: 2, CreatedBy: 10},
		{Title: "c1", DeptID: 3, CreatedBy: 12},
	} {
		_, err := s.Records().Create(ctx, rec)
		require.NoError(t, err)
	}

	titles := func(f policy.RowFilter) []string {
		recs, total, err := s.Records().List(ctx, store.RecordQuery{Filter: f})
		require.NoError(t, err)
		require.Equal(t, len(recs), total)
		out := []string{}
		for _, r := range recs {
			out = append(out, r.Title)
		}
		return out
	}

	require.Equal(t, []string{"c1", "b1", "a2", "a1"}, titles(policy.RowFilter{Unrestricted: true}))
	require.Equal(t, []string{"a2", "a1"}, titles(policy.RowFilter{DeptIDs: []int64{1}}))
	require.Equal(t, []string{"b1", "a1"}, titles(policy.RowFilter{OwnerID: 10}))
	require.Equal(t, []string{"c1", "b1", "a1"}, titles(policy.RowFilter{DeptIDs: []int64{3}, OwnerID: 10}))
	require.Empty(t, titles(policy.RowFilter{}))
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		s := newTestStore(t)
		err := s.WithTx(ctx, func(tx store.Tx) error {
			_, err := tx.Departments().Create(ctx, domain.Department{Name: "A"})
			return err
		})
		require.NoError(t, err)

		empty, err := s.Departments().IsEmpty(ctx)
		require.NoError(t, err)
		require.False(t, empty)
	})

	t.Run("nested transactions are refused", func(t *testing.T) {
		s := newTestStore(t)
		err := s.WithTx(ctx, func(tx store.Tx) error {
			return tx.WithTx(ctx, func(store.Tx) error { return nil })
		})
		require.Error(t, err)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("PRAGMA foreign_keys").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO departments").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectRollback()

		s, err := newStore(db, "mock")
		require.NoError(t, err)

		boom := errors.New("boom")
		err = s.WithTx(ctx, func(tx store.Tx) error {
			if _, err := tx.Departments().Create(ctx, domain.Department{Name: "A"}); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
