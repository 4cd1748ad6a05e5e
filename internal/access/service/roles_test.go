package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/store"
	"github.com/stretchr/testify/require"
)

func TestValidateRole(t *testing.T) {
	t.Parallel()

	valid := domain.Role{Name: "Ops", Code: "ops_lead", DataScope: domain.DataScopeDept, Status: domain.StatusEnabled}
	require.NoError(t, validateRole(valid))

	tests := []struct {
		name  string
		edit  func(r *domain.Role)
		field string
	}{
		{"missing name", func(r *domain.Role) { r.Name = "" }, "name"},
		{"code starts with digit", func(r *domain.Role) { r.Code = "1ops" }, "code"},
		{"code with dash", func(r *domain.Role) { r.Code = "ops-lead" }, "code"},
		{"unknown scope", func(r *domain.Role) { r.DataScope = 9 }, "data_scope"},
		{"bad status", func(r *domain.Role) { r.Status = 3 }, "status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.edit(&r)
			var verr *ValidationError
			require.ErrorAs(t, validateRole(r), &verr)
			require.Contains(t, verr.Details, tt.field)
		})
	}
}

func TestRoleServiceWrites(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	east, ops := f.deptID(t, "East"), f.deptID(t, "Ops")
	records := f.menuID(t, "Records")

	t.Run("create keeps custom departments only for custom scope", func(t *testing.T) {
		r, err := f.roles.Create(ctx, domain.Role{
			Name: "Viewer", Code: "viewer", DataScope: domain.DataScopeDept, Status: domain.StatusEnabled,
			MenuIDs: []int64{records}, DeptIDs: []int64{east},
		})
		require.NoError(t, err)
		require.Equal(t, []int64{records}, r.MenuIDs)
		require.Empty(t, r.DeptIDs)
	})

	t.Run("duplicate code", func(t *testing.T) {
		_, err := f.roles.Create(ctx, domain.Role{Name: "Viewer 2", Code: "viewer", DataScope: domain.DataScopeSelf, Status: domain.StatusEnabled})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("unknown grants", func(t *testing.T) {
		_, err := f.roles.Create(ctx, domain.Role{Name: "X", Code: "x", DataScope: domain.DataScopeSelf, Status: domain.StatusEnabled, MenuIDs: []int64{999}})
		require.ErrorIs(t, err, ErrValidation)

		_, err = f.roles.Create(ctx, domain.Role{Name: "X", Code: "x", DataScope: domain.DataScopeCustom, Status: domain.StatusEnabled, DeptIDs: []int64{999}})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("update keeps the code", func(t *testing.T) {
		r, err := f.roles.Get(ctx, f.roleID(t, "viewer"))
		require.NoError(t, err)
		r.Code = "renamed"
		r.Name = "Read only"
		updated, err := f.roles.Update(ctx, r)
		require.NoError(t, err)
		require.Equal(t, "viewer", updated.Code)
		require.Equal(t, "Read only", updated.Name)
	})

	t.Run("leaving custom scope drops department grants", func(t *testing.T) {
		auditor, err := f.roles.Get(ctx, f.roleID(t, "auditor"))
		require.NoError(t, err)
		require.Equal(t, []int64{east, ops}, auditor.DeptIDs)

		auditor.DataScope = domain.DataScopeSelf
		updated, err := f.roles.Update(ctx, auditor)
		require.NoError(t, err)
		require.Empty(t, updated.DeptIDs)
	})

	t.Run("update data scope", func(t *testing.T) {
		id := f.roleID(t, "auditor")
		_, err := f.roles.UpdateDataScope(ctx, id, 0, nil)
		require.ErrorIs(t, err, ErrValidation)

		r, err := f.roles.UpdateDataScope(ctx, id, domain.DataScopeCustom, []int64{ops})
		require.NoError(t, err)
		require.Equal(t, domain.DataScopeCustom, r.DataScope)
		require.Equal(t, []int64{ops}, r.DeptIDs)

		res, err := f.access.Resolve(ctx, f.userID(t, "aude"))
		require.NoError(t, err)
		require.Equal(t, []int64{ops}, res.VisibleDeptIDs)
	})

	t.Run("list filters", func(t *testing.T) {
		roles, err := f.roles.List(ctx, RoleFilter{Code: "a"})
		require.NoError(t, err)
		codes := make([]string, 0, len(roles))
		for _, r := range roles {
			codes = append(codes, r.Code)
		}
		require.ElementsMatch(t, []string{"admin", "manager", "auditor"}, codes)

		disabled := domain.StatusDisabled
		roles, err = f.roles.List(ctx, RoleFilter{Status: &disabled})
		require.NoError(t, err)
		require.Empty(t, roles)
	})

	t.Run("delete", func(t *testing.T) {
		require.ErrorIs(t, f.roles.Delete(ctx, f.roleID(t, "admin")), ErrProtected)
		require.ErrorIs(t, f.roles.Delete(ctx, f.roleID(t, "clerk")), ErrInUse)
		require.NoError(t, f.roles.Delete(ctx, f.roleID(t, "viewer")))
		require.ErrorIs(t, f.roles.Delete(ctx, 999), store.ErrNotFound)
	})
}
