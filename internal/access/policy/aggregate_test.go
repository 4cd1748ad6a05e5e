package policy_test

import (
	"testing"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/policy"
	"github.com/stretchr/testify/require"
)

func role(id int64, scope domain.DataScope, menus ...int64) domain.Role {
	return domain.Role{ID: id, Code: "r", DataScope: scope, Status: domain.StatusEnabled, MenuIDs: menus}
}

func button(id, parent int64, code string) domain.Menu {
	return domain.Menu{
		ID: id, ParentID: parent, Name: code, Type: domain.MenuTypeButton,
		PermissionCode: code, Status: domain.StatusEnabled, Visible: true,
	}
}

func TestLeastRestrictive(t *testing.T) {
	order := []domain.DataScope{
		domain.DataScopeAll,
		domain.DataScopeDeptAndBelow,
		domain.DataScopeDept,
		domain.DataScopeCustom,
		domain.DataScopeSelf,
	}
	for i, wider := range order {
		for _, narrower := range order[i:] {
			require.Equal(t, wider, policy.LeastRestrictive(wider, narrower))
			require.Equal(t, wider, policy.LeastRestrictive(narrower, wider))
		}
	}
	require.Equal(t, domain.DataScopeSelf, policy.LeastRestrictive(0, domain.DataScopeSelf))
}

func TestAggregate(t *testing.T) {
	menus := []domain.Menu{
		button(10, 0, "sys:user:list"),
		button(11, 0, "sys:user:add"),
		button(12, 0, "sys:dept:list"),
		button(13, 0, ""),
	}
	disabledMenu := button(14, 0, "sys:secret")
	disabledMenu.Status = domain.StatusDisabled
	menus = append(menus, disabledMenu)

	t.Run("unions codes across enabled roles", func(t *testing.T) {
		roles := []domain.Role{role(1, domain.DataScopeDept, 10, 13), role(2, domain.DataScopeSelf, 11, 14)}
		user := domain.User{ID: 1, RoleIDs: []int64{1, 2}, Status: domain.StatusEnabled}

		agg, err := policy.Aggregate(user, policy.RolesByID(roles), policy.MenusByID(menus))
		require.NoError(t, err)
		require.Equal(t, []string{"sys:user:add", "sys:user:list"}, agg.Codes.Sorted())
		require.Equal(t, domain.DataScopeDept, agg.Policy)
		require.True(t, agg.HasSelf)
		require.Equal(t, []int64{1, 2}, agg.RoleIDs)
	})

	t.Run("disabled and unknown roles contribute nothing", func(t *testing.T) {
		disabled := role(2, domain.DataScopeAll, 12)
		disabled.Status = domain.StatusDisabled
		roles := []domain.Role{role(1, domain.DataScopeSelf, 10), disabled}
		user := domain.User{ID: 1, RoleIDs: []int64{1, 2, 404}, Status: domain.StatusEnabled}

		agg, err := policy.Aggregate(user, policy.RolesByID(roles), policy.MenusByID(menus))
		require.NoError(t, err)
		require.Equal(t, []string{"sys:user:list"}, agg.Codes.Sorted())
		require.Equal(t, domain.DataScopeSelf, agg.Policy)
	})

	t.Run("custom departments are unioned over custom roles only", func(t *testing.T) {
		a := role(1, domain.DataScopeCustom)
		a.DeptIDs = []int64{5, 6}
		b := role(2, domain.DataScopeCustom)
		b.DeptIDs = []int64{6, 7}
		c := role(3, domain.DataScopeDept)
		c.DeptIDs = []int64{8}
		user := domain.User{ID: 1, RoleIDs: []int64{1, 2, 3}, Status: domain.StatusEnabled}

		agg, err := policy.Aggregate(user, policy.RolesByID([]domain.Role{a, b, c}), policy.MenusByID(nil))
		require.NoError(t, err)
		require.Equal(t, []int64{5, 6, 7}, agg.CustomDeptIDs.Sorted())
		require.Equal(t, domain.DataScopeDept, agg.Policy)
	})

	t.Run("no roles yields zero policy", func(t *testing.T) {
		agg, err := policy.Aggregate(domain.User{ID: 1}, policy.RolesByID(nil), policy.MenusByID(nil))
		require.NoError(t, err)
		require.Zero(t, agg.Policy)
		require.Zero(t, agg.Codes.Len())
	})

	t.Run("invalid scope on an enabled role fails", func(t *testing.T) {
		user := domain.User{ID: 1, RoleIDs: []int64{1}, Status: domain.StatusEnabled}
		_, err := policy.Aggregate(user, policy.RolesByID([]domain.Role{role(1, 9)}), policy.MenusByID(nil))
		require.ErrorIs(t, err, policy.ErrInvalidScopePolicy)
	})

	t.Run("duplicate role assignments count once", func(t *testing.T) {
		user := domain.User{ID: 1, RoleIDs: []int64{1, 1}, Status: domain.StatusEnabled}
		agg, err := policy.Aggregate(user, policy.RolesByID([]domain.Role{role(1, domain.DataScopeAll, 10)}), policy.MenusByID(menus))
		require.NoError(t, err)
		require.Equal(t, []int64{1}, agg.RoleIDs)
	})
}
