package policy_test

import (
	"sync"
	"testing"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/policy"
	"github.com/stretchr/testify/require"
)

func chain() []domain.Department {
	return []domain.Department{dept(1, 0), dept(2, 1), dept(3, 2)}
}

func resolveOne(t *testing.T, user domain.User, roles []domain.Role, depts []domain.Department) policy.AccessResult {
	t.Helper()
	res, err := policy.ResolveAccess(user, policy.RolesByID(roles), policy.MenusByID(nil), depts)
	require.NoError(t, err)
	return res
}

func TestResolveAccessScenarios(t *testing.T) {
	user := domain.User{ID: 7, DeptID: 2, RoleIDs: []int64{1}, Status: domain.StatusEnabled}

	t.Run("dept and below", func(t *testing.T) {
		res := resolveOne(t, user, []domain.Role{role(1, domain.DataScopeDeptAndBelow)}, chain())
		require.Equal(t, []int64{2, 3}, res.VisibleDeptIDs)
	})

	t.Run("dept excludes children", func(t *testing.T) {
		res := resolveOne(t, user, []domain.Role{role(1, domain.DataScopeDept)}, chain())
		require.Equal(t, []int64{2}, res.VisibleDeptIDs)
	})

	t.Run("all wins over self", func(t *testing.T) {
		u := user
		u.RoleIDs = []int64{1, 2}
		res := resolveOne(t, u, []domain.Role{role(1, domain.DataScopeAll), role(2, domain.DataScopeSelf)}, chain())
		require.Equal(t, domain.DataScopeAll, res.Policy)
		require.Equal(t, []int64{1, 2, 3}, res.VisibleDeptIDs)
		require.False(t, res.OwnerOnly)
		require.False(t, res.IncludeOwn)
	})

	t.Run("custom drops stale department", func(t *testing.T) {
		r := role(1, domain.DataScopeCustom)
		r.DeptIDs = []int64{5, 999}
		depts := append(chain(), dept(5, 1))
		res := resolveOne(t, user, []domain.Role{r}, depts)
		require.Equal(t, []int64{5}, res.VisibleDeptIDs)
	})

	t.Run("self is signalled distinctly", func(t *testing.T) {
		res := resolveOne(t, user, []domain.Role{role(1, domain.DataScopeSelf)}, chain())
		require.Empty(t, res.VisibleDeptIDs)
		require.NotNil(t, res.VisibleDeptIDs)
		require.True(t, res.OwnerOnly)
	})
}

func TestResolveAccessDegradation(t *testing.T) {
	roles := []domain.Role{role(1, domain.DataScopeAll)}

	t.Run("no roles", func(t *testing.T) {
		res := resolveOne(t, domain.User{ID: 1, DeptID: 2, Status: domain.StatusEnabled}, roles, chain())
		require.Empty(t, res.PermissionCodes)
		require.Empty(t, res.VisibleDeptIDs)
		require.Zero(t, res.Policy)
	})

	t.Run("disabled user", func(t *testing.T) {
		res := resolveOne(t, domain.User{ID: 1, DeptID: 2, RoleIDs: []int64{1}}, roles, chain())
		require.Empty(t, res.VisibleDeptIDs)
		require.Zero(t, res.Policy)
	})

	t.Run("only dangling roles", func(t *testing.T) {
		res := resolveOne(t, domain.User{ID: 1, RoleIDs: []int64{40, 41}, Status: domain.StatusEnabled}, roles, chain())
		require.Empty(t, res.VisibleDeptIDs)
	})

	t.Run("cycle propagates", func(t *testing.T) {
		_, err := policy.ResolveAccess(
			domain.User{ID: 1, RoleIDs: []int64{1}, Status: domain.StatusEnabled},
			policy.RolesByID(roles), policy.MenusByID(nil),
			[]domain.Department{dept(1, 2), dept(2, 1)},
		)
		require.ErrorIs(t, err, policy.ErrCycleDetected)
	})

	t.Run("invalid scope propagates", func(t *testing.T) {
		_, err := policy.ResolveAccess(
			domain.User{ID: 1, RoleIDs: []int64{1}, Status: domain.StatusEnabled},
			policy.RolesByID([]domain.Role{role(1, 42)}), policy.MenusByID(nil), chain(),
		)
		require.ErrorIs(t, err, policy.ErrInvalidScopePolicy)
	})
}

func TestResolveAccessProperties(t *testing.T) {
	depts := append(sampleDepartments(), dept(7, 6))
	menus := []domain.Menu{button(10, 0, "a:read"), button(11, 0, "a:write"), button(12, 0, "b:read")}

	custom := role(5, domain.DataScopeCustom, 12)
	custom.DeptIDs = []int64{6, 404}
	catalogue := []domain.Role{
		role(1, domain.DataScopeSelf, 10),
		role(2, domain.DataScopeDept, 11),
		role(3, domain.DataScopeDeptAndBelow),
		role(4, domain.DataScopeAll, 12),
		custom,
	}

	resolve := func(roleIDs ...int64) policy.AccessResult {
		user := domain.User{ID: 3, DeptID: 2, RoleIDs: roleIDs, Status: domain.StatusEnabled}
		res, err := policy.ResolveAccess(user, policy.RolesByID(catalogue), policy.MenusByID(menus), depts)
		require.NoError(t, err)
		return res
	}

	t.Run("adding a role never shrinks access", func(t *testing.T) {
		ids := []int64{1, 2, 3, 4, 5}
		// Every subset, extended by every role not already in it.
		for mask := 0; mask < 1<<len(ids); mask++ {
			var base []int64
			for i, id := range ids {
				if mask&(1<<i) != 0 {
					base = append(base, id)
				}
			}
			before := resolve(base...)
			for _, extra := range ids {
				after := resolve(append(append([]int64{}, base...), extra)...)
				require.True(t, policy.NewSet(before.PermissionCodes...).IsSubsetOf(after.Granted()),
					"codes shrank: %v + %d", base, extra)
				require.True(t, policy.NewSet(before.VisibleDeptIDs...).IsSubsetOf(policy.NewSet(after.VisibleDeptIDs...)),
					"departments shrank: %v + %d", base, extra)
				if before.RowFilter().Allows(0, 3) {
					require.True(t, after.RowFilter().Allows(0, 3), "own rows hidden: %v + %d", base, extra)
				}
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		require.Equal(t, resolve(1, 2, 5), resolve(1, 2, 5))
	})

	t.Run("custom grants stay visible under a department policy", func(t *testing.T) {
		res := resolve(2, 5)
		require.Equal(t, domain.DataScopeDept, res.Policy)
		require.Equal(t, []int64{2, 6}, res.VisibleDeptIDs)
	})
}

func TestSnapshotConcurrentResolve(t *testing.T) {
	snap, err := policy.NewSnapshot(sampleDepartments(), []domain.Role{role(1, domain.DataScopeDeptAndBelow)}, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(uid int64) {
			defer wg.Done()
			res, err := snap.Resolve(domain.User{ID: uid, DeptID: 2, RoleIDs: []int64{1}, Status: domain.StatusEnabled})
			require.NoError(t, err)
			require.Equal(t, []int64{2, 3, 4}, res.VisibleDeptIDs)
		}(int64(i + 1))
	}
	wg.Wait()
}

func TestNewSnapshotRejectsCycles(t *testing.T) {
	_, err := policy.NewSnapshot([]domain.Department{dept(1, 1)}, nil, nil)
	require.ErrorIs(t, err, policy.ErrCycleDetected)
}

func TestSnapshotExplain(t *testing.T) {
	custom := role(2, domain.DataScopeCustom)
	custom.DeptIDs = []int64{5, 6}
	snap, err := policy.NewSnapshot(sampleDepartments(), []domain.Role{role(1, domain.DataScopeDept), custom}, nil)
	require.NoError(t, err)

	user := domain.User{ID: 7, DeptID: 3, RoleIDs: []int64{1, 2}, Status: domain.StatusEnabled}

	t.Run("returns the aggregation behind the result", func(t *testing.T) {
		res, agg, err := snap.Explain(user)
		require.NoError(t, err)
		require.Equal(t, domain.DataScopeDept, agg.Policy)
		require.Equal(t, []int64{5, 6}, agg.CustomDeptIDs.Sorted())
		require.Equal(t, []int64{3, 5, 6}, res.VisibleDeptIDs)

		plain, err := snap.Resolve(user)
		require.NoError(t, err)
		require.Equal(t, plain, res)
	})

	t.Run("disabled user has an empty aggregation", func(t *testing.T) {
		disabled := user
		disabled.Status = domain.StatusDisabled
		res, agg, err := snap.Explain(disabled)
		require.NoError(t, err)
		require.Empty(t, res.VisibleDeptIDs)
		require.Zero(t, agg.CustomDeptIDs.Len())
		require.Zero(t, agg.Policy)
	})
}
