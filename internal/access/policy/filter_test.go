package policy_test

import (
	"testing"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/policy"
	"github.com/stretchr/testify/require"
)

func TestRowFilter(t *testing.T) {
	t.Run("all is unrestricted", func(t *testing.T) {
		f := policy.AccessResult{UserID: 1, Policy: domain.DataScopeAll}.RowFilter()
		clause, args := f.SQL("dept_id", "created_by")
		require.Empty(t, clause)
		require.Nil(t, args)
		require.True(t, f.Allows(123, 456))
	})

	t.Run("department set", func(t *testing.T) {
		f := policy.AccessResult{UserID: 1, Policy: domain.DataScopeDept, VisibleDeptIDs: []int64{2, 3}}.RowFilter()
		clause, args := f.SQL("dept_id", "created_by")
		require.Equal(t, "dept_id IN (?, ?)", clause)
		require.Equal(t, []any{int64(2), int64(3)}, args)
		require.True(t, f.Allows(3, 9))
		require.False(t, f.Allows(4, 1))
	})

	t.Run("self filters by owner", func(t *testing.T) {
		f := policy.AccessResult{UserID: 7, Policy: domain.DataScopeSelf, OwnerOnly: true, VisibleDeptIDs: []int64{}}.RowFilter()
		clause, args := f.SQL("dept_id", "created_by")
		require.Equal(t, "created_by = ?", clause)
		require.Equal(t, []any{int64(7)}, args)
		require.True(t, f.Allows(99, 7))
		require.False(t, f.Allows(99, 8))
	})

	t.Run("departments or own rows", func(t *testing.T) {
		f := policy.AccessResult{UserID: 7, Policy: domain.DataScopeDept, VisibleDeptIDs: []int64{2}, IncludeOwn: true}.RowFilter()
		clause, args := f.SQL("r.dept_id", "r.created_by")
		require.Equal(t, "(r.dept_id IN (?) OR r.created_by = ?)", clause)
		require.Equal(t, []any{int64(2), int64(7)}, args)
	})

	t.Run("nothing visible", func(t *testing.T) {
		f := policy.AccessResult{UserID: 7}.RowFilter()
		clause, args := f.SQL("dept_id", "created_by")
		require.Equal(t, "1 = 0", clause)
		require.Empty(t, args)
		require.False(t, f.Allows(1, 7))
	})
}
