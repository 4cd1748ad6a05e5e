package policy_test

import (
	"testing"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/policy"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	idx, err := policy.BuildTreeIndex(sampleDepartments())
	require.NoError(t, err)

	user := domain.User{ID: 9, DeptID: 2, Status: domain.StatusEnabled}
	custom := policy.NewSet[int64](3, 5, 999)

	tests := []struct {
		name   string
		policy domain.DataScope
		user   domain.User
		want   []int64
	}{
		{"all", domain.DataScopeAll, user, []int64{1, 2, 3, 4, 5, 6}},
		{"dept", domain.DataScopeDept, user, []int64{2}},
		{"dept and below", domain.DataScopeDeptAndBelow, user, []int64{2, 3, 4}},
		{"self", domain.DataScopeSelf, user, []int64{}},
		{"custom drops stale ids", domain.DataScopeCustom, user, []int64{3, 5}},
		{"dept with missing department", domain.DataScopeDept, domain.User{ID: 9, DeptID: 77}, []int64{}},
		{"dept and below with missing department", domain.DataScopeDeptAndBelow, domain.User{ID: 9, DeptID: 77}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := policy.Resolve(tt.user, tt.policy, custom, idx)
			require.NoError(t, err)
			require.Equal(t, tt.want, got.Sorted())
		})
	}

	t.Run("every valid policy is handled", func(t *testing.T) {
		for _, p := range domain.DataScopes {
			_, err := policy.Resolve(user, p, custom, idx)
			require.NoError(t, err, p.String())
		}
	})

	t.Run("unmapped policy fails", func(t *testing.T) {
		for _, p := range []domain.DataScope{0, 6, -1} {
			_, err := policy.Resolve(user, p, custom, idx)
			require.ErrorIs(t, err, policy.ErrInvalidScopePolicy)
		}
	})
}
