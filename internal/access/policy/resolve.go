package policy

import (
	"fmt"

	"github.com/aussiebroadwan/access/internal/access/domain"
)

// Resolve turns a single data-scope policy into the concrete set of visible
// departments. SELF yields an empty set; owner filtering is signalled on the
// AccessResult rather than through departments.
func Resolve(user domain.User, policy domain.DataScope, customDeptIDs IDSet, index *TreeIndex) (IDSet, error) {
	switch policy {
	case domain.DataScopeAll:
		return index.All(), nil

	case domain.DataScopeDept:
		// A user placed in a department missing from the snapshot sees nothing.
		if !index.Exists(user.DeptID) {
			return NewSet[int64](), nil
		}
		return NewSet(user.DeptID), nil

	case domain.DataScopeDeptAndBelow:
		return index.DescendantsOf(user.DeptID), nil

	case domain.DataScopeSelf:
		return NewSet[int64](), nil

	case domain.DataScopeCustom:
		return existing(customDeptIDs, index), nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidScopePolicy, int(policy))
	}
}

// existing drops IDs that are no longer part of the snapshot.
func existing(ids IDSet, index *TreeIndex) IDSet {
	out := NewSet[int64]()
	for id := range ids {
		if index.Exists(id) {
			out.Add(id)
		}
	}
	return out
}
