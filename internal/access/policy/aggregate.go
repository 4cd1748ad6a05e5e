package policy

import (
	"fmt"

	"github.com/aussiebroadwan/access/internal/access/domain"
)

// RoleLookup resolves a role by ID. The bool is false for unknown roles.
type RoleLookup func(id int64) (domain.Role, bool)

// MenuLookup resolves a menu by ID. The bool is false for unknown menus.
type MenuLookup func(id int64) (domain.Menu, bool)

// RolesByID builds a lookup over an in-memory role list.
func RolesByID(roles []domain.Role) RoleLookup {
	m := make(map[int64]domain.Role, len(roles))
	for _, r := range roles {
		m[r.ID] = r
	}
	return func(id int64) (domain.Role, bool) {
		r, ok := m[id]
		return r, ok
	}
}

// MenusByID builds a lookup over an in-memory menu list.
func MenusByID(menus []domain.Menu) MenuLookup {
	m := make(map[int64]domain.Menu, len(menus))
	for _, mn := range menus {
		m[mn.ID] = mn
	}
	return func(id int64) (domain.Menu, bool) {
		mn, ok := m[id]
		return mn, ok
	}
}

// AggregatedAccess is the union of everything a user's enabled roles grant.
type AggregatedAccess struct {
	Codes         CodeSet
	Policy        domain.DataScope // zero when no enabled role was found
	CustomDeptIDs IDSet            // union over CUSTOM roles
	HasSelf       bool             // at least one enabled role is SELF
	RoleIDs       []int64          // enabled roles that contributed, in assignment order
}

// restrictiveness ranks policies; lower is less restrictive.
func restrictiveness(d domain.DataScope) int {
	switch d {
	case domain.DataScopeAll:
		return 0
	case domain.DataScopeDeptAndBelow:
		return 1
	case domain.DataScopeDept:
		return 2
	case domain.DataScopeCustom:
		return 3
	case domain.DataScopeSelf:
		return 4
	default:
		return 5
	}
}

// LeastRestrictive picks the policy granting wider visibility. A zero value
// on either side loses.
func LeastRestrictive(a, b domain.DataScope) domain.DataScope {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	if restrictiveness(b) < restrictiveness(a) {
		return b
	}
	return a
}

// Aggregate merges permission codes and data scopes across the user's enabled
// roles. Unknown and disabled roles contribute nothing. Menus that are
// unknown, disabled or carry no code add no permission.
func Aggregate(user domain.User, roles RoleLookup, menus MenuLookup) (AggregatedAccess, error) {
	agg := AggregatedAccess{
		Codes:         NewSet[string](),
		CustomDeptIDs: NewSet[int64](),
	}

	seen := make(map[int64]struct{}, len(user.RoleIDs))
	for _, roleID := range user.RoleIDs {
		if _, dup := seen[roleID]; dup {
			continue
		}
		seen[roleID] = struct{}{}

		role, ok := roles(roleID)
		if !ok || !role.Status.Enabled() {
			continue
		}
		if !role.DataScope.Valid() {
			return AggregatedAccess{}, fmt.Errorf(
				"%w: role %d has data scope %d", ErrInvalidScopePolicy, role.ID, int(role.DataScope),
			)
		}

		agg.RoleIDs = append(agg.RoleIDs, role.ID)

		for _, menuID := range role.MenuIDs {
			m, ok := menus(menuID)
			if !ok || !m.Status.Enabled() || m.PermissionCode == "" {
				continue
			}
			agg.Codes.Add(m.PermissionCode)
		}

		switch role.DataScope {
		case domain.DataScopeCustom:
			agg.CustomDeptIDs.Add(role.DeptIDs...)
		case domain.DataScopeSelf:
			agg.HasSelf = true
		}

		agg.Policy = LeastRestrictive(agg.Policy, role.DataScope)
	}

	return agg, nil
}
