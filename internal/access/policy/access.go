package policy

import (
	"slices"

	"github.com/aussiebroadwan/access/internal/access/domain"
)

// AccessResult is what a user may do (PermissionCodes) and which
// department-partitioned rows they may see (VisibleDeptIDs).
type AccessResult struct {
	UserID          int64
	PermissionCodes []string // sorted, never nil
	VisibleDeptIDs  []int64  // sorted, never nil
	Policy          domain.DataScope

	// OwnerOnly is set when the winning policy is SELF: rows must be filtered
	// by their creator instead of by department.
	OwnerOnly bool

	// IncludeOwn is set when any role grants SELF under a narrower-than-ALL
	// policy, so the user's own rows stay visible alongside VisibleDeptIDs.
	IncludeOwn bool
}

func emptyResult(userID int64) AccessResult {
	return AccessResult{
		UserID:          userID,
		PermissionCodes: []string{},
		VisibleDeptIDs:  []int64{},
	}
}

// Unrestricted reports global visibility.
func (r AccessResult) Unrestricted() bool { return r.Policy == domain.DataScopeAll }

// HasPermission reports whether code was granted.
func (r AccessResult) HasPermission(code string) bool {
	_, ok := slices.BinarySearch(r.PermissionCodes, code)
	return ok
}

// HasAnyPermission reports whether at least one of codes was granted.
func (r AccessResult) HasAnyPermission(codes ...string) bool {
	for _, c := range codes {
		if r.HasPermission(c) {
			return true
		}
	}
	return false
}

// Granted returns the permission codes as a set.
func (r AccessResult) Granted() CodeSet { return NewSet(r.PermissionCodes...) }

// ResolveAccess composes the tree index, role aggregation and scope
// resolution for one user. It only fails with ErrCycleDetected or
// ErrInvalidScopePolicy.
func ResolveAccess(
	user domain.User,
	roles RoleLookup,
	menus MenuLookup,
	depts []domain.Department,
) (AccessResult, error) {
	index, err := BuildTreeIndex(depts)
	if err != nil {
		return AccessResult{}, err
	}
	result, _, err := resolveWithIndex(user, roles, menus, index)
	return result, err
}

// resolveWithIndex also returns the aggregation behind the result. A
// disabled user gets an empty aggregation.
func resolveWithIndex(user domain.User, roles RoleLookup, menus MenuLookup, index *TreeIndex) (AccessResult, AggregatedAccess, error) {
	result := emptyResult(user.ID)
	none := AggregatedAccess{Codes: NewSet[string](), CustomDeptIDs: NewSet[int64]()}
	if !user.Status.Enabled() {
		return result, none, nil
	}

	agg, err := Aggregate(user, roles, menus)
	if err != nil {
		return AccessResult{}, none, err
	}
	if agg.Policy == 0 {
		return result, agg, nil
	}

	visible, err := Resolve(user, agg.Policy, agg.CustomDeptIDs, index)
	if err != nil {
		return AccessResult{}, none, err
	}

	// Custom grants stay additive under the department policies that outrank
	// CUSTOM, so adding a role never hides a department.
	if agg.Policy == domain.DataScopeDept || agg.Policy == domain.DataScopeDeptAndBelow {
		visible.Union(existing(agg.CustomDeptIDs, index))
	}

	result.PermissionCodes = agg.Codes.Sorted()
	result.VisibleDeptIDs = visible.Sorted()
	result.Policy = agg.Policy
	result.OwnerOnly = agg.Policy == domain.DataScopeSelf
	result.IncludeOwn = agg.HasSelf && agg.Policy != domain.DataScopeAll
	return result, agg, nil
}

// Snapshot bundles an immutable view of departments, roles and menus so many
// users can be resolved against one index. It is safe for concurrent use.
type Snapshot struct {
	index *TreeIndex
	roles map[int64]domain.Role
	menus []domain.Menu
	byID  map[int64]domain.Menu
}

// NewSnapshot builds the index and lookups. It fails with ErrCycleDetected
// when the department hierarchy is malformed.
func NewSnapshot(depts []domain.Department, roles []domain.Role, menus []domain.Menu) (*Snapshot, error) {
	index, err := BuildTreeIndex(depts)
	if err != nil {
		return nil, err
	}

	s := &Snapshot{
		index: index,
		roles: make(map[int64]domain.Role, len(roles)),
		menus: slices.Clone(menus),
		byID:  make(map[int64]domain.Menu, len(menus)),
	}
	for _, r := range roles {
		s.roles[r.ID] = r
	}
	for _, m := range menus {
		s.byID[m.ID] = m
	}
	return s, nil
}

func (s *Snapshot) Index() *TreeIndex { return s.index }

func (s *Snapshot) Role(id int64) (domain.Role, bool) {
	r, ok := s.roles[id]
	return r, ok
}

func (s *Snapshot) Menu(id int64) (domain.Menu, bool) {
	m, ok := s.byID[id]
	return m, ok
}

// Menus returns the flat menu table of the snapshot.
func (s *Snapshot) Menus() []domain.Menu { return s.menus }

// Resolve computes the access result for user against this snapshot.
func (s *Snapshot) Resolve(user domain.User) (AccessResult, error) {
	result, _, err := resolveWithIndex(user, s.Role, s.Menu, s.index)
	return result, err
}

// Explain is Resolve plus the role aggregation the result was derived from.
func (s *Snapshot) Explain(user domain.User) (AccessResult, AggregatedAccess, error) {
	return resolveWithIndex(user, s.Role, s.Menu, s.index)
}

// MenuTree returns the navigation forest filtered by the granted codes.
func (s *Snapshot) MenuTree(granted CodeSet) []MenuNode {
	return BuildMenuTree(s.menus, granted)
}
