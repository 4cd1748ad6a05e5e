package policy

import "strings"

// RowFilter restricts queries over department-partitioned rows.
type RowFilter struct {
	Unrestricted bool
	DeptIDs      []int64
	OwnerID      int64 // zero when owned rows are not granted
}

// RowFilter derives the row restriction for this result.
func (r AccessResult) RowFilter() RowFilter {
	if r.Unrestricted() {
		return RowFilter{Unrestricted: true}
	}
	f := RowFilter{DeptIDs: r.VisibleDeptIDs}
	if r.OwnerOnly || r.IncludeOwn {
		f.OwnerID = r.UserID
	}
	return f
}

// Allows checks a single row.
func (f RowFilter) Allows(deptID, ownerID int64) bool {
	if f.Unrestricted {
		return true
	}
	if f.OwnerID != 0 && ownerID == f.OwnerID {
		return true
	}
	for _, id := range f.DeptIDs {
		if id == deptID {
			return true
		}
	}
	return false
}

// SQL renders a parameterised predicate over the given columns. Column names
// must be trusted identifiers. An unrestricted filter renders an empty clause.
func (f RowFilter) SQL(deptColumn, ownerColumn string) (string, []any) {
	if f.Unrestricted {
		return "", nil
	}

	var (
		parts []string
		args  []any
	)
	if len(f.DeptIDs) > 0 {
		marks := make([]string, len(f.DeptIDs))
		for i, id := range f.DeptIDs {
			marks[i] = "?"
			args = append(args, id)
		}
		parts = append(parts, deptColumn+" IN ("+strings.Join(marks, ", ")+")")
	}
	if f.OwnerID != 0 {
		parts = append(parts, ownerColumn+" = ?")
		args = append(args, f.OwnerID)
	}

	switch len(parts) {
	case 0:
		return "1 = 0", nil
	case 1:
		return parts[0], args
	default:
		return "(" + strings.Join(parts, " OR ") + ")", args
	}
}
