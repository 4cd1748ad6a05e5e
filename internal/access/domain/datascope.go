package domain

import (
	"fmt"
	"strings"
)

// DataScope is the row-visibility policy carried by a role. The numeric values
// are persisted and exchanged over the API, so they must not be renumbered.
type DataScope int

const (
	DataScopeAll          DataScope = 1
	DataScopeDept         DataScope = 2
	DataScopeDeptAndBelow DataScope = 3
	DataScopeSelf         DataScope = 4
	DataScopeCustom       DataScope = 5
)

// DataScopes lists every valid policy, least restrictive first.
var DataScopes = []DataScope{
	DataScopeAll,
	DataScopeDeptAndBelow,
	DataScopeDept,
	DataScopeCustom,
	DataScopeSelf,
}

func (d DataScope) Valid() bool {
	switch d {
	case DataScopeAll, DataScopeDept, DataScopeDeptAndBelow, DataScopeSelf, DataScopeCustom:
		return true
	default:
		return false
	}
}

func (d DataScope) String() string {
	switch d {
	case DataScopeAll:
		return "all"
	case DataScopeDept:
		return "dept"
	case DataScopeDeptAndBelow:
		return "dept_and_below"
	case DataScopeSelf:
		return "self"
	case DataScopeCustom:
		return "custom"
	default:
		return fmt.Sprintf("unknown(%d)", int(d))
	}
}

// Description is the human readable label shown in admin screens.
func (d DataScope) Description() string {
	switch d {
	case DataScopeAll:
		return "All data"
	case DataScopeDept:
		return "Own department only"
	case DataScopeDeptAndBelow:
		return "Own department and sub-departments"
	case DataScopeSelf:
		return "Own records only"
	case DataScopeCustom:
		return "Custom departments"
	default:
		return "Unknown"
	}
}

// ParseDataScope accepts either the numeric code or the string name.
func ParseDataScope(s string) (DataScope, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range DataScopes {
		if s == d.String() || s == fmt.Sprint(int(d)) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("domain: unknown data scope %q", s)
}
