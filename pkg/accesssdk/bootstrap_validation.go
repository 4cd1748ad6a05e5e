package accesssdk

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	requiredReason = "required"
	keyReason      = "must only contain a-z, A-Z, 0-9, _ or -"
)

var (
	reKey        = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	reUsername   = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	rePermission = regexp.MustCompile(`^[a-z][a-z0-9_-]*(:[a-z][a-z0-9_-]*)+$`)
	menuTypes    = map[string]bool{"directory": true, "menu": true, "button": true}
	dataScopes   = map[string]bool{"all": true, "dept": true, "dept_and_below": true, "self": true, "custom": true}
)

// Validate checks the shape of a bootstrap request: keys are well formed and
// unique, references resolve, and the admin user exists.
// Returns a map of field names to error messages, or nil if all fields are valid.
func (b BootstrapRequest) Validate() map[string]string {
	errs := make(map[string]string)

	depts := b.validateDepartments(errs)
	menus := b.validateMenus(errs)
	roles := b.validateRoles(errs, depts, menus)
	b.validateUsers(errs, depts, roles)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateKey(errs map[string]string, field, key string, seen map[string]bool) {
	switch {
	case key == "":
		errs[field] = requiredReason
	case !reKey.MatchString(key):
		errs[field] = keyReason
	case seen[key]:
		errs[field] = "duplicate key"
	default:
		seen[key] = true
	}
}

func (b BootstrapRequest) validateDepartments(errs map[string]string) map[string]bool {
	keys := make(map[string]bool, len(b.Departments))
	for i, d := range b.Departments {
		validateKey(errs, fmt.Sprintf("departments[%d].key", i), d.Key, keys)
		if strings.TrimSpace(d.Name) == "" {
			errs[fmt.Sprintf("departments[%d].name", i)] = requiredReason
		}
	}
	for i, d := range b.Departments {
		if d.Parent != "" && !keys[d.Parent] {
			errs[fmt.Sprintf("departments[%d].parent", i)] = fmt.Sprintf("unknown department %q", d.Parent)
		}
	}
	return keys
}

func (b BootstrapRequest) validateMenus(errs map[string]string) map[string]bool {
	keys := make(map[string]bool, len(b.Menus))
	for i, m := range b.Menus {
		validateKey(errs, fmt.Sprintf("menus[%d].key", i), m.Key, keys)
		if strings.TrimSpace(m.Name) == "" {
			errs[fmt.Sprintf("menus[%d].name", i)] = requiredReason
		}
		if !menuTypes[m.Type] {
			errs[fmt.Sprintf("menus[%d].type", i)] = "must be directory, menu or button"
		}
		if m.Permission != "" && !rePermission.MatchString(m.Permission) {
			errs[fmt.Sprintf("menus[%d].permission", i)] = fmt.Sprintf("invalid permission: %q", m.Permission)
		}
	}
	for i, m := range b.Menus {
		if m.Parent != "" && !keys[m.Parent] {
			errs[fmt.Sprintf("menus[%d].parent", i)] = fmt.Sprintf("unknown menu %q", m.Parent)
		}
	}
	return keys
}

func (b BootstrapRequest) validateRoles(errs map[string]string, depts, menus map[string]bool) map[string]bool {
	codes := make(map[string]bool, len(b.Roles))
	hasAdmin := false
	for i, r := range b.Roles {
		validateKey(errs, fmt.Sprintf("roles[%d].code", i), r.Code, codes)
		if r.Code == "admin" {
			hasAdmin = true
		}
		if strings.TrimSpace(r.Name) == "" {
			errs[fmt.Sprintf("roles[%d].name", i)] = requiredReason
		}
		if !dataScopes[r.DataScope] {
			errs[fmt.Sprintf("roles[%d].data_scope", i)] = "must be all, dept, dept_and_below, self or custom"
		}
		for _, m := range r.Menus {
			if m != "*" && !menus[m] {
				errs[fmt.Sprintf("roles[%d].menus", i)] = fmt.Sprintf("unknown menu %q", m)
				break
			}
		}
		for _, d := range r.Departments {
			if !depts[d] {
				errs[fmt.Sprintf("roles[%d].departments", i)] = fmt.Sprintf("unknown department %q", d)
				break
			}
		}
	}
	if !hasAdmin {
		errs["roles"] = "must include 'admin' role"
	}
	return codes
}

func (b BootstrapRequest) validateUsers(errs map[string]string, depts, roles map[string]bool) {
	if len(b.Users) == 0 {
		errs["users"] = "at least one user required"
		return
	}
	names := make(map[string]bool, len(b.Users))
	for i, u := range b.Users {
		field := fmt.Sprintf("users[%d]", i)
		switch {
		case len(u.Username) < 3 || len(u.Username) > 50:
			errs[field+".username"] = "must be 3-50 characters"
		case !reUsername.MatchString(u.Username):
			errs[field+".username"] = "must only contain a-z, A-Z, 0-9 or _"
		case names[u.Username]:
			errs[field+".username"] = "duplicate username"
		default:
			names[u.Username] = true
		}
		if len(u.Password) < 6 || len(u.Password) > 100 {
			errs[field+".password"] = "must be 6-100 characters"
		}
		if u.Department != "" && !depts[u.Department] {
			errs[field+".department"] = fmt.Sprintf("unknown department %q", u.Department)
		}
		for _, r := range u.Roles {
			if !roles[r] {
				errs[field+".roles"] = fmt.Sprintf("unknown role %q", r)
				break
			}
		}
	}
}
