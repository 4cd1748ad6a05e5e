package http

import (
	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/policy"
	"github.com/aussiebroadwan/access/internal/access/service"
	"github.com/aussiebroadwan/access/pkg/accesssdk"
)

func toSDKDepartment(d domain.Department) accesssdk.Department {
	return accesssdk.Department{
		ID:        d.ID,
		ParentID:  d.ParentID,
		Name:      d.Name,
		Leader:    d.Leader,
		Phone:     d.Phone,
		Order:     d.Order,
		Status:    int(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toSDKDepartmentTree(nodes []service.DepartmentNode) []accesssdk.DepartmentNode {
	out := make([]accesssdk.DepartmentNode, len(nodes))
	for i, n := range nodes {
		out[i] = accesssdk.DepartmentNode{
			Department: toSDKDepartment(n.Department),
			Children:   toSDKDepartmentTree(n.Children),
		}
	}
	return out
}

func toSDKMenu(m domain.Menu) accesssdk.Menu {
	return accesssdk.Menu{
		ID:         m.ID,
		ParentID:   m.ParentID,
		Name:       m.Name,
		Type:       int(m.Type),
		Path:       m.Path,
		Component:  m.Component,
		Permission: m.PermissionCode,
		Icon:       m.Icon,
		Order:      m.Order,
		Status:     int(m.Status),
		Visible:    m.Visible,
		KeepAlive:  m.KeepAlive,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func toSDKMenuTree(nodes []policy.MenuNode) []accesssdk.MenuNode {
	out := make([]accesssdk.MenuNode, len(nodes))
	for i, n := range nodes {
		out[i] = accesssdk.MenuNode{
			Menu:     toSDKMenu(n.Menu),
			Children: toSDKMenuTree(n.Children),
		}
	}
	return out
}

func toSDKRole(r domain.Role) accesssdk.Role {
	return accesssdk.Role{
		ID:        r.ID,
		Name:      r.Name,
		Code:      r.Code,
		DataScope: int(r.DataScope),
		Order:     r.Order,
		Status:    int(r.Status),
		Remark:    r.Remark,
		MenuIDs:   nonNil(r.MenuIDs),
		DeptIDs:   nonNil(r.DeptIDs),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toSDKUser(u domain.User) accesssdk.User {
	return accesssdk.User{
		ID:        u.ID,
		Username:  u.Username,
		RealName:  u.RealName,
		Phone:     u.Phone,
		Email:     u.Email,
		DeptID:    u.DeptID,
		RoleIDs:   nonNil(u.RoleIDs),
		Status:    int(u.Status),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toSDKRecord(r domain.Record) accesssdk.Record {
	return accesssdk.Record{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		DeptID:    r.DeptID,
		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toSDKAccess(r policy.AccessResult) accesssdk.AccessResponse {
	out := accesssdk.AccessResponse{
		UserID:         r.UserID,
		Permissions:    nonNil(r.PermissionCodes),
		VisibleDeptIDs: nonNil(r.VisibleDeptIDs),
		OwnerOnly:      r.OwnerOnly,
		IncludeOwn:     r.IncludeOwn,
	}
	if r.Policy.Valid() {
		out.DataScope = r.Policy.String()
	}
	return out
}

func toSDKScope(s service.ScopeInfo) accesssdk.ScopeInfo {
	return accesssdk.ScopeInfo{
		DataScope:      int(s.Result.Policy),
		DataScopeName:  s.Result.Policy.String(),
		Description:    s.Result.Policy.Description(),
		UserID:         s.Result.UserID,
		DeptID:         s.DeptID,
		CustomDeptIDs:  nonNil(s.CustomDeptIDs),
		VisibleDeptIDs: nonNil(s.Result.VisibleDeptIDs),
	}
}

func toDomainSeed(req accesssdk.BootstrapRequest) domain.Seed {
	seed := domain.Seed{
		Departments: make([]domain.SeedDepartment, len(req.Departments)),
		Menus:       make([]domain.SeedMenu, len(req.Menus)),
		Roles:       make([]domain.SeedRole, len(req.Roles)),
		Users:       make([]domain.SeedUser, len(req.Users)),
	}
	for i, d := range req.Departments {
		seed.Departments[i] = domain.SeedDepartment(d)
	}
	for i, m := range req.Menus {
		seed.Menus[i] = domain.SeedMenu(m)
	}
	for i, r := range req.Roles {
		seed.Roles[i] = domain.SeedRole(r)
	}
	for i, u := range req.Users {
		seed.Users[i] = domain.SeedUser(u)
	}
	return seed
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
