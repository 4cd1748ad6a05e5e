package service

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/policy"
	"github.com/aussiebroadwan/access/pkg/accesssdk"
)

// LayoutComponent is the component every directory route renders with.
const LayoutComponent = "BasicLayout"

// Routes returns the user's menu tree shaped as UI routes.
func (s *AccessService) Routes(ctx context.Context, userID int64) ([]accesssdk.Route, error) {
	menus, err := s.Menus(ctx, userID)
	if err != nil {
		return nil, err
	}
	return BuildRoutes(menus), nil
}

// BuildRoutes converts a menu forest into routes. Buttons carry no route and
// are skipped with their subtrees.
func BuildRoutes(nodes []policy.MenuNode) []accesssdk.Route {
	routes := make([]accesssdk.Route, 0, len(nodes))
	for _, n := range nodes {
		if n.Type == domain.MenuTypeButton {
			continue
		}
		routes = append(routes, buildRoute(n))
	}
	return routes
}

func buildRoute(n policy.MenuNode) accesssdk.Route {
	path := n.Path
	if path == "" {
		path = "/" + strconv.FormatInt(n.ID, 10)
	}

	r := accesssdk.Route{
		Name: routeName(n.Menu),
		Path: path,
		Meta: accesssdk.RouteMeta{
			Title:      n.Name,
			Icon:       n.Icon,
			Order:      n.Order,
			HideInMenu: !n.Visible,
			KeepAlive:  n.KeepAlive,
		},
	}
	if n.PermissionCode != "" {
		r.Meta.Authority = []string{n.PermissionCode}
	}

	switch n.Type {
	case domain.MenuTypeDirectory:
		r.Component = LayoutComponent
	case domain.MenuTypeMenu:
		if n.Component != "" {
			r.Component = "/" + strings.TrimPrefix(n.Component, "/")
		}
	}

	if children := BuildRoutes(n.Children); len(children) > 0 {
		r.Children = children
		if n.Type == domain.MenuTypeDirectory {
			r.Redirect = children[0].Path
		}
	}
	return r
}

// routeName turns "/system/dept-user" into "SystemDeptUser". Menus without a
// path are named after their id.
func routeName(m domain.Menu) string {
	path := strings.TrimPrefix(m.Path, "/")
	if path == "" {
		return "Menu" + strconv.FormatInt(m.ID, 10)
	}

	var b strings.Builder
	upper := true
	for _, r := range path {
		if r == '/' || r == '-' {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
