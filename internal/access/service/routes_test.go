package service

import (
	"testing"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/policy"
	"github.com/stretchr/testify/require"
)

func TestRouteName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		id   int64
		want string
	}{
		{"/system", 1, "System"},
		{"/system/user", 2, "SystemUser"},
		{"/system/dept-user", 3, "SystemDeptUser"},
		{"dashboard", 4, "Dashboard"},
		{"", 5, "Menu5"},
		{"/", 6, "Menu6"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, routeName(domain.Menu{ID: tt.id, Path: tt.path}))
		})
	}
}

func TestBuildRoutes(t *testing.T) {
	t.Parallel()

	node := func(m domain.Menu, children ...policy.MenuNode) policy.MenuNode {
		return policy.MenuNode{Menu: m, Children: children}
	}

	tree := []policy.MenuNode{
		node(domain.Menu{ID: 1, Name: "System", Type: domain.MenuTypeDirectory, Path: "/system", Icon: "setting", Order: 1, Visible: true},
			node(domain.Menu{ID: 2, ParentID: 1, Name: "Users", Type: domain.MenuTypeMenu, Path: "/system/user", Component: "system/user/index", PermissionCode: "sys:user:list", Visible: true, KeepAlive: true},
				node(domain.Menu{ID: 3, ParentID: 2, Name: "Add", Type: domain.MenuTypeButton, PermissionCode: "sys:user:add"}),
			),
			node(domain.Menu{ID: 4, ParentID: 1, Name: "Hidden", Type: domain.MenuTypeMenu, Component: "/hidden"}),
		),
		node(domain.Menu{ID: 5, Name: "Empty", Type: domain.MenuTypeDirectory}),
	}

	routes := BuildRoutes(tree)
	require.Len(t, routes, 2)

	system := routes[0]
	require.Equal(t, "System", system.Name)
	require.Equal(t, LayoutComponent, system.Component)
	require.Equal(t, "/system/user", system.Redirect)
	require.Equal(t, "setting", system.Meta.Icon)
	require.Nil(t, system.Meta.Authority)
	require.Len(t, system.Children, 2)

	users := system.Children[0]
	require.Equal(t, "/system/user/index", users.Component)
	require.Equal(t, []string{"sys:user:list"}, users.Meta.Authority)
	require.True(t, users.Meta.KeepAlive)
	require.False(t, users.Meta.HideInMenu)
	require.Empty(t, users.Children)
	require.Empty(t, users.Redirect)

	hidden := system.Children[1]
	require.Equal(t, "Menu4", hidden.Name)
	require.Equal(t, "/4", hidden.Path)
	require.Equal(t, "/hidden", hidden.Component)
	require.True(t, hidden.Meta.HideInMenu)

	empty := routes[1]
	require.Equal(t, "/5", empty.Path)
	require.Empty(t, empty.Redirect)
	require.Equal(t, LayoutComponent, empty.Component)
}
