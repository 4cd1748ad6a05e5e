package policy_test

import (
	"testing"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/policy"
	"github.com/stretchr/testify/require"
)

func menuOf(id, parent int64, typ domain.MenuType, code string, order int) domain.Menu {
	return domain.Menu{
		ID: id, ParentID: parent, Name: "m", Type: typ, PermissionCode: code,
		Order: order, Status: domain.StatusEnabled, Visible: true,
	}
}

func ids(nodes []policy.MenuNode) []int64 {
	var out []int64
	policy.Walk(nodes, func(n policy.MenuNode, _ int) { out = append(out, n.ID) })
	return out
}

func TestBuildMenuTree(t *testing.T) {
	t.Run("directory is pruned with its only leaf", func(t *testing.T) {
		menus := []domain.Menu{
			menuOf(1, 0, domain.MenuTypeDirectory, "", 0),
			menuOf(2, 1, domain.MenuTypeButton, "report:export", 0),
		}
		require.Empty(t, policy.BuildMenuTree(menus, policy.NewSet[string]()))

		tree := policy.BuildMenuTree(menus, policy.NewSet("report:export"))
		require.Equal(t, []int64{1, 2}, ids(tree))
	})

	t.Run("ancestors of a retained leaf are retained", func(t *testing.T) {
		menus := []domain.Menu{
			menuOf(1, 0, domain.MenuTypeDirectory, "", 0),
			menuOf(2, 1, domain.MenuTypeMenu, "sys:user:list", 0),
			menuOf(3, 2, domain.MenuTypeButton, "sys:user:add", 0),
			menuOf(4, 2, domain.MenuTypeButton, "sys:user:delete", 1),
		}
		tree := policy.BuildMenuTree(menus, policy.NewSet("sys:user:add"))
		require.Equal(t, []int64{1, 2, 3}, ids(tree))
	})

	t.Run("ungated menu stands alone but empty directory does not", func(t *testing.T) {
		menus := []domain.Menu{
			menuOf(1, 0, domain.MenuTypeMenu, "", 0),
			menuOf(2, 0, domain.MenuTypeDirectory, "", 1),
			menuOf(3, 0, domain.MenuTypeDirectory, "sys:dir", 2),
		}
		require.Equal(t, []int64{1}, ids(policy.BuildMenuTree(menus, nil)))
		require.Equal(t, []int64{1, 3}, ids(policy.BuildMenuTree(menus, policy.NewSet("sys:dir"))))
	})

	t.Run("disabled node removes its subtree", func(t *testing.T) {
		dir := menuOf(1, 0, domain.MenuTypeDirectory, "", 0)
		dir.Status = domain.StatusDisabled
		menus := []domain.Menu{dir, menuOf(2, 1, domain.MenuTypeMenu, "", 0)}
		require.Empty(t, policy.BuildMenuTree(menus, nil))
	})

	t.Run("siblings sorted by order then id", func(t *testing.T) {
		menus := []domain.Menu{
			menuOf(5, 0, domain.MenuTypeMenu, "", 2),
			menuOf(3, 0, domain.MenuTypeMenu, "", 1),
			menuOf(4, 0, domain.MenuTypeMenu, "", 1),
		}
		require.Equal(t, []int64{3, 4, 5}, ids(policy.BuildMenuTree(menus, nil)))
	})

	t.Run("orphans become roots and cycles are dropped", func(t *testing.T) {
		menus := []domain.Menu{
			menuOf(1, 99, domain.MenuTypeMenu, "", 0),
			menuOf(2, 3, domain.MenuTypeMenu, "", 0),
			menuOf(3, 2, domain.MenuTypeMenu, "", 0),
		}
		require.Equal(t, []int64{1}, ids(policy.BuildMenuTree(menus, nil)))
	})

	t.Run("every retained node has a retained parent", func(t *testing.T) {
		menus := []domain.Menu{
			menuOf(1, 0, domain.MenuTypeDirectory, "", 0),
			menuOf(2, 1, domain.MenuTypeDirectory, "", 0),
			menuOf(3, 2, domain.MenuTypeMenu, "x:a", 0),
			menuOf(4, 2, domain.MenuTypeMenu, "x:b", 1),
			menuOf(5, 1, domain.MenuTypeMenu, "x:c", 1),
			menuOf(6, 0, domain.MenuTypeMenu, "x:d", 1),
		}
		for _, granted := range [][]string{{"x:a"}, {"x:b", "x:d"}, {"x:c"}, {}} {
			tree := policy.BuildMenuTree(menus, policy.NewSet(granted...))
			kept := policy.NewSet(ids(tree)...)
			for _, m := range menus {
				if kept.Has(m.ID) && m.ParentID != 0 {
					require.True(t, kept.Has(m.ParentID), "menu %d kept without parent", m.ID)
				}
			}
		}
	})
}

func TestBuildFullMenuTree(t *testing.T) {
	disabled := menuOf(2, 1, domain.MenuTypeMenu, "x:y", 0)
	disabled.Status = domain.StatusDisabled
	menus := []domain.Menu{menuOf(1, 0, domain.MenuTypeDirectory, "", 0), disabled}
	require.Equal(t, []int64{1, 2}, ids(policy.BuildFullMenuTree(menus)))
}
