package policy

import (
	"cmp"
	"slices"

	"github.com/aussiebroadwan/access/internal/access/domain"
)

// MenuNode is one entry of a menu forest.
type MenuNode struct {
	domain.Menu
	Children []MenuNode
}

// BuildMenuTree assembles the navigation forest a user may see. Disabled
// nodes drop their whole subtree. A node is kept when it is allowed on its own
// or when any descendant is kept, so the path to a permitted leaf is never
// broken. Siblings are ordered by Order then ID.
func BuildMenuTree(menus []domain.Menu, granted CodeSet) []MenuNode {
	f := newMenuForest(menus)
	keep := func(m domain.Menu) bool { return selfAllowed(m, granted) }
	return f.build(f.roots, keep, true, make(map[int64]bool))
}

// BuildFullMenuTree assembles every menu, disabled ones included, for admin
// screens.
func BuildFullMenuTree(menus []domain.Menu) []MenuNode {
	f := newMenuForest(menus)
	keep := func(domain.Menu) bool { return true }
	return f.build(f.roots, keep, false, make(map[int64]bool))
}

// selfAllowed decides whether a node stands on its own merit. Directories only
// do so through an explicit, granted code; menus and buttons are allowed when
// ungated or granted.
func selfAllowed(m domain.Menu, granted CodeSet) bool {
	switch m.Type {
	case domain.MenuTypeDirectory:
		return m.PermissionCode != "" && granted.Has(m.PermissionCode)
	default:
		return m.PermissionCode == "" || granted.Has(m.PermissionCode)
	}
}

type menuForest struct {
	children map[int64][]domain.Menu
	roots    []domain.Menu
}

func newMenuForest(menus []domain.Menu) *menuForest {
	byID := make(map[int64]domain.Menu, len(menus))
	order := make([]int64, 0, len(menus))
	for _, m := range menus {
		if _, dup := byID[m.ID]; dup {
			continue
		}
		byID[m.ID] = m
		order = append(order, m.ID)
	}

	f := &menuForest{children: make(map[int64][]domain.Menu)}
	for _, id := range order {
		m := byID[id]
		if _, ok := byID[m.ParentID]; m.ParentID == domain.RootParentID || !ok {
			f.roots = append(f.roots, m)
			continue
		}
		f.children[m.ParentID] = append(f.children[m.ParentID], m)
	}

	sortMenus(f.roots)
	for _, kids := range f.children {
		sortMenus(kids)
	}
	return f
}

func sortMenus(ms []domain.Menu) {
	slices.SortFunc(ms, func(a, b domain.Menu) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// build recursively shapes siblings. visited guards against parent cycles in
// the menu table; nodes in a cycle are unreachable from any root anyway.
func (f *menuForest) build(
	siblings []domain.Menu,
	keep func(domain.Menu) bool,
	pruneDisabled bool,
	visited map[int64]bool,
) []MenuNode {
	out := make([]MenuNode, 0, len(siblings))
	for _, m := range siblings {
		if visited[m.ID] {
			continue
		}
		visited[m.ID] = true

		if pruneDisabled && !m.Status.Enabled() {
			continue
		}

		kids := f.build(f.children[m.ID], keep, pruneDisabled, visited)
		if len(kids) == 0 && !keep(m) {
			continue
		}
		out = append(out, MenuNode{Menu: m, Children: kids})
	}
	return out
}

// Walk visits every node depth first, parents before children.
func Walk(nodes []MenuNode, fn func(node MenuNode, depth int)) {
	var walk func([]MenuNode, int)
	walk = func(ns []MenuNode, depth int) {
		for _, n := range ns {
			fn(n, depth)
			walk(n.Children, depth+1)
		}
	}
	walk(nodes, 0)
}
