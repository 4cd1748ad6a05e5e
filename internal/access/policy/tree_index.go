package policy

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/aussiebroadwan/access/internal/access/domain"
)

// TreeIndex is an immutable adjacency index over a department snapshot. It is
// safe for concurrent readers once built.
type TreeIndex struct {
	depts    map[int64]domain.Department
	children map[int64][]int64
	roots    []int64
}

// BuildTreeIndex indexes the departments and verifies the parent links form a
// forest. A department whose parent is 0 or absent from the snapshot is a
// root. When an ID appears more than once the first occurrence wins.
func BuildTreeIndex(depts []domain.Department) (*TreeIndex, error) {
	idx := &TreeIndex{
		depts:    make(map[int64]domain.Department, len(depts)),
		children: make(map[int64][]int64),
	}

	order := make([]int64, 0, len(depts))
	for _, d := range depts {
		if _, dup := idx.depts[d.ID]; dup {
			continue
		}
		idx.depts[d.ID] = d
		order = append(order, d.ID)
	}

	if err := idx.checkAcyclic(order); err != nil {
		return nil, err
	}

	for _, id := range order {
		if parent, ok := idx.parentOf(id); ok {
			idx.children[parent] = append(idx.children[parent], id)
		} else {
			idx.roots = append(idx.roots, id)
		}
	}

	idx.sortSiblings(idx.roots)
	for _, kids := range idx.children {
		idx.sortSiblings(kids)
	}

	return idx, nil
}

// parentOf returns the parent of id when it is a real, indexed department.
func (t *TreeIndex) parentOf(id int64) (int64, bool) {
	d := t.depts[id]
	if d.ParentID == domain.RootParentID {
		return 0, false
	}
	if _, ok := t.depts[d.ParentID]; !ok {
		return 0, false
	}
	return d.ParentID, true
}

// checkAcyclic walks every parent chain once. A chain longer than the number
// of departments, or one that re-enters itself, is a cycle.
func (t *TreeIndex) checkAcyclic(order []int64) error {
	const (
		unvisited = iota
		visiting
		done
	)

	state := make(map[int64]int, len(order))
	limit := len(order)

	for _, start := range order {
		if state[start] == done {
			continue
		}

		var path []int64
		cur := start
		for hops := 0; ; hops++ {
			if state[cur] == done {
				break
			}
			if state[cur] == visiting || hops > limit {
				return fmt.Errorf("%w: department %d", ErrCycleDetected, cur)
			}
			state[cur] = visiting
			path = append(path, cur)

			parent, ok := t.parentOf(cur)
			if !ok {
				break
			}
			cur = parent
		}

		for _, id := range path {
			state[id] = done
		}
	}

	return nil
}

func (t *TreeIndex) sortSiblings(ids []int64) {
	slices.SortFunc(ids, func(a, b int64) int {
		if c := cmp.Compare(t.depts[a].Order, t.depts[b].Order); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
}

// Exists reports whether the department is part of the snapshot.
func (t *TreeIndex) Exists(id int64) bool {
	_, ok := t.depts[id]
	return ok
}

// Get returns the indexed department.
func (t *TreeIndex) Get(id int64) (domain.Department, bool) {
	d, ok := t.depts[id]
	return d, ok
}

func (t *TreeIndex) Len() int { return len(t.depts) }

// All returns every department ID in the snapshot, disabled ones included.
func (t *TreeIndex) All() IDSet {
	out := make(IDSet, len(t.depts))
	for id := range t.depts {
		out.Add(id)
	}
	return out
}

// Roots returns the top level departments in display order.
func (t *TreeIndex) Roots() []int64 { return slices.Clone(t.roots) }

// Children returns the direct children of id in display order.
func (t *TreeIndex) Children(id int64) []int64 { return slices.Clone(t.children[id]) }

// DescendantsOf returns id and all of its transitive children. An unknown id
// yields an empty set.
func (t *TreeIndex) DescendantsOf(id int64) IDSet {
	out := NewSet[int64]()
	if !t.Exists(id) {
		return out
	}

	queue := []int64{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		out.Add(cur)
		queue = append(queue, t.children[cur]...)
	}
	return out
}

// AncestorsOf returns the chain of parents from the nearest up to the root.
func (t *TreeIndex) AncestorsOf(id int64) []int64 {
	var out []int64
	cur := id
	for {
		parent, ok := t.parentOf(cur)
		if !ok {
			return out
		}
		out = append(out, parent)
		cur = parent
	}
}
