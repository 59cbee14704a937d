package gridgraph

import "github.com/zyedidia/generic/queue"

// ComponentLabels labels every free cell with the index of its 4-connected
// component; blocked cells get -1. Labels are assigned in row-major order of
// each component's first cell, so they are stable for a given grid.
//
// Time:   O(N²·4).
// Memory: O(N²) for labels and the flood-fill queue.
func (g *Grid) ComponentLabels() (labels []int, count int) {
	labels = make([]int, len(g.blocked))
	for i := range labels {
		labels[i] = -1
	}

	for i0, b := range g.blocked {
		if b || labels[i0] >= 0 {
			continue
		}
		// flood fill one component
		q := queue.New[int]()
		q.Enqueue(i0)
		labels[i0] = count
		for !q.Empty() {
			u := g.CellAt(q.Dequeue())
			for _, d := range Conn4 {
				v := u.Add(d)
				if !g.IsFree(v) {
					continue
				}
				if vi := g.Index(v); labels[vi] < 0 {
					labels[vi] = count
					q.Enqueue(vi)
				}
			}
		}
		count++
	}
	return labels, count
}

// ConnectedComponents groups free cells into 4-connected regions.
// Each component lists its cells in row-major order.
//
// Time:   O(N²·4), Memory: O(N²).
func (g *Grid) ConnectedComponents() [][]Cell {
	labels, count := g.ComponentLabels()
	comps := make([][]Cell, count)
	for i, l := range labels {
		if l >= 0 {
			comps[l] = append(comps[l], g.CellAt(i))
		}
	}
	return comps
}

// Reachable reports whether a and b are free and in the same component.
// It is a cheap pre-check before running a full search.
func (g *Grid) Reachable(a, b Cell) bool {
	if !g.IsFree(a) || !g.IsFree(b) {
		return false
	}
	labels, _ := g.ComponentLabels()
	return labels[g.Index(a)] == labels[g.Index(b)]
}
