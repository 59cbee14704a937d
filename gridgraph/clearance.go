package gridgraph

import "container/list"

// MinClearance finds a route from a to b that crosses the fewest obstacles,
// answering “how many cells must be cleared to connect these two cells?”.
// Entering a free cell costs 0, entering a blocked cell costs 1; a itself
// counts if blocked. Returns the route (a…b inclusive) and the number of
// obstacles on it. A cost of 0 means a and b are already connected.
//
// Behavior:
//  1. Validate that both cells are in bounds (ErrInvalidEndpoint otherwise).
//  2. 0–1 BFS from a: free cells pushed to the front, obstacles to the back.
//  3. Stop when b is popped.
//  4. Reconstruct the route via predecessors.
//
// Complexity: O(N²) time, O(N²) memory for distance and prev pointers.
func (g *Grid) MinClearance(a, b Cell) (path []Cell, cost int, err error) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return nil, 0, ErrInvalidEndpoint
	}

	N := len(g.blocked)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, N)
	prev := make([]int, N)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	stepCost := func(i int) int {
		if g.blocked[i] {
			return 1
		}
		return 0
	}

	src, dst := g.Index(a), g.Index(b)
	dist[src] = stepCost(src)
	dq := list.New()
	dq.PushFront(src)
	done := make([]bool, N)
	target := -1

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == dst {
			target = u
			break
		}
		uc := g.CellAt(u)
		for _, d := range Conn4 {
			vc := uc.Add(d)
			if !g.InBounds(vc) {
				continue
			}
			v := g.Index(vc)
			step := stepCost(v)
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, g.CellAt(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[target], nil
}
