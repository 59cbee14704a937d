// Package bfs provides breadth-first shortest-path search over a gridgraph.Grid.
//
// What
//
//   - FIFO frontier seeded with the start cell.
//   - Each dequeued cell is compared with the goal before expansion; the
//     first time the goal is dequeued its path is reconstructed and the
//     search stops. BFS explores in non-decreasing distance order, so this
//     path has the minimum number of steps.
//   - Cells are marked visited when enqueued, never enqueued twice.
//   - Returns a route.Result: Found, Path (start…goal) and Visited (every
//     discovered cell).
//   - Hooks: OnEnqueue, OnDequeue. Optional MaxDepth limit.
//
// Determinism
//
//	Neighbors are expanded in gridgraph.Conn4 order (up, down, left, right),
//	so identical grid/start/goal always produce the identical path.
//
// Complexity (N×N grid)
//
//   - Time:   O(N²)   (each cell enqueued at most once, four neighbors each)
//   - Memory: O(N²)   (queue, visited set, parent table)
//
// Usage
//
//	res, err := bfs.Search(g, start, goal)
//	if err != nil {
//	    // ErrGridNil, ErrOptionViolation, gridgraph.ErrInvalidEndpoint
//	}
//	if !res.Found {
//	    // goal unreachable; res.Visited shows how far the search got
//	}
//
// Options
//
//   - WithOnEnqueue(fn):  hook when a cell is discovered.
//   - WithOnDequeue(fn):  hook before the goal test.
//   - WithMaxDepth(d):    never enqueue cells more than d steps away (d>0).
//
// Errors
//
//   - ErrGridNil                      if the grid pointer is nil.
//   - ErrOptionViolation              if an Option is invalid (negative MaxDepth).
//   - gridgraph.ErrInvalidEndpoint    if start or goal is out of bounds or blocked.
//   - route.ErrReconstructionInconsistency (wrapped) on a broken parent chain.
package bfs
