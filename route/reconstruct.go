package route

import (
	"fmt"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// Reconstruct walks parent links from goal back to start and returns the
// path start…goal. start == goal yields the single-cell path.
//
// A cell without a recorded parent that is not start, or a chain longer
// than the table (a cycle), yields ErrReconstructionInconsistency and a
// nil path. Searches only call Reconstruct after reaching the goal, so this
// error always indicates a bookkeeping defect rather than bad input.
//
// Complexity: O(L) time and memory, L = path length.
func Reconstruct(p *Parents, start, goal gridgraph.Cell) (Path, error) {
	path := Path{goal}
	for cur := goal; cur != start; {
		prev, ok := p.Get(cur)
		if !ok {
			return nil, fmt.Errorf("%w: %v has no parent", ErrReconstructionInconsistency, cur)
		}
		if len(path) > p.Len() {
			return nil, fmt.Errorf("%w: cycle detected at %v", ErrReconstructionInconsistency, cur)
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
