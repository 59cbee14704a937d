// Package gridgraph models a square occupancy grid as an implicit graph
// for shortest-path searches.
//
// What:
//
//   - Grid is an N×N table of blocked/free flags, immutable once built.
//   - Cell is a 0-indexed (Row, Col) coordinate, compared by value.
//   - Neighbors are the four axis-aligned cells in a fixed order
//     (up, down, left, right), so every search over a Grid is reproducible.
//   - Obstacle edits (WithObstacle, WithObstacles) return a new Grid; the
//     original is never mutated.
//   - Random generates seeded maps with a target obstacle density.
//   - ConnectedComponents and MinClearance are diagnostics over free cells.
//
// Why:
//
//   - Searches read the grid concurrently without locks because nothing
//     writes to it after construction.
//   - Replacing the grid wholesale makes the “all prior paths are stale”
//     moment explicit for the caller.
//
// Complexity:
//
//   - IsFree, InBounds, Index, CellAt: O(1).
//   - FromBlocked, FromValues, Clone, WithObstacle: O(N²) time and memory.
//   - ConnectedComponents, MinClearance: O(N²) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonSquare: rows differ in length or the table is not N×N.
//   - ErrBadDimension: requested dimension is < 1.
//   - ErrBadDensity: obstacle density outside [0,1].
//   - ErrInvalidEndpoint: a query endpoint is out of bounds or blocked.
//   - ErrNoPath: MinClearance found no route (only possible for
//     out-of-bounds endpoints).
package gridgraph
