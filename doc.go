// Package gridroute finds shortest routes across N×N occupancy grids.
//
// What is gridroute?
//
//	A small, deterministic pathfinding toolkit for 4-connected grids:
//		• Grid model: immutable occupancy table, random maps, obstacle edits
//		• Searches: breadth-first (FIFO) and A* (Manhattan heuristic)
//		• Routes: parent-pointer reconstruction, validation, turning points
//		• Alternates: detours forced through a randomly sampled waypoint
//		• Sessions: a registry of computed routes, cleared when the map changes
//
// Packages:
//
//	gridgraph/:     Cell, Grid, neighbor order, generation, components, clearance
//	route/:         Path, Result, parent table, reconstruction
//	bfs/:           breadth-first search
//	astar/:         A* search
//	planner/:       waypoint-constrained alternate routes
//	registry/:      1-based path registry
//	session/:       grid + registry + sampler owned by one caller
//	pathio/:        CSV export/import of paths and obstacle logs
//	cmd/gridroute:  terminal front end
//
// Quick ASCII example (# = obstacle):
//
//	S . . . .
//	. . . . .
//	# # # # .
//	. . . . .
//	G . . . .
//
// The only route from S to G passes the gap at (2,4):
//
//	g, _ := gridgraph.Parse(".....\n.....\n####.\n.....\n.....")
//	res, _ := astar.Search(g, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 4, Col: 0})
//	fmt.Println(res.Path.Steps()) // 12
//
// Determinism: neighbors are always expanded up, down, left, right and A*
// breaks f ties by h then insertion order, so identical inputs give
// identical routes. Random maps and waypoints are seeded.
//
// Cells are 0-indexed (row, col) throughout.
package gridroute
