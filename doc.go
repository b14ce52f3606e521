// Package gridpath finds cheapest paths across 2D obstacle grids with
// Dijkstra's uniform-cost search.
//
// What is in the box?
//
//	• grid/      bounded Width×Height maps, obstacles, 4- or 8-connectivity
//	               and per-move costs (1.0 orthogonal, 1.4 or √2 diagonal)
//	• dijkstra/  the search engine: min-heap Frontier with FIFO tie-break,
//	               VisitedIndex with strict-improvement relaxation, path
//	               reconstruction, cancellation and a drop-oldest progress stream
//	• obstacle/  circles, rectangles and walls rasterized into blocked cells
//	• scenario/  a registry of ready-made maps (empty, circles, walls, maze)
//	• cmd/gridpath  CLI: `gridpath list`, `gridpath run <scenario>`
//
// Coordinates are 1-based: x in [1, Width], y in [1, Height].
//
// Quick ASCII example (4-connected, # blocked):
//
//	y=3  . . G
//	y=2  . # .
//	y=1  S . .
//	     x=1 2 3
//
//	S(1,1) → (2,1) → (3,1) → (3,2) → G(3,3)   cost 4
//
// Minimal use:
//
//	g, _ := grid.New(3, 3, grid.WithObstacles(grid.Cell{X: 2, Y: 2}))
//	out, err := dijkstra.Search(ctx, g, grid.Cell{X: 1, Y: 1}, grid.Cell{X: 3, Y: 3})
//
//	go get github.com/katalvlaran/gridpath
package gridpath
