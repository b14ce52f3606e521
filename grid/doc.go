// Package grid models a bounded 2D integer grid with blocked cells as an
// implicit graph for shortest-path search.
//
// What:
//
//   - Grid is an immutable W×H lattice of cells (X,Y) with 1 ≤ X ≤ W, 1 ≤ Y ≤ H.
//   - A fixed obstacle set excludes cells from all traversal.
//   - Neighbors enumerates legal moves from a cell together with their edge cost.
//   - ValidateEndpoints performs the pre-search checks on a start/goal pair.
//
// Connectivity:
//
//   - Conn4: up, right, down, left at cost 1.0.
//   - Conn8: the four orthogonal moves followed by up-right, down-right,
//     up-left, down-left at the diagonal cost.
//
// The default diagonal cost is ReferenceDiagonalCost (exactly 1.4), which
// keeps path costs comparable with the reference maps. WithEuclideanDiagonal
// switches to math.Sqrt2; WithDiagonalCost sets an arbitrary positive cost.
//
// "Up" is +Y: the grid uses a Cartesian orientation with (1,1) in the
// bottom-left corner.
//
// Complexity:
//
//   - New:       O(W×H) worst case to index the obstacle set.
//   - Neighbors: O(d), d = 4 or 8.
//   - InBounds, Blocked: O(1).
//
// Concurrency:
//
//   - A *Grid is read-only after New returns and may be shared by any number
//     of concurrent searches.
//
// Errors:
//
//   - ErrBadDimensions:   width or height < 1.
//   - ErrOutOfBounds:     a cell lies outside [1,W]×[1,H].
//   - ErrBlockedEndpoint: a start/goal cell lies in the obstacle set.
package grid
