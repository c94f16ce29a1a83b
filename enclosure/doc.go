// Package enclosure finds the topological holes of a cluster of filled grid cells.
//
// What:
//
//   - Cluster: one connected blob of filled cells, an anchor (global offset of
//     its local cell (0,0)) plus an immutable grid.Dense.
//   - Enclosure: a closed loop of filled cells (the outline, in global
//     coordinates and loop order) plus a dense grid, local to its own anchor,
//     marking every cell inside-or-on that loop.
//   - TraceBorder walks the perimeter of an axis-aligned rectangle.
//   - Build turns an outline into an Enclosure: bounding box, then a
//     4-directional flood fill from the box border that removes everything the
//     outline does not enclose.
//   - Search is the contour tracer: a direction-priority depth-first walk over
//     filled cells that reports a closed loop whenever it steps onto a cell that
//     is already on its path.
//   - FindClusterEnclosures / FindLargestEnclosures drive Search per cluster.
//
// Walk order:
//
// After arriving at a cell via direction d the tracer tries, in order, the
// sharpest turn toward the side it is hugging, then progressively wider turns,
// never the exact reverse of d:
//
//	arrived via   next candidates
//	NW            NE, N, NW, W, SW, S
//	N             NE, N, NW, W, SW
//	NE            SE, E, NE, N, NW, W
//	E             SE, E, NE, N, NW
//	SE            SW, S, SE, E, NE, N
//	S             SW, S, SE, E, NE
//	SW            NW, W, SW, S, SE, E
//	W             NW, W, SW, S, SE
//
// Started from the leftmost filled cell of the top row with [SW, S, SE, E], the
// first loop closed is the outer boundary, which is why the driver reports the
// largest enclosures of each cluster.
//
// Consumption:
//
// Every closed loop is subtracted from the working cluster as soon as it is
// found, so no cell is enclosed twice and the search stays bounded by the
// cluster's cell count. Loops that enclose no empty cell (solid loops) are
// consumed but not reported unless WithSolidEnclosures is set. When a later
// enclosure covers an earlier one, the earlier one is dropped.
//
// Complexity (A = cluster area, L = outline length, B = bounding-box area):
//
//   - Build:  O(L + B) time, O(B) memory.
//   - Search: O(A) memory for the path marker and frame stack; each closure
//     costs O(A + B) for the subtraction.
//
// Errors:
//
//   - ErrStartNotFilled: Search was asked to start on an empty cell.
//   - ErrEmptyOutline: Build was given no positions.
//   - ErrStepLimit: the WithMaxSteps budget was exhausted.
//   - ErrOptionViolation: an Option was given an invalid value.
//   - grid.ErrEmptyGrid, grid.ErrNonRectangular: NewCluster input rejected.
package enclosure
