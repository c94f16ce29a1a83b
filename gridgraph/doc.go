// Package gridgraph treats a 2D grid of cells as a graph and cuts it into the
// clusters the enclosure package works on.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - Identifies connected components ("islands") of cells with value ≥ LandThreshold.
//   - Emits each component as an enclosure.Cluster anchored at the component's
//     bounding-box top-left, holding only that component's cells.
//
// Why:
//
//   - Board analysis: every island of a game map becomes one cluster whose
//     holes (lakes, captured territory) can then be found independently.
//   - Bitmaps: the raster package binarizes an image into a 0/1 grid and uses
//     this package to split it into clusters.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Clusters:            O(W×H×d + Σ bounding-box areas).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors, default).
//     Conn8 matches the 8-direction contour walk, so a diagonal step never
//     splits what the tracer treats as one outline.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
package gridgraph
