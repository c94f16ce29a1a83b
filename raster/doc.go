// Package raster connects bitmaps to the enclosure search.
//
// What:
//
//   - Binarize turns an image.Image into a 0/1 grid: optionally down-sampled so
//     that one grid cell covers CellSize×CellSize pixels, then thresholded at a
//     luminance Level. Dark pixels become 1 (filled) unless WithInvert is set.
//   - Clusters runs Binarize and cuts the grid into enclosure.Cluster values
//     through gridgraph.
//   - Render paints enclosures onto a white canvas, one hue per enclosure and a
//     darker shade on the outline, then scales the picture up.
//
// Why:
//
//   - Scanned mazes, sketches or screenshots of game boards become clusters
//     without hand-written grids.
//   - Rendering is the quickest way to eyeball what the search reported.
//
// Complexity:
//
//   - Binarize: O(P) for P source pixels.
//   - Render:   O(Σ enclosure areas + (W×H×scale²)).
//
// Options:
//
//   - WithLevel(l):        luminance threshold in [0,255], default 128.
//   - WithCellSize(n):     pixels per grid cell along each axis, default 1.
//   - WithInvert():        treat light pixels as filled.
//   - WithConnectivity(c): cluster connectivity for Clusters, default Conn8.
//
// Errors:
//
//   - ErrEmptyImage: nil image or one with a zero-sized bounds rectangle.
//   - ErrOptionViolation: CellSize < 1, or CellSize larger than the image.
package raster
