// Package grid provides the primitives every other gridholes package is built on:
// integer positions, the eight compass directions, and a dense rectangular
// boolean grid with bounds-safe lookup.
//
// What:
//
//   - Position: an (X, Y) pair with value semantics. Y grows downwards.
//   - Direction: one of N, NE, E, SE, S, SW, W, NW, each an offset in {-1,0,1}².
//   - Dense: an immutable W×H matrix of booleans addressed (x, y).
//   - Mask: a mutable W×H buffer used while a single algorithmic step runs;
//     Freeze hands the buffer over to an immutable Dense without copying.
//
// Why:
//
//   - Dense.IsFilled never fails: any (x, y) outside [0,W)×[0,H) reports false,
//     so callers never range-check before a lookup.
//   - Dense values can be shared freely; "changing" one always produces a copy.
//
// Complexity:
//
//   - IsFilled / At / Mask.Get / Mask.Set: O(1).
//   - NewDense, Without, Rows, Cells, Count: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid
