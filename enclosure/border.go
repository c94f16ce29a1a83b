package enclosure

import "github.com/katalvlaran/gridholes/grid"

// TraceBorder returns the perimeter of the rectangle spanned by topLeft and
// bottomRight (corners are normalized first, both inclusive).
//
// For a box at least 2×2 the walk starts one cell below topLeft and goes
// South to bottomRight.Y, East to bottomRight.X, North to topLeft.Y and West
// back to topLeft, which is the last element: 2*(w+h)-4 distinct positions.
//
// A box one cell wide or tall has no inner cells and 2*(w+h)-4 would count
// its cells twice; it is returned as topLeft followed by its single South or
// East leg, w*h distinct positions in total.
//
// Complexity: O(w+h).
func TraceBorder(topLeft, bottomRight grid.Position) []grid.Position {
	// 1) Normalize corners
	x0, x1 := min(topLeft.X, bottomRight.X), max(topLeft.X, bottomRight.X)
	y0, y1 := min(topLeft.Y, bottomRight.Y), max(topLeft.Y, bottomRight.Y)
	w, h := x1-x0+1, y1-y0+1

	// 2) Degenerate boxes: a single line of cells
	if w == 1 || h == 1 {
		out := make([]grid.Position, 0, w*h)
		out = append(out, grid.Position{X: x0, Y: y0})
		for y := y0 + 1; y <= y1; y++ {
			out = append(out, grid.Position{X: x0, Y: y})
		}
		for x := x0 + 1; x <= x1; x++ {
			out = append(out, grid.Position{X: x, Y: y0})
		}

		return out
	}

	// 3) South, East, North, West; the last step lands on topLeft
	out := make([]grid.Position, 0, 2*(w+h)-4)
	x, y := x0, y0
	for y < y1 {
		y++
		out = append(out, grid.Position{X: x, Y: y})
	}
	for x < x1 {
		x++
		out = append(out, grid.Position{X: x, Y: y})
	}
	for y > y0 {
		y--
		out = append(out, grid.Position{X: x, Y: y})
	}
	for x > x0 {
		x--
		out = append(out, grid.Position{X: x, Y: y})
	}

	return out
}
