package grid

import "strings"

// Dense is an immutable rectangular matrix of booleans addressed (x, y).
// The zero value is a 0×0 grid in which every lookup reports false.
// Cells are stored row-major: index = y*width + x.
type Dense struct {
	width, height int
	cells         []bool
}

// NewDense builds a Dense from rows, where rows[y][x] is the cell at (x, y).
// It deep-copies the input so later changes to rows are not observed.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs from the first.
// Complexity: O(W×H) time and memory.
func NewDense(rows [][]bool) (Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Dense{}, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return Dense{}, ErrNonRectangular
		}
	}
	cells := make([]bool, w*h)
	for y, row := range rows {
		copy(cells[y*w:(y+1)*w], row)
	}

	return Dense{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns.
func (d Dense) Width() int { return d.width }

// Height returns the number of rows.
func (d Dense) Height() int { return d.height }

// InBounds reports whether (x, y) lies within [0,W)×[0,H).
func (d Dense) InBounds(x, y int) bool {
	return x >= 0 && x < d.width && y >= 0 && y < d.height
}

// IsFilled returns the stored value at (x, y), or false outside the grid.
// It is the single accessor the rest of the module relies on, so it never fails.
func (d Dense) IsFilled(x, y int) bool {
	if !d.InBounds(x, y) {
		return false
	}

	return d.cells[y*d.width+x]
}

// At is IsFilled for a Position.
func (d Dense) At(p Position) bool {
	return d.IsFilled(p.X, p.Y)
}

// Count returns the number of true cells.
func (d Dense) Count() int {
	n := 0
	for _, v := range d.cells {
		if v {
			n++
		}
	}

	return n
}

// Cells returns the positions of all true cells in row-major order.
func (d Dense) Cells() []Position {
	out := make([]Position, 0, d.Count())
	for i, v := range d.cells {
		if v {
			out = append(out, Position{X: i % d.width, Y: i / d.width})
		}
	}

	return out
}

// Rows returns a fresh [][]bool copy of the grid, indexed [y][x].
func (d Dense) Rows() [][]bool {
	rows := make([][]bool, d.height)
	for y := range rows {
		rows[y] = make([]bool, d.width)
		copy(rows[y], d.cells[y*d.width:(y+1)*d.width])
	}

	return rows
}

// Without returns a copy of d with every in-bounds position in ps cleared.
// Positions outside the grid are ignored. d itself is left untouched.
// Complexity: O(W×H + len(ps)).
func (d Dense) Without(ps []Position) Dense {
	cells := make([]bool, len(d.cells))
	copy(cells, d.cells)
	for _, p := range ps {
		if d.InBounds(p.X, p.Y) {
			cells[p.Y*d.width+p.X] = false
		}
	}

	return Dense{width: d.width, height: d.height, cells: cells}
}

// Equal reports whether d and o have the same dimensions and cells.
func (d Dense) Equal(o Dense) bool {
	if d.width != o.width || d.height != o.height {
		return false
	}
	for i := range d.cells {
		if d.cells[i] != o.cells[i] {
			return false
		}
	}

	return true
}

// String renders the grid with '#' for true and '.' for false, one row per line.
func (d Dense) String() string {
	var sb strings.Builder
	sb.Grow((d.width + 1) * d.height)
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			if d.cells[y*d.width+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
