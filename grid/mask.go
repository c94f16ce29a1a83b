package grid

// Mask is a mutable W×H boolean buffer. It backs a single bounded step
// (one flood fill, one subtraction) and is then frozen into a Dense.
// A Mask must not be used after Freeze.
type Mask struct {
	width, height int
	cells         []bool
}

// NewMask allocates a w×h mask with every cell set to fill.
// Non-positive dimensions are clamped to zero.
func NewMask(w, h int, fill bool) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	cells := make([]bool, w*h)
	if fill {
		for i := range cells {
			cells[i] = true
		}
	}

	return &Mask{width: w, height: h, cells: cells}
}

// Width returns the number of columns.
func (m *Mask) Width() int { return m.width }

// Height returns the number of rows.
func (m *Mask) Height() int { return m.height }

// Get returns the cell at (x, y), or false outside the mask.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}

	return m.cells[y*m.width+x]
}

// Set stores v at (x, y). Writes outside the mask are dropped.
func (m *Mask) Set(x, y int, v bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.cells[y*m.width+x] = v
}

// Freeze transfers the buffer to an immutable Dense without copying.
// The mask is emptied so later writes cannot leak into the returned grid.
func (m *Mask) Freeze() Dense {
	d := Dense{width: m.width, height: m.height, cells: m.cells}
	m.width, m.height, m.cells = 0, 0, nil

	return d
}
