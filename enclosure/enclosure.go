package enclosure

import "github.com/katalvlaran/gridholes/grid"

// Enclosure is a closed loop of filled cells together with every cell
// inside-or-on it. Outline positions are global, in the order the loop was
// traced. The grid is local to Anchor, the top-left of the outline's bounding
// box, and its dimensions equal that box.
// An Enclosure is built once by Build and never changes afterwards.
type Enclosure struct {
	anchor  grid.Position
	outline []grid.Position
	grid    grid.Dense
}

// Anchor returns the global top-left corner of the enclosure's bounding box.
func (e Enclosure) Anchor() grid.Position { return e.anchor }

// Outline returns a copy of the loop in global coordinates.
func (e Enclosure) Outline() []grid.Position {
	return append([]grid.Position(nil), e.outline...)
}

// Grid returns the dense grid of enclosed cells, local to Anchor.
func (e Enclosure) Grid() grid.Dense { return e.grid }

// Cells returns the enclosed cells in local coordinates.
// Add Anchor to each position to obtain global coordinates.
func (e Enclosure) Cells() []grid.Position { return e.grid.Cells() }

// Area returns the number of cells inside-or-on the outline.
func (e Enclosure) Area() int { return e.grid.Count() }

// Bounds returns the global top-left and bottom-right corners of the bounding box.
func (e Enclosure) Bounds() (topLeft, bottomRight grid.Position) {
	return e.anchor, e.anchor.Add(grid.Position{X: e.grid.Width() - 1, Y: e.grid.Height() - 1})
}

// Contains reports whether global position p lies inside-or-on the outline.
func (e Enclosure) Contains(p grid.Position) bool {
	return e.grid.At(p.Sub(e.anchor))
}

// Covers reports whether every cell of o is also a cell of e.
func (e Enclosure) Covers(o Enclosure) bool {
	for _, c := range o.grid.Cells() {
		if !e.Contains(c.Add(o.anchor)) {
			return false
		}
	}

	return true
}
