package enclosure

import "github.com/katalvlaran/gridholes/grid"

// Build turns a closed loop of global positions into an Enclosure.
//
// Behavior:
//  1. Bounding box: one pass over outline tracking min/max of X and Y.
//  2. Outline mask: box-sized, every outline cell set.
//  3. Working mask: box-sized, every cell set (candidate interior).
//  4. Border walk of the box via TraceBorder.
//  5. From every border cell still set and not on the outline, flood fill
//     East, South, West, North, clearing set non-outline cells. Outline cells,
//     cleared cells and out-of-box cells stop the fill.
//  6. What remains set is the outline plus its enclosed interior.
//
// The working mask doubles as the visited marker and the fill runs on an
// explicit stack, so the whole call is O(L + B) with no recursion.
// Returns ErrEmptyOutline if outline is empty.
func Build(outline []grid.Position) (Enclosure, error) {
	if len(outline) == 0 {
		return Enclosure{}, ErrEmptyOutline
	}

	// 1) Bounding box
	topLeft, bottomRight := boundingBox(outline)
	w, h := bottomRight.X-topLeft.X+1, bottomRight.Y-topLeft.Y+1

	// 2) Outline mask in local coordinates
	edge := grid.NewMask(w, h, false)
	for _, p := range outline {
		l := p.Sub(topLeft)
		edge.Set(l.X, l.Y, true)
	}

	// 3) Everything is interior until proven otherwise
	work := grid.NewMask(w, h, true)

	// 4-5) Clear whatever the box border reaches without crossing the outline
	var stack []grid.Position
	for _, b := range TraceBorder(grid.Position{}, grid.Position{X: w - 1, Y: h - 1}) {
		if !work.Get(b.X, b.Y) || edge.Get(b.X, b.Y) {
			continue
		}
		stack = clearOutside(work, edge, b, stack[:0])
	}

	// 6) Freeze the survivors
	return Enclosure{
		anchor:  topLeft,
		outline: append([]grid.Position(nil), outline...),
		grid:    work.Freeze(),
	}, nil
}

// boundingBox returns the independent minima and maxima of X and Y over ps.
// ps must not be empty.
func boundingBox(ps []grid.Position) (topLeft, bottomRight grid.Position) {
	topLeft, bottomRight = ps[0], ps[0]
	for _, p := range ps[1:] {
		topLeft.X = min(topLeft.X, p.X)
		topLeft.Y = min(topLeft.Y, p.Y)
		bottomRight.X = max(bottomRight.X, p.X)
		bottomRight.Y = max(bottomRight.Y, p.Y)
	}

	return topLeft, bottomRight
}

// clearOutside flood-fills from seed over set, non-edge cells of work,
// clearing each one. The caller's stack buffer is reused and returned.
func clearOutside(work, edge *grid.Mask, seed grid.Position, stack []grid.Position) []grid.Position {
	work.Set(seed.X, seed.Y, false)
	stack = append(stack, seed)
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range grid.Orthogonal {
			n := p.Step(d)
			// Get is false out of bounds, so the box edge stops the fill too
			if !work.Get(n.X, n.Y) || edge.Get(n.X, n.Y) {
				continue
			}
			work.Set(n.X, n.Y, false)
			stack = append(stack, n)
		}
	}

	return stack
}
