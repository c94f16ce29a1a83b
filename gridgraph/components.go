package gridgraph

import (
	"github.com/katalvlaran/gridholes/enclosure"
	"github.com/katalvlaran/gridholes/grid"
)

// ConnectedComponents finds all contiguous regions ("islands") of land cells
// (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS order, components ordered by their first cell in row-major scan.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	var comps [][]int
	offsets := gg.NeighborOffsets()

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue // water
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.IsLand(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// Clusters converts every connected component into an enclosure.Cluster.
// Each cluster is trimmed to its component's bounding box, anchored at the
// box's top-left in grid coordinates, and holds only that component's cells
// (land of other components inside the box stays empty).
// Clusters follow ConnectedComponents order.
//
// Time: O(W·H·d + Σ box areas).
func (gg *GridGraph) Clusters() []enclosure.Cluster {
	comps := gg.ConnectedComponents()
	out := make([]enclosure.Cluster, 0, len(comps))
	for _, comp := range comps {
		out = append(out, gg.clusterOf(comp))
	}

	return out
}

// Cluster returns the i-th component as an enclosure.Cluster.
// Returns ErrComponentIndex if i is out of range.
func (gg *GridGraph) Cluster(i int) (enclosure.Cluster, error) {
	comps := gg.ConnectedComponents()
	if i < 0 || i >= len(comps) {
		return enclosure.Cluster{}, ErrComponentIndex
	}

	return gg.clusterOf(comps[i]), nil
}

// clusterOf crops one component to its bounding box.
func (gg *GridGraph) clusterOf(comp []int) enclosure.Cluster {
	// 1) Bounding box of the component
	minX, minY := gg.Coordinate(comp[0])
	maxX, maxY := minX, minY
	for _, idx := range comp[1:] {
		x, y := gg.Coordinate(idx)
		minX, minY = min(minX, x), min(minY, y)
		maxX, maxY = max(maxX, x), max(maxY, y)
	}

	// 2) Mark the component's cells in box-local coordinates
	m := grid.NewMask(maxX-minX+1, maxY-minY+1, false)
	for _, idx := range comp {
		x, y := gg.Coordinate(idx)
		m.Set(x-minX, y-minY, true)
	}

	return enclosure.ClusterOf(grid.Position{X: minX, Y: minY}, m.Freeze())
}
