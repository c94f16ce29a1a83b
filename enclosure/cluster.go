package enclosure

import (
	"fmt"

	"github.com/katalvlaran/gridholes/grid"
)

// Cluster is one connected region of filled cells. Global coordinate of the
// local cell (x, y) is Anchor + (x, y). A Cluster is immutable: removing cells
// yields a new Cluster with the same anchor.
type Cluster struct {
	anchor grid.Position
	grid   grid.Dense
}

// NewCluster validates rows (indexed [y][x]) and returns a Cluster anchored at anchor.
// Errors wrap grid.ErrEmptyGrid or grid.ErrNonRectangular.
func NewCluster(anchor grid.Position, rows [][]bool) (Cluster, error) {
	d, err := grid.NewDense(rows)
	if err != nil {
		return Cluster{}, fmt.Errorf("enclosure: NewCluster: %w", err)
	}

	return Cluster{anchor: anchor, grid: d}, nil
}

// ClusterOf wraps an existing dense grid.
func ClusterOf(anchor grid.Position, d grid.Dense) Cluster {
	return Cluster{anchor: anchor, grid: d}
}

// Anchor returns the global position of local cell (0, 0).
func (c Cluster) Anchor() grid.Position { return c.anchor }

// Grid returns the cluster's dense grid in local coordinates.
func (c Cluster) Grid() grid.Dense { return c.grid }

// IsFilled reports whether local cell (x, y) is filled; false outside the grid.
func (c Cluster) IsFilled(x, y int) bool { return c.grid.IsFilled(x, y) }

// Empty reports whether the cluster has no filled cells.
func (c Cluster) Empty() bool { return c.grid.Count() == 0 }

// Without returns a Cluster with the given local positions cleared.
func (c Cluster) Without(local []grid.Position) Cluster {
	return Cluster{anchor: c.anchor, grid: c.grid.Without(local)}
}

// Subtract removes every cell of e (outline and interior) from the cluster.
// The enclosure's local cells are translated through both anchors first.
// Only cells that were filled change; everything else is left as is.
func (c Cluster) Subtract(e Enclosure) Cluster {
	shift := e.anchor.Sub(c.anchor)
	cells := e.grid.Cells()
	for i := range cells {
		cells[i] = cells[i].Add(shift)
	}

	return c.Without(cells)
}

// start finds the leftmost filled cell of the first non-empty row.
func (c Cluster) start() (grid.Position, bool) {
	for y := 0; y < c.grid.Height(); y++ {
		for x := 0; x < c.grid.Width(); x++ {
			if c.grid.IsFilled(x, y) {
				return grid.Position{X: x, Y: y}, true
			}
		}
	}

	return grid.Position{}, false
}
