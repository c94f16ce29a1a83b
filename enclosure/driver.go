package enclosure

import (
	"fmt"

	"github.com/katalvlaran/gridholes/grid"
)

// initialCandidates starts the walk at the top-left filled cell. Nothing lies
// above that row, so no northward direction is tried.
var initialCandidates = []grid.Direction{grid.SouthWest, grid.South, grid.SouthEast, grid.East}

// FindClusterEnclosures runs Search from the leftmost filled cell of the
// cluster's first non-empty row (row 0 for a cluster trimmed to its bounding
// box). A cluster with no filled cells yields no enclosures and no error.
func FindClusterEnclosures(c Cluster, opts ...Option) ([]Enclosure, error) {
	if _, err := buildOptions(opts); err != nil {
		return nil, err
	}
	start, ok := c.start()
	if !ok {
		return nil, nil
	}

	return Search(c, start, initialCandidates, opts...)
}

// FindLargestEnclosures applies FindClusterEnclosures to every cluster and
// concatenates the results in input order. Callers should treat the result as
// a set; the order is not part of the contract.
func FindLargestEnclosures(clusters []Cluster, opts ...Option) ([]Enclosure, error) {
	var all []Enclosure
	for i, c := range clusters {
		found, err := FindClusterEnclosures(c, opts...)
		if err != nil {
			return nil, fmt.Errorf("enclosure: cluster %d: %w", i, err)
		}
		all = append(all, found...)
	}

	return all, nil
}
