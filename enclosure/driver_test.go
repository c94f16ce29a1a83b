package enclosure_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridholes/enclosure"
	"github.com/katalvlaran/gridholes/grid"
)

// enclosureView is a comparable snapshot of an Enclosure.
type enclosureView struct {
	Anchor  grid.Position
	Outline []grid.Position
	Grid    string
}

func viewsOf(encs []enclosure.Enclosure) []enclosureView {
	out := make([]enclosureView, len(encs))
	for i, e := range encs {
		out[i] = enclosureView{Anchor: e.Anchor(), Outline: e.Outline(), Grid: e.Grid().String()}
	}
	return out
}

// sortViews makes comparisons independent of discovery order.
var sortViews = cmpopts.SortSlices(func(a, b enclosureView) bool {
	if a.Anchor.Y != b.Anchor.Y {
		return a.Anchor.Y < b.Anchor.Y
	}
	if a.Anchor.X != b.Anchor.X {
		return a.Anchor.X < b.Anchor.X
	}
	return len(a.Outline) < len(b.Outline)
})

// Golden fixtures: an 8×4 grid anchored at (0,0) and a 4×4 grid anchored at (10,10).
func sampleClusters(t testing.TB) []enclosure.Cluster {
	return []enclosure.Cluster{
		mustCluster(t, grid.Position{X: 0, Y: 0},
			"###.####",
			"#.###..#",
			"###.#..#",
			"....####",
		),
		mustCluster(t, grid.Position{X: 10, Y: 10},
			"####",
			"#..#",
			"#.##",
			"###.",
		),
	}
}

var sampleGolden = [][]enclosureView{
	{
		{
			Anchor: grid.Position{X: 3, Y: 0},
			Outline: []grid.Position{
				{X: 3, Y: 1}, {X: 4, Y: 2}, {X: 4, Y: 3}, {X: 5, Y: 3}, {X: 6, Y: 3}, {X: 7, Y: 3},
				{X: 7, Y: 2}, {X: 7, Y: 1}, {X: 7, Y: 0}, {X: 6, Y: 0}, {X: 5, Y: 0}, {X: 4, Y: 0},
			},
			Grid: ".####\n#####\n.####\n.####\n",
		},
		{
			Anchor: grid.Position{X: 0, Y: 0},
			Outline: []grid.Position{
				{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2},
				{X: 2, Y: 2}, {X: 3, Y: 1}, {X: 2, Y: 0}, {X: 1, Y: 0},
			},
			Grid: "###.\n####\n###.\n",
		},
	},
	{
		{
			Anchor: grid.Position{X: 10, Y: 10},
			Outline: []grid.Position{
				{X: 10, Y: 10}, {X: 10, Y: 11}, {X: 10, Y: 12}, {X: 10, Y: 13}, {X: 11, Y: 13}, {X: 12, Y: 13},
				{X: 13, Y: 12}, {X: 13, Y: 11}, {X: 13, Y: 10}, {X: 12, Y: 10}, {X: 11, Y: 10},
			},
			Grid: "####\n####\n####\n###.\n",
		},
	},
}

//----------------------------------------------------------------------------//
// Scenario Tests
//----------------------------------------------------------------------------//

// TestFindClusterEnclosures_Ring: a 3×3 ring with an empty center yields exactly
// one enclosure with an 8-cell outline and a full 3×3 grid.
func TestFindClusterEnclosures_Ring(t *testing.T) {
	anchor := grid.Position{X: 100, Y: -4}
	c := mustCluster(t, anchor, "###", "#.#", "###")

	encs, err := enclosure.FindClusterEnclosures(c)
	require.NoError(t, err)
	require.Len(t, encs, 1)

	e := encs[0]
	assert.Equal(t, anchor, e.Anchor())
	assert.Equal(t, shift(ringOutline, anchor), e.Outline())
	assert.Equal(t, "###\n###\n###\n", e.Grid().String())
	assertEnclosureInvariants(t, e)
}

// TestFindClusterEnclosures_Solid: hole-free shapes enclose nothing, including
// those whose later loops run over cells consumed by earlier solid loops.
func TestFindClusterEnclosures_Solid(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
	}{
		{"1x1", []string{"#"}},
		{"1x5", []string{"#####"}},
		{"5x1", []string{"#", "#", "#", "#", "#"}},
		{"2x2", []string{"##", "##"}},
		{"3x3", []string{"###", "###", "###"}},
		{"6x4", []string{"######", "######", "######", "######"}},
		{"Notched", []string{".#.####", ".######"}},
		{"L", []string{"#..", "#..", "###"}},
		{"Plus", []string{".#.", "###", ".#."}},
		{"Stairs", []string{"##..", "###.", ".###", "..##"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			encs, err := enclosure.FindClusterEnclosures(mustCluster(t, grid.Position{}, tc.lines...))
			require.NoError(t, err)
			assert.Empty(t, encs)
		})
	}
}

// TestFindClusterEnclosures_SolidIncluded: with WithSolidEnclosures the outer
// loop of a solid block is reported and looks exactly like the ring's.
func TestFindClusterEnclosures_SolidIncluded(t *testing.T) {
	c := mustCluster(t, grid.Position{}, "###", "###", "###")
	encs, err := enclosure.FindClusterEnclosures(c, enclosure.WithSolidEnclosures())
	require.NoError(t, err)
	require.Len(t, encs, 1)
	assert.Equal(t, ringOutline, encs[0].Outline())
	assert.Equal(t, "###\n###\n###\n", encs[0].Grid().String())
}

// TestFindClusterEnclosures_Golden replays the two regression fixtures.
func TestFindClusterEnclosures_Golden(t *testing.T) {
	for i, c := range sampleClusters(t) {
		encs, err := enclosure.FindClusterEnclosures(c)
		require.NoError(t, err)
		if diff := cmp.Diff(sampleGolden[i], viewsOf(encs), sortViews); diff != "" {
			t.Errorf("fixture %d mismatch (-want +got):\n%s", i, diff)
		}
		for _, e := range encs {
			assertEnclosureInvariants(t, e)
		}
	}
}

// TestFindLargestEnclosures_Golden compares the aggregate as a set.
func TestFindLargestEnclosures_Golden(t *testing.T) {
	clusters := sampleClusters(t)
	before := clusters[0].Grid()

	encs, err := enclosure.FindLargestEnclosures(clusters)
	require.NoError(t, err)

	want := append(append([]enclosureView(nil), sampleGolden[0]...), sampleGolden[1]...)
	if diff := cmp.Diff(want, viewsOf(encs), sortViews); diff != "" {
		t.Errorf("aggregate mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, before.Equal(clusters[0].Grid()), "input clusters must not change")
}

// TestFindClusterEnclosures_SharedWall: two holes separated by a one-cell wall
// sit inside the outer boundary, which is traced first and consumes both.
func TestFindClusterEnclosures_SharedWall(t *testing.T) {
	c := mustCluster(t, grid.Position{}, "###", "#.#", "###", "#.#", "###")
	encs, err := enclosure.FindClusterEnclosures(c)
	require.NoError(t, err)
	require.Len(t, encs, 1)
	assert.Len(t, encs[0].Outline(), 12)
	assert.Equal(t, 15, encs[0].Area())
}

// TestFindClusterEnclosures_Empty: no filled cells means no enclosures and no error.
func TestFindClusterEnclosures_Empty(t *testing.T) {
	encs, err := enclosure.FindClusterEnclosures(mustCluster(t, grid.Position{}, "...", "..."))
	require.NoError(t, err)
	assert.Empty(t, encs)

	encs, err = enclosure.FindClusterEnclosures(enclosure.Cluster{})
	require.NoError(t, err)
	assert.Empty(t, encs)

	encs, err = enclosure.FindLargestEnclosures(nil)
	require.NoError(t, err)
	assert.Empty(t, encs)
}

// TestFindClusterEnclosures_OffsetStart: a cluster whose top row is empty
// starts from the first row that has a filled cell.
func TestFindClusterEnclosures_OffsetStart(t *testing.T) {
	c := mustCluster(t, grid.Position{X: 1, Y: 1}, "....", ".###", ".#.#", ".###")
	encs, err := enclosure.FindClusterEnclosures(c)
	require.NoError(t, err)
	require.Len(t, encs, 1)
	assert.Equal(t, grid.Position{X: 2, Y: 2}, encs[0].Anchor())
	assert.Equal(t, shift(ringOutline, grid.Position{X: 2, Y: 2}), encs[0].Outline())
}

//----------------------------------------------------------------------------//
// Options and Errors
//----------------------------------------------------------------------------//

// TestSearch_Hooks counts closures and reported enclosures.
func TestSearch_Hooks(t *testing.T) {
	var closures, reported int
	opts := []enclosure.Option{
		enclosure.WithOnClosure(func([]grid.Position) { closures++ }),
		enclosure.WithOnEnclosure(func(enclosure.Enclosure) { reported++ }),
	}

	_, err := enclosure.FindClusterEnclosures(sampleClusters(t)[0], opts...)
	require.NoError(t, err)
	assert.Equal(t, 2, closures)
	assert.Equal(t, 2, reported)

	closures, reported = 0, 0
	_, err = enclosure.FindClusterEnclosures(mustCluster(t, grid.Position{}, "###", "###", "###"), opts...)
	require.NoError(t, err)
	assert.Equal(t, 1, closures, "the solid loop still closes")
	assert.Equal(t, 0, reported)
}

// TestSearch_MaxSteps checks the step budget on the ring, which needs 7 steps.
func TestSearch_MaxSteps(t *testing.T) {
	ring := mustCluster(t, grid.Position{}, "###", "#.#", "###")

	_, err := enclosure.FindClusterEnclosures(ring, enclosure.WithMaxSteps(6))
	assert.ErrorIs(t, err, enclosure.ErrStepLimit)

	encs, err := enclosure.FindClusterEnclosures(ring, enclosure.WithMaxSteps(7))
	require.NoError(t, err)
	assert.Len(t, encs, 1)

	_, err = enclosure.FindLargestEnclosures([]enclosure.Cluster{ring}, enclosure.WithMaxSteps(-1))
	assert.ErrorIs(t, err, enclosure.ErrOptionViolation)
}

// TestSearch_Errors covers invalid start cells and directions.
func TestSearch_Errors(t *testing.T) {
	ring := mustCluster(t, grid.Position{}, "###", "#.#", "###")

	_, err := enclosure.Search(ring, grid.Position{X: 1, Y: 1}, []grid.Direction{grid.East})
	assert.ErrorIs(t, err, enclosure.ErrStartNotFilled)

	_, err = enclosure.Search(ring, grid.Position{X: 9, Y: 9}, []grid.Direction{grid.East})
	assert.ErrorIs(t, err, enclosure.ErrStartNotFilled)

	_, err = enclosure.Search(ring, grid.Position{}, []grid.Direction{grid.Direction(8)})
	assert.ErrorIs(t, err, enclosure.ErrOptionViolation)
}

// TestSearch_CustomStart runs the tracer from the bottom-right corner of the
// ring walking West first. Arriving at (1,2) via W it turns NW and hugs the
// inside, so the loop it closes is the diamond around the center.
func TestSearch_CustomStart(t *testing.T) {
	ring := mustCluster(t, grid.Position{}, "###", "#.#", "###")

	encs, err := enclosure.Search(ring, grid.Position{X: 2, Y: 2}, []grid.Direction{grid.West})
	require.NoError(t, err)
	require.Len(t, encs, 1)
	assert.Equal(t, grid.Position{}, encs[0].Anchor())
	assert.Equal(t, []grid.Position{{X: 1, Y: 2}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 2, Y: 1}}, encs[0].Outline())
	assert.Equal(t, ".#.\n###\n.#.\n", encs[0].Grid().String())
}

// TestSearch_NoDirections: with no candidates at the start nothing is explored.
func TestSearch_NoDirections(t *testing.T) {
	ring := mustCluster(t, grid.Position{}, "###", "#.#", "###")
	encs, err := enclosure.Search(ring, grid.Position{}, nil)
	require.NoError(t, err)
	assert.Empty(t, encs)
}
