package enclosure

import (
	"fmt"

	"github.com/katalvlaran/gridholes/grid"
)

// turnPriority[d] lists the candidates tried after arriving via d: sharpest
// turn toward the hugged side first, widening outward, reverse of d excluded.
var turnPriority = [8][]grid.Direction{
	grid.NorthWest: {grid.NorthEast, grid.North, grid.NorthWest, grid.West, grid.SouthWest, grid.South},
	grid.North:     {grid.NorthEast, grid.North, grid.NorthWest, grid.West, grid.SouthWest},
	grid.NorthEast: {grid.SouthEast, grid.East, grid.NorthEast, grid.North, grid.NorthWest, grid.West},
	grid.East:      {grid.SouthEast, grid.East, grid.NorthEast, grid.North, grid.NorthWest},
	grid.SouthEast: {grid.SouthWest, grid.South, grid.SouthEast, grid.East, grid.NorthEast, grid.North},
	grid.South:     {grid.SouthWest, grid.South, grid.SouthEast, grid.East, grid.NorthEast},
	grid.SouthWest: {grid.NorthWest, grid.West, grid.SouthWest, grid.South, grid.SouthEast, grid.East},
	grid.West:      {grid.NorthWest, grid.West, grid.SouthWest, grid.South, grid.SouthEast},
}

// frame is one cell on the current path together with its candidate list.
type frame struct {
	at   grid.Position // cluster-local
	dirs []grid.Direction
	next int // index of the next candidate to try
}

// stepKind tells the main loop what a single advance produced.
type stepKind int

const (
	stepContinue stepKind = iota // nothing to settle
	stepClosure                  // a loop closed on frames[owner]
)

// step is the outcome of one advance. For stepClosure it carries the built
// enclosure, whether it is reported, and the cluster with the loop consumed.
type step struct {
	kind      stepKind
	owner     int
	enclosure Enclosure
	report    bool
	cluster   Cluster
}

// tracer encapsulates mutable contour-search state.
type tracer struct {
	opts    Options
	input   Cluster // as passed to Search, never consumed
	cluster Cluster
	width   int
	onPath  []int // frame index + 1 per local cell, 0 when off the path
	frames  []frame
	found   []Enclosure
	steps   int
}

// Search runs the contour tracer over c from the local cell start, trying dirs
// in order at the start cell. It returns every enclosure discovered from that
// root after exhausting all branches.
//
// Behavior at each candidate cell q reached from the top frame p:
//   - q empty: try the next candidate of p.
//   - q already on the path: a loop closed. The path from q up to p is the
//     outline; it is built, consumed from the working cluster, and the frame
//     stack unwinds to q's frame, which resumes its untried candidates.
//   - otherwise q becomes the new top frame with candidates turnPriority[d].
//
// Returns ErrStartNotFilled if start is empty, ErrOptionViolation for a bad
// Option or an invalid direction in dirs, and ErrStepLimit if the step budget
// runs out.
func Search(c Cluster, start grid.Position, dirs []grid.Direction, opts ...Option) ([]Enclosure, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	for _, d := range dirs {
		if !d.Valid() {
			return nil, fmt.Errorf("%w: invalid start direction %s", ErrOptionViolation, d)
		}
	}
	if !c.IsFilled(start.X, start.Y) {
		return nil, fmt.Errorf("%w: %s", ErrStartNotFilled, start)
	}

	g := c.Grid()
	t := &tracer{
		opts:    o,
		input:   c,
		cluster: c,
		width:   g.Width(),
		onPath:  make([]int, g.Width()*g.Height()),
		frames:  make([]frame, 0, g.Height()+g.Width()),
	}
	if err = t.run(start, dirs); err != nil {
		return nil, err
	}

	return t.found, nil
}

// run drives advance until the frame stack is empty.
func (t *tracer) run(start grid.Position, dirs []grid.Direction) error {
	t.push(start, dirs)
	for len(t.frames) > 0 {
		s, err := t.advance()
		if err != nil {
			return err
		}
		if s.kind == stepClosure {
			t.settle(s)
		}
	}

	return nil
}

// advance tries the next candidate of the top frame, popping it when exhausted.
func (t *tracer) advance() (step, error) {
	top := &t.frames[len(t.frames)-1]
	if top.next == len(top.dirs) {
		t.pop()
		return step{kind: stepContinue}, nil
	}
	d := top.dirs[top.next]
	top.next++

	q := top.at.Step(d)
	if !t.cluster.IsFilled(q.X, q.Y) {
		return step{kind: stepContinue}, nil
	}
	if idx := t.onPath[t.index(q)]; idx > 0 {
		return t.close(idx - 1), nil
	}
	if t.opts.MaxSteps > 0 && t.steps >= t.opts.MaxSteps {
		return step{}, fmt.Errorf("%w: budget %d", ErrStepLimit, t.opts.MaxSteps)
	}
	t.steps++
	t.push(q, turnPriority[d])

	return step{kind: stepContinue}, nil
}

// close builds the enclosure for the loop frames[owner:] and the cluster
// that remains once it is consumed.
func (t *tracer) close(owner int) step {
	anchor := t.cluster.Anchor()
	outline := make([]grid.Position, 0, len(t.frames)-owner)
	for _, f := range t.frames[owner:] {
		outline = append(outline, f.at.Add(anchor))
	}
	// outline is never empty here, so Build cannot fail
	e, _ := Build(outline)
	t.opts.OnClosure(outline)

	return step{
		kind:      stepClosure,
		owner:     owner,
		enclosure: e,
		report:    t.opts.IncludeSolid || t.enclosesHole(e),
		cluster:   t.cluster.Subtract(e),
	}
}

// settle applies a closure: the consumed cluster replaces the working one,
// the enclosure is recorded, and frames above the owner are abandoned.
func (t *tracer) settle(s step) {
	t.cluster = s.cluster
	if s.report {
		t.record(s.enclosure)
	}
	for len(t.frames)-1 > s.owner {
		t.pop()
	}
}

// record appends e, dropping earlier enclosures that e fully covers.
func (t *tracer) record(e Enclosure) {
	kept := t.found[:0]
	for _, prev := range t.found {
		if !e.Covers(prev) {
			kept = append(kept, prev)
		}
	}
	t.found = append(kept, e)
	t.opts.OnEnclosure(e)
}

// enclosesHole reports whether e contains a cell that is empty in the input
// cluster. Cells consumed by earlier closures still count as filled.
func (t *tracer) enclosesHole(e Enclosure) bool {
	shift := e.Anchor().Sub(t.input.Anchor())
	for _, c := range e.Cells() {
		l := c.Add(shift)
		if !t.input.IsFilled(l.X, l.Y) {
			return true
		}
	}

	return false
}

func (t *tracer) push(at grid.Position, dirs []grid.Direction) {
	t.frames = append(t.frames, frame{at: at, dirs: dirs})
	t.onPath[t.index(at)] = len(t.frames)
}

func (t *tracer) pop() {
	last := len(t.frames) - 1
	t.onPath[t.index(t.frames[last].at)] = 0
	t.frames = t.frames[:last]
}

func (t *tracer) index(p grid.Position) int {
	return p.Y*t.width + p.X
}
