package enclosure

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridholes/grid"
)

// Sentinel errors for enclosure operations.
var (
	// ErrStartNotFilled is returned when Search starts on an empty cell.
	ErrStartNotFilled = errors.New("enclosure: start cell is not filled")

	// ErrEmptyOutline is returned when Build receives no outline positions.
	ErrEmptyOutline = errors.New("enclosure: outline must contain at least one position")

	// ErrStepLimit is returned when the search pushes more frames than WithMaxSteps allows.
	ErrStepLimit = errors.New("enclosure: contour search step limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("enclosure: invalid option supplied")
)

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds the tunables and hooks of a contour search.
type Options struct {
	// IncludeSolid reports loops that enclose no empty cell. Such loops are
	// always consumed from the cluster; by default they are not reported.
	IncludeSolid bool

	// MaxSteps, if > 0, caps the number of cells the search may step onto.
	// 0 means no limit.
	MaxSteps int

	// OnClosure is called for every closed loop with its global outline,
	// whether or not the loop ends up reported.
	OnClosure func(outline []grid.Position)

	// OnEnclosure is called for every reported enclosure as it is recorded.
	// It may see enclosures later absorbed by a covering loop, which are then
	// missing from the returned slice.
	OnEnclosure func(e Enclosure)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - solid loops suppressed
//   - no step limit
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		IncludeSolid: false,
		MaxSteps:     0,
		OnClosure:    func([]grid.Position) {},
		OnEnclosure:  func(Enclosure) {},
	}
}

// WithSolidEnclosures reports loops that enclose no empty cell as well.
func WithSolidEnclosures() Option {
	return func(o *Options) {
		o.IncludeSolid = true
	}
}

// WithMaxSteps bounds the number of cells the search may step onto.
//
//	n > 0: limit to n steps
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithOnClosure registers a callback for every closed loop.
func WithOnClosure(fn func(outline []grid.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnClosure = fn
		}
	}
}

// WithOnEnclosure registers a callback for every reported enclosure.
// The callback may include enclosures later absorbed by a covering loop.
func WithOnEnclosure(fn func(e Enclosure)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnclosure = fn
		}
	}
}

// buildOptions applies opts over DefaultOptions and returns any recorded error.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
