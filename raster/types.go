package raster

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridholes/gridgraph"
)

// Sentinel errors for raster operations.
var (
	// ErrEmptyImage is returned for a nil image or one without pixels.
	ErrEmptyImage = errors.New("raster: image has no pixels")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("raster: invalid option supplied")
)

// DefaultLevel is the luminance threshold used when WithLevel is not given.
const DefaultLevel uint8 = 128

// Option configures Binarize and Clusters.
type Option func(*Options)

// Options holds the binarization parameters.
type Options struct {
	// Level is the luminance threshold. Pixels darker than Level are dark.
	Level uint8

	// CellSize is the number of pixels per grid cell along each axis.
	CellSize int

	// Invert makes light pixels filled instead of dark ones.
	Invert bool

	// Conn is the connectivity used to split the grid into clusters.
	Conn gridgraph.Connectivity

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Level=128, CellSize=1, no inversion
// and 8-directional clusters.
func DefaultOptions() Options {
	return Options{
		Level:    DefaultLevel,
		CellSize: 1,
		Invert:   false,
		Conn:     gridgraph.Conn8,
	}
}

// WithLevel sets the luminance threshold.
func WithLevel(level uint8) Option {
	return func(o *Options) {
		o.Level = level
	}
}

// WithCellSize sets how many pixels along each axis make one grid cell.
// n < 1 → ErrOptionViolation.
func WithCellSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: CellSize must be ≥ 1 (got %d)", ErrOptionViolation, n)
			return
		}
		o.CellSize = n
	}
}

// WithInvert treats light pixels as filled.
func WithInvert() Option {
	return func(o *Options) {
		o.Invert = true
	}
}

// WithConnectivity selects Conn4 or Conn8 for Clusters.
func WithConnectivity(c gridgraph.Connectivity) Option {
	return func(o *Options) {
		if c != gridgraph.Conn4 && c != gridgraph.Conn8 {
			o.err = fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, c)
			return
		}
		o.Conn = c
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
