package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input 2D slice has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Position is an integer cell coordinate. X grows to the east, Y to the south.
type Position struct {
	X, Y int
}

// Add returns p translated by q.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

// Step returns the neighbor of p one cell away in direction d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Offset()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String formats p as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the eight compass directions, numbered clockwise from North.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// directionCount is the number of valid Direction values.
const directionCount = 8

// offsets[d] holds (dx, dy) for direction d with Y growing downwards.
var offsets = [directionCount][2]int{
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
}

var directionNames = [directionCount]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Orthogonal lists the four axis-aligned directions in flood-fill order.
var Orthogonal = [4]Direction{East, South, West, North}

// Valid reports whether d is one of the eight compass directions.
func (d Direction) Valid() bool {
	return d >= North && d <= NorthWest
}

// Offset returns the (dx, dy) unit step for d. Invalid directions yield (0, 0).
func (d Direction) Offset() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	o := offsets[d]

	return o[0], o[1]
}

// Reverse returns the direction pointing the opposite way.
func (d Direction) Reverse() Direction {
	if !d.Valid() {
		return d
	}

	return (d + directionCount/2) % directionCount
}

// String returns the compass abbreviation ("N", "NE", ...).
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}

	return directionNames[d]
}
