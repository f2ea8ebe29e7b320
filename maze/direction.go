package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is a cardinal move label as spoken on the maze service wire.
type Direction string

const (
	North Direction = "north"
	East  Direction = "east"
	South Direction = "south"
	West  Direction = "west"
)

// Directions lists every cardinal direction in a fixed order.
var Directions = []Direction{North, East, South, West}

// Direction and position errors.
var (
	ErrNotAdjacent      = errors.New("positions are not grid-adjacent")
	ErrOutOfBounds      = errors.New("position is out of the maze")
	ErrInvalidDirection = errors.New("invalid direction")
)

// ParseDirection converts a case-insensitive label into a Direction.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case North, East, South, West:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return d
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	return string(d)
}

// DirectionOf returns the direction leading from one cell index to an adjacent one
// on a grid of the given width. Positions that are not neighbours, including a
// +1/-1 delta that would wrap across a row boundary, yield ErrNotAdjacent.
// Negative positions yield ErrOutOfBounds.
func DirectionOf(from, to, width int) (Direction, error) {
	if width <= 0 {
		return "", fmt.Errorf("%w: width %d", ErrInvalidGrid, width)
	}
	if from < 0 || to < 0 {
		return "", fmt.Errorf("%w: %d -> %d", ErrOutOfBounds, from, to)
	}

	switch delta := to - from; {
	case delta == width:
		return South, nil
	case delta == -width:
		return North, nil
	case delta == 1 && from/width == to/width:
		return East, nil
	case delta == -1 && from/width == to/width:
		return West, nil
	}
	return "", fmt.Errorf("%w: %d -> %d (width %d)", ErrNotAdjacent, from, to, width)
}

// Apply moves a cell index one step in the given direction. Results that leave the
// grid or wrap into another row yield ErrOutOfBounds.
func Apply(pos int, d Direction, width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, width, height)
	}
	if pos < 0 || pos >= width*height {
		return 0, fmt.Errorf("%w: %d", ErrOutOfBounds, pos)
	}

	row, col := pos/width, pos%width
	switch d {
	case North:
		row--
	case South:
		row++
	case East:
		col++
	case West:
		col--
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, string(d))
	}

	if row < 0 || row >= height || col < 0 || col >= width {
		return 0, fmt.Errorf("%w: %s from %d", ErrOutOfBounds, d, pos)
	}
	return row*width + col, nil
}

// PathDirections decodes a sequence of adjacent positions into the moves that walk it.
func PathDirections(path []int, width int) ([]Direction, error) {
	if len(path) < 2 {
		return nil, nil
	}

	directions := make([]Direction, 0, len(path)-1)
	for k := 1; k < len(path); k++ {
		d, err := DirectionOf(path[k-1], path[k], width)
		if err != nil {
			return nil, err
		}
		directions = append(directions, d)
	}
	return directions, nil
}
